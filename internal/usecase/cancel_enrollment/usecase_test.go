package cancel_enrollment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	enrollmentRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/enrollment"
	"github.com/m04kA/SMC-LabBookingService/internal/service/roster"
	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

type fakeEnrollmentRepo struct {
	rows []*domain.Enrollment
}

func (r *fakeEnrollmentRepo) GetByCode(_ context.Context, code string) (*domain.Enrollment, error) {
	for _, e := range r.rows {
		if e.Code == code {
			return e, nil
		}
	}
	return nil, enrollmentRepo.ErrEnrollmentNotFound
}

func (r *fakeEnrollmentRepo) DeleteByCode(_ context.Context, code string) (int64, error) {
	kept := r.rows[:0]
	var deleted int64
	for _, e := range r.rows {
		if e.Code == code {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	r.rows = kept
	return deleted, nil
}

func (r *fakeEnrollmentRepo) DeleteByEmailAndDate(_ context.Context, email string, date time.Time) (int64, error) {
	kept := r.rows[:0]
	var deleted int64
	for _, e := range r.rows {
		if strings.EqualFold(e.Email, email) && e.Date.Equal(date) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	r.rows = kept
	return deleted, nil
}

type fakeRoster struct {
	emails map[string]*domain.Instructor
}

func (r *fakeRoster) FindByEmail(_ context.Context, email string) (*domain.Instructor, error) {
	for stored, instructor := range r.emails {
		if strings.EqualFold(stored, email) {
			return instructor, nil
		}
	}
	return nil, roster.ErrInstructorNotFound
}

type fakeNotifications struct {
	recorded []*domain.Notification
}

func (n *fakeNotifications) Record(_ context.Context, notification *domain.Notification) error {
	n.recorded = append(n.recorded, notification)
	return nil
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func enrollmentRow(code, email string, date time.Time) *domain.Enrollment {
	return &domain.Enrollment{
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     email,
		Date:      date,
		StartTime: types.TimeString("19:00"),
		Code:      code,
	}
}

func newUseCase(repo *fakeEnrollmentRepo, rosterFake *fakeRoster, notifications *fakeNotifications) *UseCase {
	return NewUseCase(repo, rosterFake, notifications, passthroughTx{}, nopLogger{})
}

func TestExecute_CancelSingleEnrollment(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeEnrollmentRepo{rows: []*domain.Enrollment{
		enrollmentRow("AB12", "maria@example.edu", date),
		enrollmentRow("CD34", "other@example.edu", date),
	}}
	notifications := &fakeNotifications{}
	uc := newUseCase(repo, &fakeRoster{emails: map[string]*domain.Instructor{}}, notifications)

	resp, err := uc.Execute(context.Background(), &Request{Code: "AB12"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.DeletedCount)
	assert.False(t, resp.Instructor)
	assert.Len(t, repo.rows, 1)

	require.Len(t, notifications.recorded, 1)
	assert.Equal(t, domain.KindCancellation, notifications.recorded[0].Kind)
}

func TestExecute_CodeNormalized(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeEnrollmentRepo{rows: []*domain.Enrollment{
		enrollmentRow("AB12", "maria@example.edu", date),
	}}
	uc := newUseCase(repo, &fakeRoster{emails: map[string]*domain.Instructor{}}, &fakeNotifications{})

	resp, err := uc.Execute(context.Background(), &Request{Code: "  ab12 "})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.DeletedCount)
}

func TestExecute_InstructorCodeReleasesWholeDay(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	repo := &fakeEnrollmentRepo{}
	for _, code := range []string{"AA11", "BB22", "CC33", "DD44", "EE55", "FF66", "GG77", "HH88"} {
		repo.rows = append(repo.rows, enrollmentRow(code, "prof@example.edu", date))
	}
	// Запись другого человека на соседнюю дату не должна пострадать
	otherDate := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)
	repo.rows = append(repo.rows, enrollmentRow("ZZ99", "prof@example.edu", otherDate))

	notifications := &fakeNotifications{}
	rosterFake := &fakeRoster{emails: map[string]*domain.Instructor{
		"prof@example.edu": {ID: 1, Name: "Dr. Lee", Email: "prof@example.edu"},
	}}
	uc := newUseCase(repo, rosterFake, notifications)

	// Предъявлен не первый код дня
	resp, err := uc.Execute(context.Background(), &Request{Code: "EE55"})

	require.NoError(t, err)
	assert.Equal(t, int64(8), resp.DeletedCount)
	assert.True(t, resp.Instructor)
	assert.Len(t, repo.rows, 1)

	require.Len(t, notifications.recorded, 1)
	assert.True(t, notifications.recorded[0].IsInstructor)
}

func TestExecute_UnknownCode(t *testing.T) {
	repo := &fakeEnrollmentRepo{}
	uc := newUseCase(repo, &fakeRoster{emails: map[string]*domain.Instructor{}}, &fakeNotifications{})

	_, err := uc.Execute(context.Background(), &Request{Code: "XX99"})
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestExecute_MalformedCode(t *testing.T) {
	uc := newUseCase(&fakeEnrollmentRepo{}, &fakeRoster{emails: map[string]*domain.Instructor{}}, &fakeNotifications{})

	tests := []string{"", "abc", "ABCDE", "ab!?"}
	for _, code := range tests {
		_, err := uc.Execute(context.Background(), &Request{Code: code})
		assert.ErrorIs(t, err, ErrInvalidInput, "code=%q", code)
	}
}

func TestExecute_DoubleCancel(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeEnrollmentRepo{rows: []*domain.Enrollment{
		enrollmentRow("AB12", "maria@example.edu", date),
	}}
	uc := newUseCase(repo, &fakeRoster{emails: map[string]*domain.Instructor{}}, &fakeNotifications{})

	_, err := uc.Execute(context.Background(), &Request{Code: "AB12"})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{Code: "AB12"})
	assert.ErrorIs(t, err, ErrCodeNotFound)
}
