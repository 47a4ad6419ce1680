package enrollments

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	enrollmentRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/enrollment"
	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

type fakeEnrollmentRepo struct {
	rows []*domain.Enrollment
}

func (r *fakeEnrollmentRepo) GetByID(_ context.Context, id int64) (*domain.Enrollment, error) {
	for _, e := range r.rows {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, enrollmentRepo.ErrEnrollmentNotFound
}

func (r *fakeEnrollmentRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Enrollment, error) {
	result := make([]*domain.Enrollment, 0)
	for _, e := range r.rows {
		if e.Date.Equal(date) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeEnrollmentRepo) DeleteByID(_ context.Context, id int64) error {
	for i, e := range r.rows {
		if e.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return enrollmentRepo.ErrEnrollmentNotFound
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

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func row(id int64, email string, date time.Time) *domain.Enrollment {
	return &domain.Enrollment{
		ID:        id,
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     email,
		Date:      date,
		StartTime: types.TimeString("19:00"),
		Code:      "AB12",
	}
}

func TestGetByDate_SlotSummary(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeEnrollmentRepo{rows: []*domain.Enrollment{
		row(1, "a@example.edu", date),
		row(2, "b@example.edu", date),
		row(3, "c@example.edu", date.AddDate(0, 0, 1)),
	}}
	svc := NewService(repo, &fakeNotifications{}, passthroughTx{}, nopLogger{})

	resp, err := svc.GetByDate(context.Background(), date)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Used)
	assert.Equal(t, domain.DailyCapacity, resp.Total)
	assert.Len(t, resp.Enrollments, 2)
}

func TestDeleteByID_RecordsCancellation(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeEnrollmentRepo{rows: []*domain.Enrollment{row(1, "a@example.edu", date)}}
	notifications := &fakeNotifications{}
	svc := NewService(repo, notifications, passthroughTx{}, nopLogger{})

	err := svc.DeleteByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, repo.rows)
	require.Len(t, notifications.recorded, 1)
	assert.Equal(t, domain.KindCancellation, notifications.recorded[0].Kind)
}

func TestDeleteByID_NotFound(t *testing.T) {
	svc := NewService(&fakeEnrollmentRepo{}, &fakeNotifications{}, passthroughTx{}, nopLogger{})

	err := svc.DeleteByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestDeleteInstructorDay(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeEnrollmentRepo{}
	for i := int64(1); i <= int64(domain.DailyCapacity); i++ {
		repo.rows = append(repo.rows, row(i, "prof@example.edu", date))
	}
	notifications := &fakeNotifications{}
	svc := NewService(repo, notifications, passthroughTx{}, nopLogger{})

	deleted, err := svc.DeleteInstructorDay(context.Background(), "PROF@example.edu", date)

	require.NoError(t, err)
	assert.Equal(t, int64(domain.DailyCapacity), deleted)
	assert.Empty(t, repo.rows)
	require.Len(t, notifications.recorded, 1)
	assert.True(t, notifications.recorded[0].IsInstructor)
}

func TestDeleteInstructorDay_NothingToDelete(t *testing.T) {
	svc := NewService(&fakeEnrollmentRepo{}, &fakeNotifications{}, passthroughTx{}, nopLogger{})

	_, err := svc.DeleteInstructorDay(context.Background(), "prof@example.edu",
		time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
}
