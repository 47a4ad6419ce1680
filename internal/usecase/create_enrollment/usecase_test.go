package create_enrollment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	blockedRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/blockeddate"
	enrollmentRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/enrollment"
	"github.com/m04kA/SMC-LabBookingService/internal/integrations/mailer"
	"github.com/m04kA/SMC-LabBookingService/internal/service/roster"
	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// Фейки уровня usecase. Транзакция эмулируется снимком состояния:
// при ошибке fn все изменения откатываются, как это делает БД.

type fixture struct {
	enrollments   *fakeEnrollmentRepo
	blocked       *fakeBlockedRepo
	roster        *fakeRoster
	notifications *fakeNotifications
	mail          *fakeMailer
	codes         *seqCodes
	tx            *fakeTxManager
	now           time.Time
}

type fakeEnrollmentRepo struct {
	rows   []*domain.Enrollment
	nextID int64
}

func (r *fakeEnrollmentRepo) Create(_ context.Context, e *domain.Enrollment) (*domain.Enrollment, error) {
	for _, existing := range r.rows {
		if existing.Code == e.Code {
			return nil, enrollmentRepo.ErrCodeAlreadyExists
		}
	}

	r.nextID++
	saved := *e
	saved.ID = r.nextID
	saved.CreatedAt = time.Now()
	r.rows = append(r.rows, &saved)

	return &saved, nil
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

type fakeBlockedRepo struct {
	dates map[string]*domain.BlockedDate
}

func (r *fakeBlockedRepo) GetByDate(_ context.Context, date time.Time) (*domain.BlockedDate, error) {
	if b, ok := r.dates[date.Format(domain.DateFormat)]; ok {
		return b, nil
	}
	return nil, blockedRepo.ErrBlockedDateNotFound
}

type fakeRoster struct {
	byEmail map[string]*domain.Instructor
}

func (r *fakeRoster) FindByEmail(_ context.Context, email string) (*domain.Instructor, error) {
	for stored, instructor := range r.byEmail {
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

type fakeMailer struct {
	sent []mailer.Confirmation
	err  error
}

func (m *fakeMailer) SendEnrollmentConfirmation(_ context.Context, conf mailer.Confirmation) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, conf)
	return nil
}

type seqCodes struct {
	codes []string
	i     int
}

func (s *seqCodes) Generate() string {
	if s.i >= len(s.codes) {
		s.i = len(s.codes) - 1
	}
	code := s.codes[s.i]
	s.i++
	return code
}

// fakeTxManager откатывает изменения фейковых хранилищ при ошибке fn.
// onBegin позволяет тесту изменить состояние перед открытием транзакции.
type fakeTxManager struct {
	f       *fixture
	onBegin func()
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.onBegin != nil {
		m.onBegin()
	}

	rowsSnapshot := append([]*domain.Enrollment(nil), m.f.enrollments.rows...)
	notificationsSnapshot := append([]*domain.Notification(nil), m.f.notifications.recorded...)

	if err := fn(ctx); err != nil {
		m.f.enrollments.rows = rowsSnapshot
		m.f.notifications.recorded = notificationsSnapshot
		return err
	}

	return nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture() *fixture {
	f := &fixture{
		enrollments:   &fakeEnrollmentRepo{},
		blocked:       &fakeBlockedRepo{dates: map[string]*domain.BlockedDate{}},
		roster:        &fakeRoster{byEmail: map[string]*domain.Instructor{}},
		notifications: &fakeNotifications{},
		mail:          &fakeMailer{},
		codes: &seqCodes{codes: []string{
			"AA11", "BB22", "CC33", "DD44", "EE55", "FF66", "GG77", "HH88", "JJ99", "KK00",
		}},
		now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
	f.tx = &fakeTxManager{f: f}
	return f
}

func (f *fixture) useCase() *UseCase {
	uc := NewUseCase(
		f.enrollments,
		f.blocked,
		f.roster,
		f.notifications,
		f.mail,
		f.codes,
		f.tx,
		nopLogger{},
	)
	uc.timeProvider = &fixedClock{now: f.now}
	return uc
}

func validRequest() *Request {
	return &Request{
		FirstName:    "Maria",
		LastName:     "Santos",
		Email:        "maria@example.edu",
		AcademicYear: "3rd year",
		Date:         time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    mustTime("19:00"),
	}
}

func mustTime(s string) types.TimeString {
	return types.TimeString(s)
}

func TestExecute_RegularEnrollment(t *testing.T) {
	f := newFixture()
	uc := f.useCase()

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "AA11", resp.Code)
	assert.False(t, resp.Instructor)
	assert.Equal(t, "2026-09-10", resp.Date)
	assert.Len(t, f.enrollments.rows, 1)

	require.Len(t, f.notifications.recorded, 1)
	assert.Equal(t, domain.KindNew, f.notifications.recorded[0].Kind)
	assert.False(t, f.notifications.recorded[0].IsInstructor)

	require.Len(t, f.mail.sent, 1)
	assert.Equal(t, "AA11", f.mail.sent[0].Code)
	assert.True(t, resp.EmailSent)
}

func TestExecute_TimeWindowBounds(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		wantErr   error
	}{
		{"one minute before opening", "18:39", ErrOutsideTimeWindow},
		{"exactly at opening", "18:40", nil},
		{"exactly at closing", "22:00", nil},
		{"one minute after closing", "22:01", ErrOutsideTimeWindow},
		{"midday", "12:00", ErrOutsideTimeWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			uc := f.useCase()

			req := validRequest()
			req.StartTime = mustTime(tt.startTime)

			_, err := uc.Execute(context.Background(), req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecute_PastDateRejected(t *testing.T) {
	f := newFixture()
	uc := f.useCase()

	req := validRequest()
	req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SameDayAllowed(t *testing.T) {
	f := newFixture()
	uc := f.useCase()

	req := validRequest()
	req.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_BlockedDate(t *testing.T) {
	f := newFixture()
	f.blocked.dates["2026-09-10"] = &domain.BlockedDate{Date: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)}
	uc := f.useCase()

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateBlocked)
	assert.Empty(t, f.enrollments.rows)
	assert.Empty(t, f.notifications.recorded)
}

func TestExecute_AdminBypassesBlockedDate(t *testing.T) {
	f := newFixture()
	f.blocked.dates["2026-09-10"] = &domain.BlockedDate{Date: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)}
	uc := f.useCase()

	req := validRequest()
	req.BypassBlockedDates = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "AA11", resp.Code)
}

func TestExecute_DuplicateEmailCaseInsensitive(t *testing.T) {
	f := newFixture()
	uc := f.useCase()

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Email = "MARIA@Example.EDU"
	req.StartTime = mustTime("20:00")

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateEnrollment)
	assert.Len(t, f.enrollments.rows, 1)
}

func TestExecute_CapacityExhausted(t *testing.T) {
	f := newFixture()
	uc := f.useCase()

	for i := 0; i < domain.DailyCapacity; i++ {
		req := validRequest()
		req.Email = string(rune('a'+i)) + "@example.edu"
		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
	}

	req := validRequest()
	req.Email = "late@example.edu"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoSlotsAvailable)
	assert.Len(t, f.enrollments.rows, domain.DailyCapacity)
}

func TestExecute_InstructorClaimsWholeDay(t *testing.T) {
	f := newFixture()
	f.roster.byEmail["prof@example.edu"] = &domain.Instructor{ID: 1, Name: "Dr. Lee", Email: "prof@example.edu"}
	uc := f.useCase()

	req := validRequest()
	req.Email = "prof@example.edu"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Instructor)
	assert.Len(t, resp.Codes, domain.DailyCapacity)
	assert.Len(t, f.enrollments.rows, domain.DailyCapacity)

	seen := make(map[string]struct{})
	for _, e := range f.enrollments.rows {
		assert.Equal(t, "Dr. Lee", e.FirstName)
		assert.Equal(t, "prof@example.edu", e.Email)
		seen[e.Code] = struct{}{}
	}
	assert.Len(t, seen, domain.DailyCapacity)

	require.Len(t, f.notifications.recorded, 1)
	assert.True(t, f.notifications.recorded[0].IsInstructor)
}

func TestExecute_InstructorRejectedWhenDayOccupied(t *testing.T) {
	f := newFixture()
	f.roster.byEmail["prof@example.edu"] = &domain.Instructor{ID: 1, Name: "Dr. Lee", Email: "prof@example.edu"}
	uc := f.useCase()

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Email = "prof@example.edu"

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateAlreadyHasEnrollments)
	assert.Len(t, f.enrollments.rows, 1)
}

func TestExecute_RosterReadInsideTransaction(t *testing.T) {
	f := newFixture()
	uc := f.useCase()

	// Преподаватель попадает в реестр после старта use case, но до
	// открытия транзакции: запись обязана увидеть свежую роль
	f.tx.onBegin = func() {
		f.roster.byEmail["prof@example.edu"] = &domain.Instructor{ID: 1, Name: "Dr. Lee", Email: "prof@example.edu"}
	}

	req := validRequest()
	req.Email = "prof@example.edu"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Instructor)
	assert.Len(t, f.enrollments.rows, domain.DailyCapacity)
}

func TestExecute_CodeCollisionRetried(t *testing.T) {
	f := newFixture()
	uc := f.useCase()

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Генератор снова выдаст AA11 первому кандидату, затем BB22
	f.codes.i = 0

	req := validRequest()
	req.Email = "second@example.edu"
	req.StartTime = mustTime("20:00")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "BB22", resp.Code)
	assert.Len(t, f.enrollments.rows, 2)
	assert.Len(t, f.notifications.recorded, 2)
}

func TestExecute_EmailFailureDoesNotFailEnrollment(t *testing.T) {
	f := newFixture()
	f.mail.err = mailer.ErrInternal
	uc := f.useCase()

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.EmailSent)
	assert.Len(t, f.enrollments.rows, 1)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty first name", func(r *Request) { r.FirstName = "  " }},
		{"empty last name", func(r *Request) { r.LastName = "" }},
		{"empty email", func(r *Request) { r.Email = "" }},
		{"empty academic year", func(r *Request) { r.AcademicYear = "" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "7pm" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			uc := f.useCase()

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.Error(t, err)
			assert.Empty(t, f.enrollments.rows)
		})
	}
}
