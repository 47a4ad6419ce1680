package get_available_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

type fakeEnrollmentRepo struct {
	counts []*domain.AvailableDate
}

func (r *fakeEnrollmentRepo) CountsByDateRange(_ context.Context, _, _ time.Time) ([]*domain.AvailableDate, error) {
	return r.counts, nil
}

type fakeBlockedRepo struct {
	blocked []*domain.BlockedDate
}

func (r *fakeBlockedRepo) ListInRange(_ context.Context, _, _ time.Time) ([]*domain.BlockedDate, error) {
	return r.blocked, nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
}

func newUseCase(enrollments *fakeEnrollmentRepo, blocked *fakeBlockedRepo) *UseCase {
	uc := NewUseCase(enrollments, blocked, nopLogger{})
	uc.timeProvider = &fixedClock{now: time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)}
	return uc
}

func TestExecute_HorizonIncludesBothBounds(t *testing.T) {
	uc := newUseCase(&fakeEnrollmentRepo{}, &fakeBlockedRepo{})

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Dates, domain.AvailableDatesHorizonDays+1)
	assert.Equal(t, "2026-09-01", resp.Dates[0].Date)
	assert.Equal(t, "2026-10-01", resp.Dates[len(resp.Dates)-1].Date)

	for _, d := range resp.Dates {
		assert.Equal(t, 0, d.OccupiedCount)
		assert.Equal(t, domain.DailyCapacity, d.FreeSlots)
	}
}

func TestExecute_FullDaysSkipped(t *testing.T) {
	enrollments := &fakeEnrollmentRepo{counts: []*domain.AvailableDate{
		{Date: day(5), OccupiedCount: domain.DailyCapacity},
		{Date: day(6), OccupiedCount: 3},
	}}
	uc := newUseCase(enrollments, &fakeBlockedRepo{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	byDate := make(map[string]DateInfo)
	for _, d := range resp.Dates {
		byDate[d.Date] = d
	}

	_, fullPresent := byDate["2026-09-05"]
	assert.False(t, fullPresent)

	partial, ok := byDate["2026-09-06"]
	require.True(t, ok)
	assert.Equal(t, 3, partial.OccupiedCount)
	assert.Equal(t, domain.DailyCapacity-3, partial.FreeSlots)
}

func TestExecute_BlockedDatesSkipped(t *testing.T) {
	blocked := &fakeBlockedRepo{blocked: []*domain.BlockedDate{
		{Date: day(7)},
		{Date: day(8)},
	}}
	uc := newUseCase(&fakeEnrollmentRepo{}, blocked)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Dates, domain.AvailableDatesHorizonDays-1)

	for _, d := range resp.Dates {
		assert.NotEqual(t, "2026-09-07", d.Date)
		assert.NotEqual(t, "2026-09-08", d.Date)
	}
}
