package get_available_dates

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// UseCase use case получения доступных дат
type UseCase struct {
	enrollmentRepo EnrollmentRepository
	blockedRepo    BlockedDateRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	enrollmentRepo EnrollmentRepository,
	blockedRepo BlockedDateRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		enrollmentRepo: enrollmentRepo,
		blockedRepo:    blockedRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute возвращает даты ближайшего горизонта, на которые еще можно
// записаться: не заблокированные и с хотя бы одним свободным слотом.
// Горизонт включает обе границы: сегодня и сегодня + AvailableDatesHorizonDays.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, domain.AvailableDatesHorizonDays)

	counts, err := uc.enrollmentRepo.CountsByDateRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get occupancy counts: %v", err)
		return nil, fmt.Errorf("%w: failed to get occupancy counts: %v", ErrInternal, err)
	}

	blocked, err := uc.blockedRepo.ListInRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
	}

	occupied := make(map[string]int, len(counts))
	for _, c := range counts {
		occupied[c.Date.Format(domain.DateFormat)] = c.OccupiedCount
	}

	blockedSet := make(map[string]struct{}, len(blocked))
	for _, b := range blocked {
		blockedSet[b.Date.Format(domain.DateFormat)] = struct{}{}
	}

	resp := &Response{Dates: make([]DateInfo, 0, domain.AvailableDatesHorizonDays+1)}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format(domain.DateFormat)

		if _, ok := blockedSet[key]; ok {
			continue
		}

		day := domain.AvailableDate{Date: d, OccupiedCount: occupied[key]}
		if day.IsFull() {
			continue
		}

		resp.Dates = append(resp.Dates, DateInfo{
			Date:          key,
			OccupiedCount: day.OccupiedCount,
			FreeSlots:     day.FreeSlots(),
		})
	}

	return resp, nil
}
