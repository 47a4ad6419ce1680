package get_available_dates

import (
	"context"

	getAvailableDates "github.com/m04kA/SMC-LabBookingService/internal/usecase/get_available_dates"
)

type GetAvailableDatesUseCase interface {
	Execute(ctx context.Context) (*getAvailableDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
