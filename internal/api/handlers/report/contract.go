package report

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/service/reports"
)

type ReportsService interface {
	Daily(ctx context.Context, date time.Time) (*reports.Report, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
