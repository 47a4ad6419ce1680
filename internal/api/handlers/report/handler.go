package report

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

const (
	msgMissingDate = "date query parameter is required"
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reports?date=YYYY-MM-DD
// Отдает PDF как attachment.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /admin/reports - Invalid date=%q", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Daily(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/reports - Failed for date=%s: %v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Content)

	h.logger.Info("GET /admin/reports - Report served for date=%s (%d bytes)", rawDate, len(result.Content))
}
