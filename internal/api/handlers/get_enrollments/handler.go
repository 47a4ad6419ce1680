package get_enrollments

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

const (
	msgMissingDate = "date query parameter is required"
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	service EnrollmentsService
	logger  Logger
}

func NewHandler(service EnrollmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/enrollments?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /admin/enrollments - Invalid date=%q", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/enrollments - Failed for date=%s: %v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
