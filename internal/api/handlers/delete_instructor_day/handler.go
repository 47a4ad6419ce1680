package delete_instructor_day

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/internal/service/enrollments"
)

const (
	msgMissingParams = "email and date query parameters are required"
	msgInvalidDate   = "invalid date format, expected YYYY-MM-DD"
	msgNotFound      = "no enrollments for this instructor on the given date"
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

// Handle DELETE /api/v1/admin/enrollments/instructor?email=&date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	rawDate := r.URL.Query().Get("date")

	if email == "" || rawDate == "" {
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("DELETE /admin/enrollments/instructor - Invalid date=%q", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	deleted, err := h.service.DeleteInstructorDay(r.Context(), email, date)
	if err != nil {
		switch {
		case errors.Is(err, enrollments.ErrEnrollmentNotFound):
			h.logger.Warn("DELETE /admin/enrollments/instructor - Not found: email=%s, date=%s", email, rawDate)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/enrollments/instructor - Failed: email=%s, date=%s, error=%v",
				email, rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/enrollments/instructor - Released %d slot(s): email=%s, date=%s",
		deleted, email, rawDate)
	handlers.RespondJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
