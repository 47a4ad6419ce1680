package delete_enrollment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/service/enrollments"
)

const (
	msgInvalidID           = "invalid enrollment id"
	msgEnrollmentNotFound  = "enrollment not found"
	msgEnrollmentCancelled = "enrollment cancelled"
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

// Handle DELETE /api/v1/admin/enrollments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, enrollments.ErrEnrollmentNotFound):
			h.logger.Warn("DELETE /admin/enrollments/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgEnrollmentNotFound)

		default:
			h.logger.Error("DELETE /admin/enrollments/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/enrollments/{id} - Deleted id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgEnrollmentCancelled})
}
