package cancel_enrollment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	cancelEnrollment "github.com/m04kA/SMC-LabBookingService/internal/usecase/cancel_enrollment"
)

const (
	msgInvalidCode  = "invalid cancellation code"
	msgCodeNotFound = "cancellation code not found"
)

type Handler struct {
	useCase CancelEnrollmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelEnrollmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/enrollments/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	result, err := h.useCase.Execute(r.Context(), &cancelEnrollment.Request{Code: code})
	if err != nil {
		switch {
		case errors.Is(err, cancelEnrollment.ErrInvalidInput):
			h.logger.Warn("DELETE /enrollments/{code} - Malformed code=%q", code)
			handlers.RespondBadRequest(w, msgInvalidCode)

		case errors.Is(err, cancelEnrollment.ErrCodeNotFound):
			h.logger.Warn("DELETE /enrollments/{code} - Code not found: %s", code)
			handlers.RespondNotFound(w, msgCodeNotFound)

		default:
			h.logger.Error("DELETE /enrollments/{code} - Failed to cancel: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /enrollments/{code} - Cancelled %d enrollment(s), instructor=%t",
		result.DeletedCount, result.Instructor)
	handlers.RespondJSON(w, http.StatusOK, result)
}
