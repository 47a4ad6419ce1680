package create_enrollment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	createEnrollment "github.com/m04kA/SMC-LabBookingService/internal/usecase/create_enrollment"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDate          = "invalid date format, expected YYYY-MM-DD"
	msgOutsideTimeWindow    = "start time must be between 18:40 and 22:00"
	msgInvalidEnrollDate    = "enrollment date cannot be in the past"
	msgDateBlocked          = "this date is not available for enrollment"
	msgDuplicateEnrollment  = "this email is already enrolled on the selected date"
	msgNoSlotsAvailable     = "no slots available on the selected date"
	msgDayAlreadyHasEntries = "the date already has enrollments and cannot be reserved entirely"
)

type Handler struct {
	useCase CreateEnrollmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateEnrollmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/enrollments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, false)
}

// HandleAdmin POST /api/v1/admin/enrollments
// Отличается только обходом блокировки даты.
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, true)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, bypassBlockedDates bool) {
	var req CreateEnrollmentRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /enrollments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bypassBlockedDates)
	if err != nil {
		h.logger.Warn("POST /enrollments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createEnrollment.ErrOutsideTimeWindow):
			h.logger.Warn("POST /enrollments - Time outside window: email=%s, time=%s", req.Email, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideTimeWindow)

		case errors.Is(err, createEnrollment.ErrInvalidDate):
			h.logger.Warn("POST /enrollments - Date in the past: email=%s, date=%s", req.Email, req.Date)
			handlers.RespondBadRequest(w, msgInvalidEnrollDate)

		case errors.Is(err, createEnrollment.ErrDateBlocked):
			h.logger.Warn("POST /enrollments - Date blocked: email=%s, date=%s", req.Email, req.Date)
			handlers.RespondBadRequest(w, msgDateBlocked)

		case errors.Is(err, createEnrollment.ErrDuplicateEnrollment):
			h.logger.Warn("POST /enrollments - Duplicate enrollment: email=%s, date=%s", req.Email, req.Date)
			handlers.RespondBadRequest(w, msgDuplicateEnrollment)

		case errors.Is(err, createEnrollment.ErrNoSlotsAvailable):
			h.logger.Warn("POST /enrollments - No slots available: email=%s, date=%s", req.Email, req.Date)
			handlers.RespondBadRequest(w, msgNoSlotsAvailable)

		case errors.Is(err, createEnrollment.ErrDateAlreadyHasEnrollments):
			h.logger.Warn("POST /enrollments - Instructor day conflict: email=%s, date=%s", req.Email, req.Date)
			handlers.RespondBadRequest(w, msgDayAlreadyHasEntries)

		case errors.Is(err, createEnrollment.ErrInvalidInput):
			h.logger.Warn("POST /enrollments - Invalid input: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /enrollments - Failed to create enrollment: email=%s, date=%s, error=%v",
				req.Email, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /enrollments - Enrollment created: email=%s, date=%s, instructor=%t",
		result.Email, result.Date, result.Instructor)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
