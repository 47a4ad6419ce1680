package instructors

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/service/roster"
	rosterModels "github.com/m04kA/SMC-LabBookingService/internal/service/roster/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidID          = "invalid instructor id"
	msgInstructorNotFound = "instructor not found"
	msgEmailAlreadyExists = "instructor email already registered"
	msgMissingNameOrEmail = "name and email are required"
)

type Handler struct {
	service RosterService
	logger  Logger
}

func NewHandler(service RosterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/instructors
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/instructors - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdd POST /api/v1/admin/instructors
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req rosterModels.AddInstructorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/instructors - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Name == "" || req.Email == "" {
		handlers.RespondBadRequest(w, msgMissingNameOrEmail)
		return
	}

	result, err := h.service.Add(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrEmailAlreadyExists):
			h.logger.Warn("POST /admin/instructors - Email exists: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailAlreadyExists)

		default:
			h.logger.Error("POST /admin/instructors - Failed: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/instructors - Added instructor id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleRemove DELETE /api/v1/admin/instructors/{id}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, roster.ErrInstructorNotFound):
			h.logger.Warn("DELETE /admin/instructors/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgInstructorNotFound)

		default:
			h.logger.Error("DELETE /admin/instructors/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/instructors/{id} - Removed id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
