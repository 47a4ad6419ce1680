package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/service/adminauth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgAccessDenied       = "invalid access code"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	AccessCode string `json:"accessCode" validate:"required"`
}

type Handler struct {
	auth   AuthService
	logger Logger
}

func NewHandler(auth AuthService, logger Logger) *Handler {
	return &Handler{
		auth:   auth,
		logger: logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.auth.Verify(r.Context(), req.AccessCode); err != nil {
		if errors.Is(err, adminauth.ErrAccessDenied) {
			handlers.RespondUnauthorized(w, msgAccessDenied)
			return
		}
		h.logger.Error("POST /admin/login - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/login - Successful login")
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
