package verify_instructor

import (
	"net/http"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
)

const msgMissingEmail = "email query parameter is required"

type Handler struct {
	roster RosterService
	logger Logger
}

func NewHandler(roster RosterService, logger Logger) *Handler {
	return &Handler{
		roster: roster,
		logger: logger,
	}
}

// Handle GET /api/v1/admin/instructors/verify?email=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	result, err := h.roster.Verify(r.Context(), email)
	if err != nil {
		h.logger.Error("GET /admin/instructors/verify - Failed for email=%s: %v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
