package notifications

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	notificationsService "github.com/m04kA/SMC-LabBookingService/internal/service/notifications"
)

const (
	msgInvalidID            = "invalid notification id"
	msgNotificationNotFound = "notification not found"
)

type Handler struct {
	service NotificationsService
	logger  Logger
}

func NewHandler(service NotificationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/notifications
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListRecent(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/notifications - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleMarkRead PATCH /api/v1/admin/notifications/{id}/read
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.MarkRead(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, notificationsService.ErrNotificationNotFound):
			h.logger.Warn("PATCH /admin/notifications/{id}/read - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotificationNotFound)

		default:
			h.logger.Error("PATCH /admin/notifications/{id}/read - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// HandleMarkAllRead PATCH /api/v1/admin/notifications/read-all
func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkAllRead(r.Context()); err != nil {
		h.logger.Error("PATCH /admin/notifications/read-all - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
