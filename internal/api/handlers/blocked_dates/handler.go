package blocked_dates

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/internal/service/blockeddates"
	blockedModels "github.com/m04kA/SMC-LabBookingService/internal/service/blockeddates/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgAlreadyBlocked     = "date is already blocked"
	msgNotBlocked         = "date is not blocked"
)

type Handler struct {
	service BlockedDatesService
	logger  Logger
}

func NewHandler(service BlockedDatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/blocked-dates
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/blocked-dates - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleBlock POST /api/v1/admin/blocked-dates
func (h *Handler) HandleBlock(w http.ResponseWriter, r *http.Request) {
	var req blockedModels.BlockDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /admin/blocked-dates - Invalid date=%q", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Block(r.Context(), date, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, blockeddates.ErrDateAlreadyBlocked):
			h.logger.Warn("POST /admin/blocked-dates - Already blocked: date=%s", req.Date)
			handlers.RespondConflict(w, msgAlreadyBlocked)

		default:
			h.logger.Error("POST /admin/blocked-dates - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-dates - Blocked date=%s", req.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUnblock DELETE /api/v1/admin/blocked-dates/{date}
func (h *Handler) HandleUnblock(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-dates/{date} - Invalid date=%q", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.Unblock(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, blockeddates.ErrBlockedDateNotFound):
			h.logger.Warn("DELETE /admin/blocked-dates/{date} - Not blocked: date=%s", rawDate)
			handlers.RespondNotFound(w, msgNotBlocked)

		default:
			h.logger.Error("DELETE /admin/blocked-dates/{date} - Failed: date=%s, error=%v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-dates/{date} - Unblocked date=%s", rawDate)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
