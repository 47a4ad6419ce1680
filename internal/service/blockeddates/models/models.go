package models

import (
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// Request модели

// BlockDateRequest запрос на блокировку даты
type BlockDateRequest struct {
	Date   string `json:"date"`
	Reason string `json:"reason,omitempty"`
}

// Response модели

// BlockedDateResponse ответ с данными заблокированной даты
type BlockedDateResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
}

// BlockedDateListResponse список заблокированных дат
type BlockedDateListResponse struct {
	BlockedDates []BlockedDateResponse `json:"blockedDates"`
}

// FromDomainBlockedDate конвертирует domain модель в response
func FromDomainBlockedDate(b *domain.BlockedDate) *BlockedDateResponse {
	return &BlockedDateResponse{
		ID:        b.ID,
		Date:      b.Date.Format(domain.DateFormat),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBlockedDateList конвертирует список domain моделей в response
func FromDomainBlockedDateList(blocked []*domain.BlockedDate) *BlockedDateListResponse {
	resp := &BlockedDateListResponse{
		BlockedDates: make([]BlockedDateResponse, 0, len(blocked)),
	}

	for _, b := range blocked {
		resp.BlockedDates = append(resp.BlockedDates, *FromDomainBlockedDate(b))
	}

	return resp
}
