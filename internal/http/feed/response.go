package feed

import (
	"time"

	"github.com/google/uuid"

	"github.com/bolsofacil/api/internal/feed"
	"github.com/bolsofacil/api/internal/money"
	"github.com/bolsofacil/api/internal/transaction"
)

type recordResponse struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Amount      money.Cents      `json:"amount"`
	Type        transaction.Type `json:"type"`
	Category    string           `json:"category,omitempty"`
	Description string           `json:"description,omitempty"`
	Status      string           `json:"status,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Day         int              `json:"day,omitempty"`
	Month       int              `json:"month"`
	Year        int              `json:"year"`
	IsBill      bool             `json:"is_bill"`
	BillID      *uuid.UUID       `json:"bill_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(r *feed.UnifiedTransaction) recordResponse {
	return recordResponse{
		ID:          r.ID,
		Title:       r.Title,
		Amount:      r.Amount,
		Type:        r.Type,
		Category:    r.Category,
		Description: r.Description,
		Status:      r.Status,
		Date:        r.Date,
		Day:         r.Day,
		Month:       r.Month,
		Year:        r.Year,
		IsBill:      r.IsBill,
		BillID:      r.BillID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toResponseList(records []*feed.UnifiedTransaction) []recordResponse {
	resp := make([]recordResponse, len(records))
	for i, r := range records {
		resp[i] = toResponse(r)
	}

	return resp
}
