package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/bolsofacil/api/internal/money"
	"github.com/bolsofacil/api/internal/transaction"
)

type transactionResponse struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Amount      money.Cents      `json:"amount"`
	Type        transaction.Type `json:"type"`
	Category    string           `json:"category,omitempty"`
	Description string           `json:"description,omitempty"`
	Date        time.Time        `json:"date"`
	Month       int              `json:"month"`
	Year        int              `json:"year"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Title:       tx.Title,
		Amount:      tx.Amount,
		Type:        tx.Type,
		Category:    tx.Category,
		Description: tx.Description,
		Date:        tx.Date,
		Month:       tx.Month,
		Year:        tx.Year,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
