package bill

import (
	"time"

	"github.com/google/uuid"

	"github.com/bolsofacil/api/internal/bill"
	"github.com/bolsofacil/api/internal/money"
)

type billResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Amount       money.Cents     `json:"amount"`
	Category     bill.Category   `json:"category"`
	Status       bill.Status     `json:"status"`
	Active       bool            `json:"active"`
	Recurrence   bill.Recurrence `json:"recurrence"`
	PreferredDay int             `json:"preferred_payment_day"`
	ReminderDays int             `json:"reminder_days"`
	LastPaidAt   *time.Time      `json:"last_paid_date,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(b *bill.Bill) billResponse {
	return billResponse{
		ID:           b.ID,
		Name:         b.Name,
		Description:  b.Description,
		Amount:       b.Amount,
		Category:     b.Category,
		Status:       b.Status,
		Active:       b.Active,
		Recurrence:   b.Recurrence,
		PreferredDay: b.PreferredDay,
		ReminderDays: b.ReminderDays,
		LastPaidAt:   b.LastPaidAt,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func toResponseList(bills []*bill.Bill) []billResponse {
	resp := make([]billResponse, len(bills))
	for i, b := range bills {
		resp[i] = toResponse(b)
	}

	return resp
}

type instanceResponse struct {
	ID      uuid.UUID    `json:"id"`
	BillID  uuid.UUID    `json:"bill_id"`
	Amount  *money.Cents `json:"amount,omitempty"`
	Status  bill.Status  `json:"status"`
	DueDate time.Time    `json:"due_date"`
	PaidAt  *time.Time   `json:"paid_date,omitempty"`
	Month   int          `json:"month"`
	Year    int          `json:"year"`
}

func toInstanceResponse(inst *bill.Instance) instanceResponse {
	return instanceResponse{
		ID:      inst.ID,
		BillID:  inst.BillID,
		Amount:  inst.Amount,
		Status:  inst.Status,
		DueDate: inst.DueDate,
		PaidAt:  inst.PaidAt,
		Month:   inst.Month,
		Year:    inst.Year,
	}
}

type payResponse struct {
	Bill       billResponse     `json:"bill"`
	Instance   instanceResponse `json:"instance"`
	PaymentID  uuid.UUID        `json:"payment_id"`
	BillPaid   bool             `json:"bill_paid"`
	AmountPaid money.Cents      `json:"amount_paid"`
}

func toPayResponse(result *bill.PayResult) payResponse {
	return payResponse{
		Bill:       toResponse(result.Bill),
		Instance:   toInstanceResponse(result.Instance),
		PaymentID:  result.Payment.ID,
		BillPaid:   result.BillPaid,
		AmountPaid: result.Payment.Amount,
	}
}
