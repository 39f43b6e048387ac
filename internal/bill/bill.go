package bill

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bolsofacil/api/internal/money"
)

var (
	ErrNotFound          = errors.New("bill not found")
	ErrInstanceNotFound  = errors.New("bill instance not found")
	ErrNoPendingInstance = errors.New("no pending bill instance")
	ErrAlreadyPaid       = errors.New("bill instance already paid")
	ErrInvalid           = errors.New("invalid bill")
)

// Category classifies the kind of obligation a bill represents.
type Category string

const (
	CategoryHousing       Category = "housing"
	CategoryUtilities     Category = "utilities"
	CategoryTransport     Category = "transport"
	CategorySubscriptions Category = "subscriptions"
	CategoryInsurance     Category = "insurance"
	CategoryOther         Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryHousing, CategoryUtilities, CategoryTransport,
		CategorySubscriptions, CategoryInsurance, CategoryOther:
		return true
	}

	return false
}

// Status is the payment state of a bill or of one of its instances.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// Bill is a recurring obligation template. Concrete occurrences are
// materialized as Instances.
type Bill struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Description  string
	Amount       money.Cents
	Category     Category
	Status       Status
	Active       bool
	Recurrence   Recurrence
	PreferredDay int
	ReminderDays int
	LastPaidAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Instance is one dated occurrence of a bill. At most one instance exists
// per (bill, month, year).
type Instance struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	BillID       uuid.UUID
	Amount       *money.Cents // override; falls back to the bill amount
	Status       Status
	DueDate      time.Time
	PaidAt       *time.Time
	Month        int
	Year         int
	PreferredDay int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// EffectiveAmount resolves the amount an instance is worth: its own override
// when set and different from the bill's default, the bill's default
// otherwise.
func (i *Instance) EffectiveAmount(billAmount money.Cents) money.Cents {
	if i.Amount != nil && *i.Amount != billAmount {
		return *i.Amount
	}

	return billAmount
}
