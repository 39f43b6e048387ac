package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bolsofacil/api/internal/money"
)

var (
	ErrNotFound = errors.New("transaction not found")
	ErrInvalid  = errors.New("invalid transaction")
)

// Type represents the direction of a transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single dated movement of money. Month and Year are the
// summary period the amount is bucketed into; they normally follow Date but
// bill payments pin them to the paid instance's period instead.
type Transaction struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Amount      money.Cents
	Type        Type
	Category    string
	Description string
	Date        time.Time
	Month       int
	Year        int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
