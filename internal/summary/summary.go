package summary

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bolsofacil/api/internal/money"
)

var (
	ErrNotFound      = errors.New("summary not found")
	ErrInvalidPeriod = errors.New("invalid summary period")
)

// Summary is the per-owner, per-month aggregate of income and expense.
// TotalBalance is always TotalIncome - TotalExpense; the store maintains it
// in the same statement that applies a delta.
type Summary struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Month        int
	Year         int
	TotalIncome  money.Cents
	TotalExpense money.Cents
	TotalBalance money.Cents
	UpdatedAt    time.Time
}

// Persisted reports whether the summary is backed by a stored row. A period
// with nothing to report yields an ephemeral zero summary instead of a row.
func (s *Summary) Persisted() bool {
	return s.ID != uuid.Nil
}

// Delta is a signed incremental change to a summary. The balance delta is
// derived, never supplied, so a delta can not break the balance invariant.
type Delta struct {
	Income  money.Cents
	Expense money.Cents
}

func IncomeDelta(amount money.Cents) Delta {
	return Delta{Income: amount}
}

func ExpenseDelta(amount money.Cents) Delta {
	return Delta{Expense: amount}
}

func (d Delta) Negate() Delta {
	return Delta{Income: -d.Income, Expense: -d.Expense}
}

func (d Delta) Add(other Delta) Delta {
	return Delta{Income: d.Income + other.Income, Expense: d.Expense + other.Expense}
}

func (d Delta) Balance() money.Cents {
	return d.Income - d.Expense
}

func (d Delta) IsZero() bool {
	return d.Income == 0 && d.Expense == 0
}
