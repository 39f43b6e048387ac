package feed

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bolsofacil/api/internal/money"
	"github.com/bolsofacil/api/internal/transaction"
)

var ErrInvalidQuery = errors.New("invalid feed query")

// SortKey picks the ordering of the merged feed.
type SortKey string

const (
	// SortRecency orders by when the record was created, newest first.
	SortRecency SortKey = "recency"
	// SortDate orders by the transaction date or bill due date, newest
	// first.
	SortDate SortKey = "date"
)

func (k SortKey) Valid() bool {
	return k == SortRecency || k == SortDate
}

// UnifiedTransaction is one record of the merged feed: either an ad-hoc
// transaction or a bill instance projected into the same shape. For
// transactions Date is set; for bill instances Day, Month and Year locate
// the occurrence and BillID points at the parent bill.
type UnifiedTransaction struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Amount      money.Cents
	Type        transaction.Type
	Category    string
	Description string
	Status      string
	Date        *time.Time
	Day         int
	Month       int
	Year        int
	IsBill      bool
	BillID      *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	// sortDate is the calendar moment used by SortDate ordering.
	sortDate time.Time
}
