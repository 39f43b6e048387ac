package nubank

import (
	"github.com/bolsofacil/api/internal/money"
	"github.com/bolsofacil/api/internal/transaction"
)

// signMode determines what a positive amount means for a layout.
type signMode int

const (
	// signCharge means positive values are charges (card export): a
	// positive amount is an expense, a negative one a refund.
	signCharge signMode = iota
	// signBalance means positive values are money in (account export).
	signBalance
)

// profile describes one Nubank CSV layout. Adding a layout is adding an
// entry to the profiles slice.
type profile struct {
	name        string
	dateCol     string
	dateLayout  string
	titleCol    string
	categoryCol string
	amountCol   string
	signMode    signMode
}

func (p profile) requiredCols() []string {
	cols := []string{p.dateCol, p.titleCol, p.amountCol}

	if p.categoryCol != "" {
		cols = append(cols, p.categoryCol)
	}

	return cols
}

func (p profile) typeFor(amount money.Cents) transaction.Type {
	switch p.signMode {
	case signCharge:
		if amount > 0 {
			return transaction.TypeExpense
		}

		return transaction.TypeIncome
	default:
		if amount > 0 {
			return transaction.TypeIncome
		}

		return transaction.TypeExpense
	}
}

// profiles is the ordered list of layouts to try. The card export is more
// specific (it requires a category column), so it comes first.
var profiles = []profile{
	{
		name:        "cartão",
		dateCol:     "date",
		dateLayout:  "2006-01-02",
		titleCol:    "title",
		categoryCol: "category",
		amountCol:   "amount",
		signMode:    signCharge,
	},
	{
		name:       "conta",
		dateCol:    "Data",
		dateLayout: "02/01/2006",
		titleCol:   "Descrição",
		amountCol:  "Valor",
		signMode:   signBalance,
	},
}
