package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in integer cents. All domain code works with
// Cents; decimal strings exist only at the parse/format boundary.
type Cents int64

// Parse converts a decimal amount string into cents. Both Brazilian
// ("1.234,56") and plain ("1234.56") notations are accepted.
func Parse(s string) (Cents, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "R$")
	clean = strings.TrimSpace(clean)

	if clean == "" {
		return 0, fmt.Errorf("parsing amount: empty string")
	}

	if strings.Contains(clean, ",") {
		// Comma is the decimal separator; dots are thousand separators.
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return FromDecimal(d), nil
}

// FromDecimal rounds a decimal amount to the nearest cent.
func FromDecimal(d decimal.Decimal) Cents {
	return Cents(d.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// Decimal returns the amount as a decimal value in currency units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// String formats the amount with two decimal places, e.g. "1234.56".
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

func (c Cents) Neg() Cents {
	return -c
}
