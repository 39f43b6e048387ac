package bill

import (
	"time"

	"github.com/bolsofacil/api/internal/money"
)

// Recurrence is the cadence at which a bill generates instances.
type Recurrence string

const (
	RecurrenceMonthly      Recurrence = "monthly"
	RecurrenceQuarterly    Recurrence = "quarterly"
	RecurrenceSemiannually Recurrence = "semiannually"
	RecurrenceAnnually     Recurrence = "annually"
)

func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceMonthly, RecurrenceQuarterly, RecurrenceSemiannually, RecurrenceAnnually:
		return true
	}

	return false
}

// StepMonths returns the number of months between consecutive occurrences.
// An unknown or empty recurrence falls back to monthly rather than failing.
func (r Recurrence) StepMonths() int {
	switch r {
	case RecurrenceQuarterly:
		return 3
	case RecurrenceSemiannually:
		return 6
	case RecurrenceAnnually:
		return 12
	default:
		return 1
	}
}

// DueDate builds the due date for (year, month, day), clamping a day past
// the end of the month to the month's last day (31 in April becomes 30).
func DueDate(year int, month time.Month, day int) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Expand materializes the instances a bill generates between start and end.
// Candidates whose due date falls before today are skipped, so no retroactive
// pending instances are created. The walk steps by whole calendar months,
// which keeps occurrences exactly StepMonths apart even across short months.
func Expand(b *Bill, start, end, today time.Time) []*Instance {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	day := b.PreferredDay
	if day < 1 {
		day = 1
	}

	step := b.Recurrence.StepMonths()
	startYear := start.Year()
	startMonth := int(start.Month()) - 1

	var instances []*Instance

	for offset := 0; ; offset += step {
		year := startYear + (startMonth+offset)/12
		month := time.Month((startMonth+offset)%12 + 1)

		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		if first.After(end) {
			break
		}

		due := DueDate(year, month, day)
		if due.Before(today) {
			continue
		}

		amount := b.Amount

		instances = append(instances, &Instance{
			OwnerID:      b.OwnerID,
			BillID:       b.ID,
			Amount:       &amount,
			Status:       StatusPending,
			DueDate:      due,
			Month:        int(month),
			Year:         year,
			PreferredDay: day,
		})
	}

	return instances
}

// groupByPeriod sums instance amounts per (month, year) bucket.
type periodKey struct {
	Month int
	Year  int
}

func groupByPeriod(instances []*Instance, billAmount money.Cents) map[periodKey]money.Cents {
	sums := make(map[periodKey]money.Cents, len(instances))

	for _, inst := range instances {
		sums[periodKey{Month: inst.Month, Year: inst.Year}] += inst.EffectiveAmount(billAmount)
	}

	return sums
}
