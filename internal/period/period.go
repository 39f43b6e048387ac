// Package period models the time buckets used to scope transaction and
// summary queries: a calendar month, a calendar year, the current week, or an
// explicit date range.
package period

import (
	"fmt"
	"time"
)

type Kind string

const (
	KindMonth Kind = "month"
	KindYear  Kind = "year"
	KindWeek  Kind = "week"
	KindRange Kind = "range"
)

type Period struct {
	Kind  Kind
	Month int // 1-12, set for month and week kinds
	Year  int // set for month, year and week kinds
	Start time.Time
	End   time.Time // exclusive
}

// Month returns a period covering one calendar month.
func Month(month, year int) Period {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	return Period{
		Kind:  KindMonth,
		Month: month,
		Year:  year,
		Start: start,
		End:   start.AddDate(0, 1, 0),
	}
}

// Year returns a period covering one calendar year.
func Year(year int) Period {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	return Period{
		Kind:  KindYear,
		Year:  year,
		Start: start,
		End:   start.AddDate(1, 0, 0),
	}
}

// Week returns the Sunday-to-Saturday week containing now. Month and Year are
// set to now's calendar month so callers can fetch month-bucketed rows and
// narrow them to the week window afterwards.
func Week(now time.Time) Period {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -int(today.Weekday()))

	return Period{
		Kind:  KindWeek,
		Month: int(now.Month()),
		Year:  now.Year(),
		Start: start,
		End:   start.AddDate(0, 0, 7),
	}
}

// Range returns a period covering [start, end] with an inclusive end date:
// the window extends one day past end so entries on the end date itself are
// kept.
func Range(start, end time.Time) Period {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	return Period{
		Kind:  KindRange,
		Start: s,
		End:   e.AddDate(0, 0, 1),
	}
}

// Window returns the half-open [start, end) interval the period covers.
func (p Period) Window() (time.Time, time.Time) {
	return p.Start, p.End
}

// Contains reports whether t falls inside the period window.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

func (p Period) Validate() error {
	switch p.Kind {
	case KindMonth, KindWeek:
		if p.Month < 1 || p.Month > 12 {
			return fmt.Errorf("invalid month %d", p.Month)
		}

		if p.Year <= 0 {
			return fmt.Errorf("invalid year %d", p.Year)
		}
	case KindYear:
		if p.Year <= 0 {
			return fmt.Errorf("invalid year %d", p.Year)
		}
	case KindRange:
		if !p.End.After(p.Start) {
			return fmt.Errorf("empty date range")
		}
	default:
		return fmt.Errorf("unknown period kind %q", p.Kind)
	}

	return nil
}
