package transaction

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bolsofacil/api/internal/period"
)

// periodFromQuery builds the period filter from query parameters. Supported
// shapes: period=week, start_date/end_date (inclusive range), year alone, or
// month+year. Missing parameters default to the current month.
func periodFromQuery(r *http.Request, now time.Time) (period.Period, error) {
	q := r.URL.Query()

	if q.Get("period") == "week" {
		return period.Week(now), nil
	}

	startStr, endStr := q.Get("start_date"), q.Get("end_date")
	if startStr != "" || endStr != "" {
		start, err := time.Parse(time.DateOnly, startStr)
		if err != nil {
			return period.Period{}, fmt.Errorf("invalid start_date %q", startStr)
		}

		end, err := time.Parse(time.DateOnly, endStr)
		if err != nil {
			return period.Period{}, fmt.Errorf("invalid end_date %q", endStr)
		}

		return period.Range(start, end), nil
	}

	month, hasMonth := intQuery(r, "month")
	year, hasYear := intQuery(r, "year")

	if !hasYear {
		year = now.Year()
	}

	if hasYear && !hasMonth {
		return period.Year(year), nil
	}

	if !hasMonth {
		month = int(now.Month())
	}

	return period.Month(month, year), nil
}

func intQuery(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return v, true
}
