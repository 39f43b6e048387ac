package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bolsofacil/api/internal/auth"
	"github.com/bolsofacil/api/internal/feed"
	"github.com/bolsofacil/api/internal/period"
)

type Handler struct {
	svc *feed.Service
}

func NewHandler(svc *feed.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	p, err := periodFromQuery(r, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := feed.Query{
		Period: p,
		Sort:   feed.SortKey(r.URL.Query().Get("sort")),
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		query.Limit = limit
	}

	records, err := h.svc.List(r.Context(), ownerID, query)
	if err != nil {
		if errors.Is(err, feed.ErrInvalidQuery) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(records)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// periodFromQuery builds the feed period from query parameters. Supported
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

	month, hasMonth := intQuery(q.Get("month"))
	year, hasYear := intQuery(q.Get("year"))

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

func intQuery(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return v, true
}
