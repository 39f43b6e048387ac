package summary

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bolsofacil/api/internal/auth"
	"github.com/bolsofacil/api/internal/money"
	"github.com/bolsofacil/api/internal/summary"
)

type Handler struct {
	svc *summary.Service
}

func NewHandler(svc *summary.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

type summaryResponse struct {
	// ID is nil for ephemeral summaries that have no persisted row.
	ID           *uuid.UUID  `json:"id,omitempty"`
	Month        int         `json:"month"`
	Year         int         `json:"year"`
	TotalIncome  money.Cents `json:"total_income"`
	TotalExpense money.Cents `json:"total_expense"`
	TotalBalance money.Cents `json:"total_balance"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// get returns the owner's summary for the given month and year, defaulting
// to the current month. Missing summaries are seeded from active bills.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	month, year := int(now.Month()), now.Year()

	if raw := r.URL.Query().Get("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}

		month = v
	}

	if raw := r.URL.Query().Get("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}

		year = v
	}

	sm, err := h.svc.GetOrCreate(r.Context(), ownerID, month, year)
	if err != nil {
		if errors.Is(err, summary.ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := summaryResponse{
		Month:        sm.Month,
		Year:         sm.Year,
		TotalIncome:  sm.TotalIncome,
		TotalExpense: sm.TotalExpense,
		TotalBalance: sm.TotalBalance,
		UpdatedAt:    sm.UpdatedAt,
	}

	if sm.Persisted() {
		id := sm.ID
		resp.ID = &id
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
