package bill

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bolsofacil/api/internal/auth"
	"github.com/bolsofacil/api/internal/bill"
	"github.com/bolsofacil/api/internal/money"
)

type Handler struct {
	svc *bill.Service
}

func NewHandler(svc *bill.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/pay", h.pay)
	r.Post("/overdue-check", h.checkOverdue)
}

type createBillRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Amount       money.Cents     `json:"amount"`
	Category     bill.Category   `json:"category"`
	Recurrence   bill.Recurrence `json:"recurrence"`
	PreferredDay int             `json:"preferred_payment_day"`
	ReminderDays int             `json:"reminder_days"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.Create(r.Context(), ownerID, bill.CreateParams{
		Name:         req.Name,
		Description:  req.Description,
		Amount:       req.Amount,
		Category:     req.Category,
		Recurrence:   req.Recurrence,
		PreferredDay: req.PreferredDay,
		ReminderDays: req.ReminderDays,
	})
	if err != nil {
		if errors.Is(err, bill.ErrInvalid) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		limit = v
	}

	bills, err := h.svc.List(r.Context(), ownerID, limit)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(bills)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	b, err := h.svc.Get(r.Context(), ownerID, id)
	if err != nil {
		if errors.Is(err, bill.ErrNotFound) {
			http.Error(w, "bill not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateBillRequest struct {
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Amount       *money.Cents     `json:"amount,omitempty"`
	Category     *bill.Category   `json:"category,omitempty"`
	Recurrence   *bill.Recurrence `json:"recurrence,omitempty"`
	PreferredDay *int             `json:"preferred_payment_day,omitempty"`
	ReminderDays *int             `json:"reminder_days,omitempty"`
	Active       *bool            `json:"active,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.Update(r.Context(), ownerID, bill.UpdateParams{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		Amount:       req.Amount,
		Category:     req.Category,
		Recurrence:   req.Recurrence,
		PreferredDay: req.PreferredDay,
		ReminderDays: req.ReminderDays,
		Active:       req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, bill.ErrNotFound):
			http.Error(w, "bill not found", http.StatusNotFound)
		case errors.Is(err, bill.ErrInvalid):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// delete removes a single occurrence when month and year are given, the
// whole bill otherwise.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	monthStr, yearStr := r.URL.Query().Get("month"), r.URL.Query().Get("year")

	if monthStr != "" || yearStr != "" {
		month, merr := strconv.Atoi(monthStr)
		year, yerr := strconv.Atoi(yearStr)

		if merr != nil || yerr != nil {
			http.Error(w, "month and year must both be numbers", http.StatusBadRequest)
			return
		}

		err = h.svc.DeleteInstance(r.Context(), ownerID, id, month, year)
	} else {
		err = h.svc.Delete(r.Context(), ownerID, id)
	}

	if err != nil {
		switch {
		case errors.Is(err, bill.ErrNotFound), errors.Is(err, bill.ErrInstanceNotFound):
			http.Error(w, "bill not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type payBillRequest struct {
	InstanceID *uuid.UUID `json:"instance_id,omitempty"`
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req payBillRequest

	// The body is optional: without an instance id the earliest pending
	// occurrence is paid.
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	result, err := h.svc.Pay(r.Context(), ownerID, id, req.InstanceID)
	if err != nil {
		switch {
		case errors.Is(err, bill.ErrNotFound), errors.Is(err, bill.ErrInstanceNotFound):
			http.Error(w, "bill not found", http.StatusNotFound)
		case errors.Is(err, bill.ErrNoPendingInstance):
			http.Error(w, "no pending instance to pay", http.StatusConflict)
		case errors.Is(err, bill.ErrAlreadyPaid):
			http.Error(w, "instance already paid", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPayResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type checkOverdueResponse struct {
	MarkedOverdue int `json:"marked_overdue"`
}

func (h *Handler) checkOverdue(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	count, err := h.svc.CheckOverdue(r.Context(), ownerID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(checkOverdueResponse{MarkedOverdue: count}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
