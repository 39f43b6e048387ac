package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bolsofacil/api/internal/money"
)

// Recurrence cadences recognised by the seeding rule. The values mirror the
// bills table's recurrence_type column.
const (
	recurrenceMonthly      = "monthly"
	recurrenceQuarterly    = "quarterly"
	recurrenceSemiannually = "semiannually"
	recurrenceAnnually     = "annually"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=summary
type Repository interface {
	GetSummary(ctx context.Context, ownerID uuid.UUID, month, year int) (*Summary, error)
	CreateSummary(ctx context.Context, s *Summary) error
	ApplyDelta(ctx context.Context, ownerID uuid.UUID, month, year int, income, expense money.Cents) (*Summary, error)
}

// SeedBill is the slice of a bill the seeding rule needs.
type SeedBill struct {
	Amount     money.Cents
	Recurrence string
	CreatedAt  time.Time
}

// BillSource provides the active bills used to seed a freshly created
// summary period.
type BillSource interface {
	ActiveBills(ctx context.Context, ownerID uuid.UUID) ([]SeedBill, error)
}

type Service struct {
	repo  Repository
	bills BillSource
}

func NewService(repo Repository, bills BillSource) *Service {
	return &Service{repo: repo, bills: bills}
}

// GetOrCreate returns the summary for (owner, month, year). When no row
// exists yet, the expense total is seeded from the active bills whose
// recurrence schedule includes the period. An all-zero seed persists nothing
// and an ephemeral zero summary is returned instead.
func (s *Service) GetOrCreate(ctx context.Context, ownerID uuid.UUID, month, year int) (*Summary, error) {
	if month < 1 || month > 12 || year <= 0 {
		return nil, fmt.Errorf("%w: month=%d year=%d", ErrInvalidPeriod, month, year)
	}

	existing, err := s.repo.GetSummary(ctx, ownerID, month, year)
	if err == nil {
		return existing, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("getting summary: %w", err)
	}

	seed, err := s.seedExpense(ctx, ownerID, month, year)
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		return &Summary{OwnerID: ownerID, Month: month, Year: year}, nil
	}

	created := &Summary{
		OwnerID:      ownerID,
		Month:        month,
		Year:         year,
		TotalExpense: seed,
		TotalBalance: -seed,
	}
	if err := s.repo.CreateSummary(ctx, created); err != nil {
		return nil, fmt.Errorf("creating summary: %w", err)
	}

	return created, nil
}

// ApplyDelta adds a signed delta to the period's totals. The row is created
// (and seeded) first if it does not exist; the increment itself is a single
// atomic statement in the store, so concurrent deltas to the same period
// cannot race.
func (s *Service) ApplyDelta(ctx context.Context, ownerID uuid.UUID, month, year int, d Delta) (*Summary, error) {
	if d.IsZero() {
		return s.GetOrCreate(ctx, ownerID, month, year)
	}

	if _, err := s.GetOrCreate(ctx, ownerID, month, year); err != nil {
		return nil, err
	}

	updated, err := s.repo.ApplyDelta(ctx, ownerID, month, year, d.Income, d.Expense)
	if err != nil {
		return nil, fmt.Errorf("applying summary delta: %w", err)
	}

	return updated, nil
}

func (s *Service) seedExpense(ctx context.Context, ownerID uuid.UUID, month, year int) (money.Cents, error) {
	bills, err := s.bills.ActiveBills(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("listing bills for seed: %w", err)
	}

	var total money.Cents

	for _, b := range bills {
		if b.Amount <= 0 {
			continue
		}

		if includesMonth(b, month, year) {
			total += b.Amount
		}
	}

	return total, nil
}

// includesMonth reports whether a bill's recurrence schedule has an
// occurrence in the target period, counting forward from the bill's creation
// month.
func includesMonth(b SeedBill, month, year int) bool {
	createdMonth := int(b.CreatedAt.Month())
	createdYear := b.CreatedAt.Year()

	monthsDiff := (year-createdYear)*12 + (month - createdMonth)
	if monthsDiff < 0 {
		return false
	}

	switch b.Recurrence {
	case recurrenceMonthly:
		return true
	case recurrenceQuarterly:
		return monthsDiff%3 == 0
	case recurrenceSemiannually:
		return monthsDiff%6 == 0
	case recurrenceAnnually:
		return month == createdMonth && year >= createdYear
	default:
		return false
	}
}
