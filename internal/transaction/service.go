package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bolsofacil/api/internal/money"
	"github.com/bolsofacil/api/internal/period"
	"github.com/bolsofacil/api/internal/summary"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*Transaction, error)
	ListTransactionsByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error
	DeleteTransactions(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) error

	BeginImport(ctx context.Context, ownerID uuid.UUID, minDate, maxDate time.Time) (ImportTx, error)
}

// ImportTx batches an import inside one database transaction so a failed
// file leaves nothing behind.
type ImportTx interface {
	FindDuplicates(ctx context.Context, params []CreateParams) ([]*Transaction, error)
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	Commit() error
	Rollback() error
}

// Ledger keeps the monthly summaries in step with transaction mutations.
type Ledger interface {
	ApplyDelta(ctx context.Context, ownerID uuid.UUID, month, year int, d summary.Delta) (*summary.Summary, error)
}

type Service struct {
	repo   Repository
	ledger Ledger
	clock  func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source, used by tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

func NewService(repo Repository, ledger Ledger, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		ledger: ledger,
		clock:  time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type CreateParams struct {
	Title       string
	Amount      money.Cents
	Type        Type
	Category    string
	Description string
	Date        time.Time

	// Month and Year override the period the amount is bucketed into.
	// When zero they are derived from Date.
	Month int
	Year  int
}

func (p CreateParams) validate() error {
	if p.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}

	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}

	if !p.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalid, p.Type)
	}

	return nil
}

type ListFilter struct {
	Period *period.Period
	Limit  int
}

// Create persists the transaction and moves its amount into the owner's
// summary for the bucketed period.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Transaction, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	tx := s.build(ownerID, params)

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("creating transaction: %w", err)
	}

	if _, err := s.ledger.ApplyDelta(ctx, ownerID, tx.Month, tx.Year, deltaFor(tx.Type, tx.Amount)); err != nil {
		return nil, fmt.Errorf("updating summary for %d/%d: %w", tx.Month, tx.Year, err)
	}

	return tx, nil
}

func (s *Service) build(ownerID uuid.UUID, params CreateParams) *Transaction {
	date := params.Date
	if date.IsZero() {
		date = s.clock()
	}

	month, year := params.Month, params.Year
	if month == 0 || year == 0 {
		month = int(date.Month())
		year = date.Year()
	}

	return &Transaction{
		OwnerID:     ownerID,
		Title:       params.Title,
		Amount:      params.Amount,
		Type:        params.Type,
		Category:    params.Category,
		Description: params.Description,
		Date:        date,
		Month:       month,
		Year:        year,
	}
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, ownerID, id)
}

// List returns the owner's transactions for the period, most recently
// created first.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*Transaction, error) {
	if filter.Period != nil {
		if err := filter.Period.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalid, err)
		}
	}

	return s.repo.ListTransactions(ctx, ownerID, filter)
}

type UpdateParams struct {
	ID          uuid.UUID
	Title       *string
	Amount      *money.Cents
	Type        *Type
	Category    *string
	Description *string
	Date        *time.Time
}

// Update persists field changes. The old amount is backed out of the old
// period and the new amount applied to the new one; when nothing that feeds
// the summary changed, no delta is issued.
func (s *Service) Update(ctx context.Context, ownerID uuid.UUID, params UpdateParams) (*Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, ownerID, params.ID)
	if err != nil {
		return nil, err
	}

	if params.Amount != nil && *params.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}

	if params.Type != nil && !params.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalid, *params.Type)
	}

	oldDelta := deltaFor(tx.Type, tx.Amount)
	oldMonth, oldYear := tx.Month, tx.Year

	if params.Title != nil {
		tx.Title = *params.Title
	}

	if params.Amount != nil {
		tx.Amount = *params.Amount
	}

	if params.Type != nil {
		tx.Type = *params.Type
	}

	if params.Category != nil {
		tx.Category = *params.Category
	}

	if params.Description != nil {
		tx.Description = *params.Description
	}

	if params.Date != nil {
		tx.Date = *params.Date
		tx.Month = int(params.Date.Month())
		tx.Year = params.Date.Year()
	}

	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("updating transaction: %w", err)
	}

	newDelta := deltaFor(tx.Type, tx.Amount)

	samePeriod := tx.Month == oldMonth && tx.Year == oldYear
	if samePeriod && newDelta == oldDelta {
		return tx, nil
	}

	if samePeriod {
		diff := newDelta.Add(oldDelta.Negate())
		if _, err := s.ledger.ApplyDelta(ctx, ownerID, tx.Month, tx.Year, diff); err != nil {
			return nil, fmt.Errorf("updating summary for %d/%d: %w", tx.Month, tx.Year, err)
		}

		return tx, nil
	}

	if _, err := s.ledger.ApplyDelta(ctx, ownerID, oldMonth, oldYear, oldDelta.Negate()); err != nil {
		return nil, fmt.Errorf("reverting summary for %d/%d: %w", oldMonth, oldYear, err)
	}

	if _, err := s.ledger.ApplyDelta(ctx, ownerID, tx.Month, tx.Year, newDelta); err != nil {
		return nil, fmt.Errorf("updating summary for %d/%d: %w", tx.Month, tx.Year, err)
	}

	return tx, nil
}

// Delete removes the transaction and backs its amount out of the period
// summary.
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tx, err := s.repo.GetTransaction(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteTransaction(ctx, ownerID, id); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if _, err := s.ledger.ApplyDelta(ctx, ownerID, tx.Month, tx.Year, deltaFor(tx.Type, tx.Amount).Negate()); err != nil {
		return fmt.Errorf("reverting summary for %d/%d: %w", tx.Month, tx.Year, err)
	}

	return nil
}

// DeleteBatch removes the owner's transactions among ids and issues one
// compensating delta per touched period. IDs that do not belong to the
// owner are skipped. Returns how many were deleted.
func (s *Service) DeleteBatch(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	txs, err := s.repo.ListTransactionsByIDs(ctx, ownerID, ids)
	if err != nil {
		return 0, fmt.Errorf("listing transactions: %w", err)
	}

	if len(txs) == 0 {
		return 0, nil
	}

	found := make([]uuid.UUID, len(txs))
	for i, tx := range txs {
		found[i] = tx.ID
	}

	if err := s.repo.DeleteTransactions(ctx, ownerID, found); err != nil {
		return 0, fmt.Errorf("deleting transactions: %w", err)
	}

	if err := s.applyCompensatingDeltas(ctx, ownerID, txs); err != nil {
		return 0, err
	}

	return len(txs), nil
}

type periodKey struct {
	Month int
	Year  int
}

func (s *Service) applyCompensatingDeltas(ctx context.Context, ownerID uuid.UUID, txs []*Transaction) error {
	deltas := make(map[periodKey]summary.Delta, len(txs))

	for _, tx := range txs {
		key := periodKey{Month: tx.Month, Year: tx.Year}
		deltas[key] = deltas[key].Add(deltaFor(tx.Type, tx.Amount).Negate())
	}

	for key, delta := range deltas {
		if delta.IsZero() {
			continue
		}

		if _, err := s.ledger.ApplyDelta(ctx, ownerID, key.Month, key.Year, delta); err != nil {
			return fmt.Errorf("reverting summary for %d/%d: %w", key.Month, key.Year, err)
		}
	}

	return nil
}

// ImportResult reports how an import batch went.
type ImportResult struct {
	Created    int
	Duplicates int
}

// Import persists a parsed statement in one database transaction, skipping
// rows that duplicate an existing transaction on date, amount and title.
// Summary deltas for the created rows are applied per period after commit.
func (s *Service) Import(ctx context.Context, ownerID uuid.UUID, params []CreateParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	for _, p := range params {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}

	minDate, maxDate := params[0].Date, params[0].Date
	for _, p := range params[1:] {
		if p.Date.Before(minDate) {
			minDate = p.Date
		}

		if p.Date.After(maxDate) {
			maxDate = p.Date
		}
	}

	importTx, err := s.repo.BeginImport(ctx, ownerID, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("beginning import: %w", err)
	}
	defer importTx.Rollback()

	existing, err := importTx.FindDuplicates(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("finding duplicates: %w", err)
	}

	seen := make(map[dupKey]struct{}, len(existing))
	for _, tx := range existing {
		seen[dupKeyFor(tx.Date, tx.Amount, tx.Title)] = struct{}{}
	}

	var txs []*Transaction

	duplicates := 0

	for _, p := range params {
		key := dupKeyFor(p.Date, p.Amount, p.Title)
		if _, ok := seen[key]; ok {
			duplicates++
			continue
		}

		seen[key] = struct{}{}

		txs = append(txs, s.build(ownerID, p))
	}

	if len(txs) > 0 {
		if err := importTx.CreateTransactions(ctx, txs); err != nil {
			return nil, fmt.Errorf("creating transactions: %w", err)
		}
	}

	if err := importTx.Commit(); err != nil {
		return nil, fmt.Errorf("committing import: %w", err)
	}

	deltas := make(map[periodKey]summary.Delta)

	for _, tx := range txs {
		key := periodKey{Month: tx.Month, Year: tx.Year}
		deltas[key] = deltas[key].Add(deltaFor(tx.Type, tx.Amount))
	}

	for key, delta := range deltas {
		if delta.IsZero() {
			continue
		}

		if _, err := s.ledger.ApplyDelta(ctx, ownerID, key.Month, key.Year, delta); err != nil {
			return nil, fmt.Errorf("updating summary for %d/%d: %w", key.Month, key.Year, err)
		}
	}

	return &ImportResult{Created: len(txs), Duplicates: duplicates}, nil
}

type dupKey struct {
	Date   string
	Amount money.Cents
	Title  string
}

func dupKeyFor(date time.Time, amount money.Cents, title string) dupKey {
	return dupKey{Date: date.Format("2006-01-02"), Amount: amount, Title: title}
}

func deltaFor(t Type, amount money.Cents) summary.Delta {
	if t == TypeIncome {
		return summary.IncomeDelta(amount)
	}

	return summary.ExpenseDelta(amount)
}
