package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bolsofacil/api/internal/money"
	"github.com/bolsofacil/api/internal/summary"
	"github.com/bolsofacil/api/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bill
type Repository interface {
	CreateBill(ctx context.Context, b *Bill) error
	GetBill(ctx context.Context, ownerID, billID uuid.UUID) (*Bill, error)
	ListBills(ctx context.Context, ownerID uuid.UUID, limit int) ([]*Bill, error)
	ListBillsByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*Bill, error)
	UpdateBill(ctx context.Context, b *Bill) error
	UpdateBillStatus(ctx context.Context, billID uuid.UUID, status Status, lastPaidAt *time.Time) error
	MarkBillsOverdue(ctx context.Context, billIDs []uuid.UUID) error
	DeleteBill(ctx context.Context, ownerID, billID uuid.UUID) error

	CreateInstances(ctx context.Context, instances []*Instance) error
	GetInstance(ctx context.Context, ownerID, instanceID uuid.UUID) (*Instance, error)
	InstanceForPeriod(ctx context.Context, ownerID, billID uuid.UUID, month, year int) (*Instance, error)
	ListInstances(ctx context.Context, ownerID uuid.UUID, filter InstanceFilter) ([]*Instance, error)
	UpdateInstance(ctx context.Context, inst *Instance) error
	MarkInstancePaid(ctx context.Context, instanceID uuid.UUID, paidAt time.Time) (bool, error)
	MarkInstancesOverdue(ctx context.Context, instanceIDs []uuid.UUID) error
	CountPendingInstances(ctx context.Context, ownerID, billID uuid.UUID) (int, error)
	CountUnpaidInstances(ctx context.Context, ownerID, billID uuid.UUID) (int, error)
	DeleteInstance(ctx context.Context, instanceID uuid.UUID) error
	DeletePendingInstances(ctx context.Context, ownerID, billID uuid.UUID) ([]*Instance, error)
}

// InstanceFilter narrows ListInstances. Results are ordered by due date
// ascending.
type InstanceFilter struct {
	BillID    *uuid.UUID
	Status    *Status
	Month     *int
	Year      *int
	DueFrom   *time.Time
	DueBefore *time.Time
	Limit     int
}

// Ledger keeps the monthly summaries in step with bill mutations.
type Ledger interface {
	ApplyDelta(ctx context.Context, ownerID uuid.UUID, month, year int, d summary.Delta) (*summary.Summary, error)
}

// PaymentRecorder creates the expense transaction that records a bill
// payment; it is responsible for the payment's own summary delta.
type PaymentRecorder interface {
	Create(ctx context.Context, ownerID uuid.UUID, params transaction.CreateParams) (*transaction.Transaction, error)
}

type Service struct {
	repo     Repository
	ledger   Ledger
	payments PaymentRecorder
	clock    func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source, used by tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

func NewService(repo Repository, ledger Ledger, payments PaymentRecorder, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		ledger:   ledger,
		payments: payments,
		clock:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type CreateParams struct {
	Name         string
	Description  string
	Amount       money.Cents
	Category     Category
	Recurrence   Recurrence
	PreferredDay int
	ReminderDays int
}

func (p CreateParams) validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}

	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}

	if !p.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalid, p.Category)
	}

	if p.PreferredDay < 1 || p.PreferredDay > 31 {
		return fmt.Errorf("%w: preferred day %d out of range", ErrInvalid, p.PreferredDay)
	}

	return nil
}

// Create persists the bill, materializes its instances from today through
// the end of next calendar year, and raises each touched period's expense
// total. A summary failure after the bill is committed is surfaced but not
// rolled back; the deltas are retry-safe.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Bill, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	recurrence := params.Recurrence
	if !recurrence.Valid() {
		recurrence = RecurrenceMonthly
	}

	b := &Bill{
		OwnerID:      ownerID,
		Name:         params.Name,
		Description:  params.Description,
		Amount:       params.Amount,
		Category:     params.Category,
		Status:       StatusPending,
		Active:       true,
		Recurrence:   recurrence,
		PreferredDay: params.PreferredDay,
		ReminderDays: params.ReminderDays,
	}

	if err := s.repo.CreateBill(ctx, b); err != nil {
		return nil, fmt.Errorf("creating bill: %w", err)
	}

	today := s.clock()
	horizon := time.Date(today.Year()+1, time.December, 31, 0, 0, 0, 0, time.UTC)

	instances := Expand(b, today, horizon, today)
	if len(instances) == 0 {
		return b, nil
	}

	if err := s.repo.CreateInstances(ctx, instances); err != nil {
		return nil, fmt.Errorf("creating bill instances: %w", err)
	}

	if err := s.applyPeriodDeltas(ctx, ownerID, groupByPeriod(instances, b.Amount), false); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) Get(ctx context.Context, ownerID, billID uuid.UUID) (*Bill, error) {
	return s.repo.GetBill(ctx, ownerID, billID)
}

// List returns the owner's bills, newest first. limit <= 0 means no limit.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, limit int) ([]*Bill, error) {
	return s.repo.ListBills(ctx, ownerID, limit)
}

type UpdateParams struct {
	ID           uuid.UUID
	Name         *string
	Description  *string
	Amount       *money.Cents
	Category     *Category
	Recurrence   *Recurrence
	PreferredDay *int
	ReminderDays *int
	Active       *bool
}

// Update persists field changes. When the amount or preferred day changes,
// the new values propagate to the bill's pending future instances and each
// affected period's summary is adjusted by the difference.
func (s *Service) Update(ctx context.Context, ownerID uuid.UUID, params UpdateParams) (*Bill, error) {
	b, err := s.repo.GetBill(ctx, ownerID, params.ID)
	if err != nil {
		return nil, err
	}

	amountChanged := params.Amount != nil && *params.Amount != b.Amount
	dayChanged := params.PreferredDay != nil && *params.PreferredDay != b.PreferredDay

	if params.Amount != nil && *params.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}

	if params.Category != nil && !params.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalid, *params.Category)
	}

	if params.PreferredDay != nil && (*params.PreferredDay < 1 || *params.PreferredDay > 31) {
		return nil, fmt.Errorf("%w: preferred day %d out of range", ErrInvalid, *params.PreferredDay)
	}

	if params.Recurrence != nil && !params.Recurrence.Valid() {
		return nil, fmt.Errorf("%w: unknown recurrence %q", ErrInvalid, *params.Recurrence)
	}

	if params.Name != nil {
		b.Name = *params.Name
	}

	if params.Description != nil {
		b.Description = *params.Description
	}

	if params.Amount != nil {
		b.Amount = *params.Amount
	}

	if params.Category != nil {
		b.Category = *params.Category
	}

	if params.Recurrence != nil {
		b.Recurrence = *params.Recurrence
	}

	if params.PreferredDay != nil {
		b.PreferredDay = *params.PreferredDay
	}

	if params.ReminderDays != nil {
		b.ReminderDays = *params.ReminderDays
	}

	if params.Active != nil {
		b.Active = *params.Active
	}

	if err := s.repo.UpdateBill(ctx, b); err != nil {
		return nil, fmt.Errorf("updating bill: %w", err)
	}

	if amountChanged || dayChanged {
		if err := s.propagateToPendingInstances(ctx, b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// propagateToPendingInstances overwrites amount and due day on the bill's
// pending instances due today or later, then reconciles each touched
// period's summary with the aggregate difference.
func (s *Service) propagateToPendingInstances(ctx context.Context, b *Bill) error {
	today := s.clock()
	from := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	status := StatusPending

	pending, err := s.repo.ListInstances(ctx, b.OwnerID, InstanceFilter{
		BillID:  &b.ID,
		Status:  &status,
		DueFrom: &from,
	})
	if err != nil {
		return fmt.Errorf("listing pending instances: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	oldSums := make(map[periodKey]money.Cents, len(pending))

	for _, inst := range pending {
		oldSums[periodKey{Month: inst.Month, Year: inst.Year}] += instanceAmount(inst)

		amount := b.Amount
		inst.Amount = &amount
		inst.PreferredDay = b.PreferredDay
		inst.DueDate = DueDate(inst.Year, time.Month(inst.Month), b.PreferredDay)

		if err := s.repo.UpdateInstance(ctx, inst); err != nil {
			return fmt.Errorf("updating instance %s: %w", inst.ID, err)
		}
	}

	newSums := groupByPeriod(pending, b.Amount)

	for key, oldSum := range oldSums {
		diff := newSums[key] - oldSum
		if diff == 0 {
			continue
		}

		if _, err := s.ledger.ApplyDelta(ctx, b.OwnerID, key.Month, key.Year, summary.ExpenseDelta(diff)); err != nil {
			return fmt.Errorf("adjusting summary for %d/%d: %w", key.Month, key.Year, err)
		}
	}

	return nil
}

// DeleteInstance removes the bill's single occurrence for (month, year) and
// reverts its contribution to that period's summary. The store floors the
// expense total at zero.
func (s *Service) DeleteInstance(ctx context.Context, ownerID, billID uuid.UUID, month, year int) error {
	inst, err := s.repo.InstanceForPeriod(ctx, ownerID, billID, month, year)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteInstance(ctx, inst.ID); err != nil {
		return fmt.Errorf("deleting instance: %w", err)
	}

	amount := instanceAmount(inst)
	if _, err := s.ledger.ApplyDelta(ctx, ownerID, month, year, summary.ExpenseDelta(-amount)); err != nil {
		return fmt.Errorf("reverting summary for %d/%d: %w", month, year, err)
	}

	return nil
}

// Delete removes the bill and all of its pending instances, reverting their
// summary contributions period by period. Paid and overdue instances are
// kept as history; the feed skips them once the parent bill is gone.
func (s *Service) Delete(ctx context.Context, ownerID, billID uuid.UUID) error {
	if _, err := s.repo.GetBill(ctx, ownerID, billID); err != nil {
		return err
	}

	removed, err := s.repo.DeletePendingInstances(ctx, ownerID, billID)
	if err != nil {
		return fmt.Errorf("deleting pending instances: %w", err)
	}

	if err := s.repo.DeleteBill(ctx, ownerID, billID); err != nil {
		return fmt.Errorf("deleting bill: %w", err)
	}

	sums := make(map[periodKey]money.Cents, len(removed))
	for _, inst := range removed {
		sums[periodKey{Month: inst.Month, Year: inst.Year}] += instanceAmount(inst)
	}

	return s.applyPeriodDeltas(ctx, ownerID, sums, true)
}

// PayResult describes the outcome of paying one bill instance.
type PayResult struct {
	Bill     *Bill
	Instance *Instance
	Payment  *transaction.Transaction
	BillPaid bool
}

// Pay marks an instance paid and records the payment as an expense
// transaction bucketed to the instance's own period. Overdue instances can
// be paid like pending ones. When instanceID is nil the earliest pending
// instance is resolved. The paid flip is a conditional update, so two
// concurrent payments of the same instance cannot both succeed. Settling the
// last unpaid instance flips the bill itself to paid, clearing an overdue
// bill status along the way.
func (s *Service) Pay(ctx context.Context, ownerID, billID uuid.UUID, instanceID *uuid.UUID) (*PayResult, error) {
	b, err := s.repo.GetBill(ctx, ownerID, billID)
	if err != nil {
		return nil, err
	}

	inst, err := s.resolveInstance(ctx, ownerID, billID, instanceID)
	if err != nil {
		return nil, err
	}

	now := s.clock()

	paid, err := s.repo.MarkInstancePaid(ctx, inst.ID, now)
	if err != nil {
		return nil, fmt.Errorf("marking instance paid: %w", err)
	}

	if !paid {
		return nil, ErrAlreadyPaid
	}

	inst.Status = StatusPaid
	inst.PaidAt = &now

	amount := instanceAmount(inst)

	description := b.Description
	if description == "" {
		description = fmt.Sprintf("Pagamento de %s", b.Name)
	}

	payment, err := s.payments.Create(ctx, ownerID, transaction.CreateParams{
		Title:       b.Name,
		Amount:      amount,
		Category:    string(b.Category),
		Description: description,
		Type:        transaction.TypeExpense,
		Date:        now,
		Month:       inst.Month,
		Year:        inst.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("recording payment: %w", err)
	}

	result := &PayResult{Bill: b, Instance: inst, Payment: payment}

	remaining, err := s.repo.CountUnpaidInstances(ctx, ownerID, billID)
	if err != nil {
		return nil, fmt.Errorf("counting unpaid instances: %w", err)
	}

	if remaining == 0 {
		if err := s.repo.UpdateBillStatus(ctx, billID, StatusPaid, &now); err != nil {
			return nil, fmt.Errorf("marking bill paid: %w", err)
		}

		b.Status = StatusPaid
		b.LastPaidAt = &now
		result.BillPaid = true
	}

	return result, nil
}

func (s *Service) resolveInstance(ctx context.Context, ownerID, billID uuid.UUID, instanceID *uuid.UUID) (*Instance, error) {
	if instanceID != nil {
		inst, err := s.repo.GetInstance(ctx, ownerID, *instanceID)
		if err != nil {
			return nil, err
		}

		if inst.BillID != billID {
			return nil, ErrInstanceNotFound
		}

		return inst, nil
	}

	status := StatusPending

	pending, err := s.repo.ListInstances(ctx, ownerID, InstanceFilter{
		BillID: &billID,
		Status: &status,
		Limit:  1,
	})
	if err != nil {
		return nil, fmt.Errorf("listing pending instances: %w", err)
	}

	if len(pending) == 0 {
		return nil, ErrNoPendingInstance
	}

	return pending[0], nil
}

// CheckOverdue flips pending instances due before today to overdue, and
// their bills too when no pending instance remains. The sweep changes
// status only: instance amounts were already counted into their periods'
// summaries when the instances were created, so no financial delta is
// applied here.
func (s *Service) CheckOverdue(ctx context.Context, ownerID uuid.UUID) (int, error) {
	today := s.clock()
	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	status := StatusPending

	overdue, err := s.repo.ListInstances(ctx, ownerID, InstanceFilter{
		Status:    &status,
		DueBefore: &startOfToday,
	})
	if err != nil {
		return 0, fmt.Errorf("listing overdue instances: %w", err)
	}

	if len(overdue) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, len(overdue))
	billIDs := make(map[uuid.UUID]struct{}, len(overdue))

	for i, inst := range overdue {
		ids[i] = inst.ID
		billIDs[inst.BillID] = struct{}{}
	}

	if err := s.repo.MarkInstancesOverdue(ctx, ids); err != nil {
		return 0, fmt.Errorf("marking instances overdue: %w", err)
	}

	var overdueBills []uuid.UUID

	for billID := range billIDs {
		remaining, err := s.repo.CountPendingInstances(ctx, ownerID, billID)
		if err != nil {
			return 0, fmt.Errorf("counting pending instances: %w", err)
		}

		if remaining == 0 {
			overdueBills = append(overdueBills, billID)
		}
	}

	if len(overdueBills) > 0 {
		if err := s.repo.MarkBillsOverdue(ctx, overdueBills); err != nil {
			return 0, fmt.Errorf("marking bills overdue: %w", err)
		}
	}

	return len(overdue), nil
}

// InstancesForMonth returns the owner's bill instances for one period,
// ordered by due date.
func (s *Service) InstancesForMonth(ctx context.Context, ownerID uuid.UUID, month, year int) ([]*Instance, error) {
	return s.repo.ListInstances(ctx, ownerID, InstanceFilter{Month: &month, Year: &year})
}

// BillsByIDs returns the owner's active bills among ids.
func (s *Service) BillsByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*Bill, error) {
	return s.repo.ListBillsByIDs(ctx, ownerID, ids)
}

func (s *Service) applyPeriodDeltas(ctx context.Context, ownerID uuid.UUID, sums map[periodKey]money.Cents, revert bool) error {
	for key, sum := range sums {
		if sum == 0 {
			continue
		}

		delta := summary.ExpenseDelta(sum)
		if revert {
			delta = delta.Negate()
		}

		if _, err := s.ledger.ApplyDelta(ctx, ownerID, key.Month, key.Year, delta); err != nil {
			return fmt.Errorf("updating summary for %d/%d: %w", key.Month, key.Year, err)
		}
	}

	return nil
}

// instanceAmount resolves an instance's amount without its parent bill at
// hand: instances always carry the bill amount at creation, so the override
// is authoritative when present.
func instanceAmount(inst *Instance) money.Cents {
	if inst.Amount != nil {
		return *inst.Amount
	}

	return 0
}
