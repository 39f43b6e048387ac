package feed

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/bolsofacil/api/internal/bill"
	"github.com/bolsofacil/api/internal/period"
	"github.com/bolsofacil/api/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=source_mock.go -package=feed

// TransactionSource provides the ad-hoc transactions half of the feed.
type TransactionSource interface {
	List(ctx context.Context, ownerID uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

// BillSource provides the bill instances half of the feed.
type BillSource interface {
	InstancesForMonth(ctx context.Context, ownerID uuid.UUID, month, year int) ([]*bill.Instance, error)
	BillsByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*bill.Bill, error)
}

type Service struct {
	transactions TransactionSource
	bills        BillSource
}

func NewService(transactions TransactionSource, bills BillSource) *Service {
	return &Service{transactions: transactions, bills: bills}
}

type Query struct {
	Period period.Period
	Sort   SortKey
	Limit  int
}

// List merges the owner's transactions with their bill instances into one
// ordered feed. Bill instances join only for month periods; year, week and
// range queries return transactions alone. Instances whose parent bill is
// gone or inactive are skipped. The limit is applied after the merge so the
// newest records win regardless of which side they came from.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, q Query) ([]*UnifiedTransaction, error) {
	if err := q.Period.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuery, err)
	}

	sortKey := q.Sort
	if sortKey == "" {
		sortKey = SortRecency
	}

	if !sortKey.Valid() {
		return nil, fmt.Errorf("%w: unknown sort %q", ErrInvalidQuery, q.Sort)
	}

	txs, err := s.transactions.List(ctx, ownerID, transaction.ListFilter{Period: &q.Period})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	var records []*UnifiedTransaction

	for _, tx := range txs {
		// Week periods fetch the whole month bucket; narrow to the
		// window here.
		if q.Period.Kind == period.KindWeek && !q.Period.Contains(tx.Date) {
			continue
		}

		records = append(records, fromTransaction(tx))
	}

	if q.Period.Kind == period.KindMonth {
		billRecords, err := s.billRecords(ctx, ownerID, q.Period.Month, q.Period.Year)
		if err != nil {
			return nil, err
		}

		records = append(records, billRecords...)
	}

	sortRecords(records, sortKey)

	if q.Limit > 0 && len(records) > q.Limit {
		records = records[:q.Limit]
	}

	return records, nil
}

func (s *Service) billRecords(ctx context.Context, ownerID uuid.UUID, month, year int) ([]*UnifiedTransaction, error) {
	instances, err := s.bills.InstancesForMonth(ctx, ownerID, month, year)
	if err != nil {
		return nil, fmt.Errorf("listing bill instances: %w", err)
	}

	if len(instances) == 0 {
		return nil, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(instances))

	var ids []uuid.UUID

	for _, inst := range instances {
		if _, ok := seen[inst.BillID]; ok {
			continue
		}

		seen[inst.BillID] = struct{}{}

		ids = append(ids, inst.BillID)
	}

	bills, err := s.bills.BillsByIDs(ctx, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}

	byID := make(map[uuid.UUID]*bill.Bill, len(bills))
	for _, b := range bills {
		byID[b.ID] = b
	}

	var records []*UnifiedTransaction

	for _, inst := range instances {
		parent, ok := byID[inst.BillID]
		if !ok {
			continue
		}

		records = append(records, fromInstance(inst, parent))
	}

	return records, nil
}

func fromTransaction(tx *transaction.Transaction) *UnifiedTransaction {
	date := tx.Date

	return &UnifiedTransaction{
		ID:          tx.ID,
		OwnerID:     tx.OwnerID,
		Title:       tx.Title,
		Amount:      tx.Amount,
		Type:        tx.Type,
		Category:    tx.Category,
		Description: tx.Description,
		Date:        &date,
		Month:       tx.Month,
		Year:        tx.Year,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
		sortDate:    tx.Date,
	}
}

func fromInstance(inst *bill.Instance, parent *bill.Bill) *UnifiedTransaction {
	billID := inst.BillID

	return &UnifiedTransaction{
		ID:          inst.ID,
		OwnerID:     inst.OwnerID,
		Title:       parent.Name,
		Amount:      inst.EffectiveAmount(parent.Amount),
		Type:        transaction.TypeExpense,
		Category:    string(parent.Category),
		Description: parent.Description,
		Status:      string(inst.Status),
		Day:         inst.DueDate.Day(),
		Month:       inst.Month,
		Year:        inst.Year,
		IsBill:      true,
		BillID:      &billID,
		CreatedAt:   inst.CreatedAt,
		UpdatedAt:   inst.UpdatedAt,
		sortDate:    inst.DueDate,
	}
}

func sortRecords(records []*UnifiedTransaction, key SortKey) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]

		if key == SortDate {
			if !a.sortDate.Equal(b.sortDate) {
				return a.sortDate.After(b.sortDate)
			}
		}

		return a.CreatedAt.After(b.CreatedAt)
	})
}
