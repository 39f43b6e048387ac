package transaction_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bolsofacil/api/internal/money"
	"github.com/bolsofacil/api/internal/period"
	"github.com/bolsofacil/api/internal/summary"
	"github.com/bolsofacil/api/internal/transaction"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

type serviceMocks struct {
	repo   *transaction.MockRepository
	ledger *transaction.MockLedger
}

func newService(t *testing.T, opts ...transaction.Option) (*transaction.Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:   transaction.NewMockRepository(ctrl),
		ledger: transaction.NewMockLedger(ctrl),
	}

	return transaction.NewService(m.repo, m.ledger, opts...), m
}

func TestService_Create(t *testing.T) {
	ownerID := uuid.New()
	svc, m := newService(t)

	m.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			assert.Equal(t, ownerID, tx.OwnerID)
			assert.Equal(t, 7, tx.Month)
			assert.Equal(t, 2024, tx.Year)

			tx.ID = uuid.New()

			return nil
		})

	m.ledger.EXPECT().
		ApplyDelta(gomock.Any(), ownerID, 7, 2024, summary.IncomeDelta(350000)).
		Return(&summary.Summary{}, nil)

	tx, err := svc.Create(context.Background(), ownerID, transaction.CreateParams{
		Title:  "Salário",
		Amount: 350000,
		Type:   transaction.TypeIncome,
		Date:   date(2024, 7, 5),
	})

	require.NoError(t, err)
	assert.Equal(t, date(2024, 7, 5), tx.Date)
}

func TestService_Create_PeriodOverride(t *testing.T) {
	ownerID := uuid.New()
	svc, m := newService(t)

	m.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			// Paid in August, bucketed to the instance's July.
			assert.Equal(t, 7, tx.Month)
			assert.Equal(t, 2024, tx.Year)

			return nil
		})

	m.ledger.EXPECT().
		ApplyDelta(gomock.Any(), ownerID, 7, 2024, summary.ExpenseDelta(9000)).
		Return(&summary.Summary{}, nil)

	_, err := svc.Create(context.Background(), ownerID, transaction.CreateParams{
		Title:  "Internet",
		Amount: 9000,
		Type:   transaction.TypeExpense,
		Date:   date(2024, 8, 2),
		Month:  7,
		Year:   2024,
	})

	require.NoError(t, err)
}

func TestService_Create_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params transaction.CreateParams
	}{
		{name: "empty title", params: transaction.CreateParams{Amount: 100, Type: transaction.TypeIncome}},
		{name: "zero amount", params: transaction.CreateParams{Title: "Pix", Type: transaction.TypeIncome}},
		{name: "negative amount", params: transaction.CreateParams{Title: "Pix", Amount: -1, Type: transaction.TypeExpense}},
		{name: "unknown type", params: transaction.CreateParams{Title: "Pix", Amount: 100, Type: "transfer"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newService(t)

			_, err := svc.Create(context.Background(), uuid.New(), tc.params)
			assert.ErrorIs(t, err, transaction.ErrInvalid)
		})
	}
}

func TestService_List_InvalidPeriod(t *testing.T) {
	svc, _ := newService(t)

	p := period.Month(13, 2024)

	_, err := svc.List(context.Background(), uuid.New(), transaction.ListFilter{Period: &p})
	assert.ErrorIs(t, err, transaction.ErrInvalid)
}

func TestService_Update_AmountWithinPeriod(t *testing.T) {
	ownerID := uuid.New()
	svc, m := newService(t)

	existing := &transaction.Transaction{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Title:   "Mercado",
		Amount:  20000,
		Type:    transaction.TypeExpense,
		Date:    date(2024, 5, 12),
		Month:   5,
		Year:    2024,
	}

	m.repo.EXPECT().GetTransaction(gomock.Any(), ownerID, existing.ID).Return(existing, nil)
	m.repo.EXPECT().UpdateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	// Only the 5000 difference hits the summary.
	m.ledger.EXPECT().
		ApplyDelta(gomock.Any(), ownerID, 5, 2024, summary.ExpenseDelta(5000)).
		Return(&summary.Summary{}, nil)

	newAmount := money.Cents(25000)
	tx, err := svc.Update(context.Background(), ownerID, transaction.UpdateParams{
		ID:     existing.ID,
		Amount: &newAmount,
	})

	require.NoError(t, err)
	assert.Equal(t, money.Cents(25000), tx.Amount)
}

func TestService_Update_MovesPeriod(t *testing.T) {
	ownerID := uuid.New()
	svc, m := newService(t)

	existing := &transaction.Transaction{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Title:   "Freela",
		Amount:  100000,
		Type:    transaction.TypeIncome,
		Date:    date(2024, 5, 30),
		Month:   5,
		Year:    2024,
	}

	m.repo.EXPECT().GetTransaction(gomock.Any(), ownerID, existing.ID).Return(existing, nil)
	m.repo.EXPECT().UpdateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	gomock.InOrder(
		m.ledger.EXPECT().
			ApplyDelta(gomock.Any(), ownerID, 5, 2024, summary.IncomeDelta(-100000)).
			Return(&summary.Summary{}, nil),
		m.ledger.EXPECT().
			ApplyDelta(gomock.Any(), ownerID, 6, 2024, summary.IncomeDelta(100000)).
			Return(&summary.Summary{}, nil),
	)

	newDate := date(2024, 6, 2)
	tx, err := svc.Update(context.Background(), ownerID, transaction.UpdateParams{
		ID:   existing.ID,
		Date: &newDate,
	})

	require.NoError(t, err)
	assert.Equal(t, 6, tx.Month)
}

func TestService_Update_TitleOnlySkipsLedger(t *testing.T) {
	ownerID := uuid.New()
	svc, m := newService(t)

	existing := &transaction.Transaction{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Title:   "Uber",
		Amount:  3500,
		Type:    transaction.TypeExpense,
		Date:    date(2024, 5, 12),
		Month:   5,
		Year:    2024,
	}

	m.repo.EXPECT().GetTransaction(gomock.Any(), ownerID, existing.ID).Return(existing, nil)
	m.repo.EXPECT().UpdateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	title := "99"
	tx, err := svc.Update(context.Background(), ownerID, transaction.UpdateParams{
		ID:    existing.ID,
		Title: &title,
	})

	require.NoError(t, err)
	assert.Equal(t, "99", tx.Title)
}

func TestService_Delete(t *testing.T) {
	ownerID := uuid.New()
	svc, m := newService(t)

	existing := &transaction.Transaction{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Title:   "Cinema",
		Amount:  4500,
		Type:    transaction.TypeExpense,
		Month:   3,
		Year:    2024,
	}

	m.repo.EXPECT().GetTransaction(gomock.Any(), ownerID, existing.ID).Return(existing, nil)
	m.repo.EXPECT().DeleteTransaction(gomock.Any(), ownerID, existing.ID).Return(nil)
	m.ledger.EXPECT().
		ApplyDelta(gomock.Any(), ownerID, 3, 2024, summary.ExpenseDelta(-4500)).
		Return(&summary.Summary{}, nil)

	err := svc.Delete(context.Background(), ownerID, existing.ID)
	require.NoError(t, err)
}

func TestService_Delete_NotFound(t *testing.T) {
	ownerID := uuid.New()
	svc, m := newService(t)

	id := uuid.New()

	m.repo.EXPECT().GetTransaction(gomock.Any(), ownerID, id).Return(nil, transaction.ErrNotFound)

	err := svc.Delete(context.Background(), ownerID, id)
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestService_DeleteBatch(t *testing.T) {
	ownerID := uuid.New()
	svc, m := newService(t)

	txs := []*transaction.Transaction{
		{ID: uuid.New(), Title: "Mercado", Amount: 10000, Type: transaction.TypeExpense, Month: 4, Year: 2024},
		{ID: uuid.New(), Title: "Padaria", Amount: 2000, Type: transaction.TypeExpense, Month: 4, Year: 2024},
		{ID: uuid.New(), Title: "Pix", Amount: 5000, Type: transaction.TypeIncome, Month: 5, Year: 2024},
	}

	// A fourth id that belongs to someone else is silently dropped.
	ids := []uuid.UUID{txs[0].ID, txs[1].ID, txs[2].ID, uuid.New()}

	m.repo.EXPECT().ListTransactionsByIDs(gomock.Any(), ownerID, ids).Return(txs, nil)
	m.repo.EXPECT().
		DeleteTransactions(gomock.Any(), ownerID, []uuid.UUID{txs[0].ID, txs[1].ID, txs[2].ID}).
		Return(nil)

	m.ledger.EXPECT().
		ApplyDelta(gomock.Any(), ownerID, 4, 2024, summary.ExpenseDelta(-12000)).
		Return(&summary.Summary{}, nil)
	m.ledger.EXPECT().
		ApplyDelta(gomock.Any(), ownerID, 5, 2024, summary.IncomeDelta(-5000)).
		Return(&summary.Summary{}, nil)

	count, err := svc.DeleteBatch(context.Background(), ownerID, ids)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestService_DeleteBatch_NothingFound(t *testing.T) {
	ownerID := uuid.New()
	svc, m := newService(t)

	ids := []uuid.UUID{uuid.New()}

	m.repo.EXPECT().ListTransactionsByIDs(gomock.Any(), ownerID, ids).Return(nil, nil)

	count, err := svc.DeleteBatch(context.Background(), ownerID, ids)

	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestService_Import(t *testing.T) {
	ownerID := uuid.New()
	svc, m := newService(t)

	ctrl := gomock.NewController(t)
	importTx := transaction.NewMockImportTx(ctrl)

	params := []transaction.CreateParams{
		{Title: "Mercado", Amount: 10000, Type: transaction.TypeExpense, Date: date(2024, 4, 2)},
		{Title: "Salário", Amount: 300000, Type: transaction.TypeIncome, Date: date(2024, 4, 5)},
		{Title: "Mercado", Amount: 8000, Type: transaction.TypeExpense, Date: date(2024, 4, 9)},
	}

	m.repo.EXPECT().
		BeginImport(gomock.Any(), ownerID, date(2024, 4, 2), date(2024, 4, 9)).
		Return(importTx, nil)

	// The first row already exists in the statement window.
	importTx.EXPECT().
		FindDuplicates(gomock.Any(), params).
		Return([]*transaction.Transaction{
			{Title: "Mercado", Amount: 10000, Date: date(2024, 4, 2)},
		}, nil)

	importTx.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
			require.Len(t, txs, 2)
			assert.Equal(t, "Salário", txs[0].Title)
			assert.Equal(t, "Mercado", txs[1].Title)

			return nil
		})

	importTx.EXPECT().Commit().Return(nil)
	importTx.EXPECT().Rollback().Return(nil)

	m.ledger.EXPECT().
		ApplyDelta(gomock.Any(), ownerID, 4, 2024, summary.Delta{Income: 300000, Expense: 8000}).
		Return(&summary.Summary{}, nil)

	result, err := svc.Import(context.Background(), ownerID, params)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Duplicates)
}

func TestService_Import_Empty(t *testing.T) {
	svc, _ := newService(t)

	result, err := svc.Import(context.Background(), uuid.New(), nil)

	require.NoError(t, err)
	assert.Zero(t, result.Created)
}
