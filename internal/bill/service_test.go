package bill_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bolsofacil/api/internal/bill"
	"github.com/bolsofacil/api/internal/money"
	"github.com/bolsofacil/api/internal/summary"
	"github.com/bolsofacil/api/internal/transaction"
)

func moneyCents(v int64) money.Cents {
	return money.Cents(v)
}

func fixedClock(t time.Time) bill.Option {
	return bill.WithClock(func() time.Time { return t })
}

type serviceMocks struct {
	repo     *bill.MockRepository
	ledger   *bill.MockLedger
	payments *bill.MockPaymentRecorder
}

func newServiceMocks(t *testing.T) serviceMocks {
	ctrl := gomock.NewController(t)

	return serviceMocks{
		repo:     bill.NewMockRepository(ctrl),
		ledger:   bill.NewMockLedger(ctrl),
		payments: bill.NewMockPaymentRecorder(ctrl),
	}
}

func TestService_Create(t *testing.T) {
	ownerID := uuid.New()
	today := date(2024, 1, 10)
	m := newServiceMocks(t)

	m.repo.EXPECT().
		CreateBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *bill.Bill) error {
			assert.Equal(t, ownerID, b.OwnerID)
			assert.Equal(t, "Seguro do carro", b.Name)
			assert.Equal(t, bill.StatusPending, b.Status)
			assert.True(t, b.Active)

			b.ID = uuid.New()
			b.CreatedAt = today

			return nil
		})

	// Annual on day 15: one instance in January 2024 and one in January
	// 2025 inside the end-of-next-year horizon.
	m.repo.EXPECT().
		CreateInstances(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, instances []*bill.Instance) error {
			require.Len(t, instances, 2)
			assert.Equal(t, date(2024, 1, 15), instances[0].DueDate)
			assert.Equal(t, date(2025, 1, 15), instances[1].DueDate)

			return nil
		})

	m.ledger.EXPECT().
		ApplyDelta(gomock.Any(), ownerID, 1, 2024, summary.ExpenseDelta(120000)).
		Return(&summary.Summary{}, nil)
	m.ledger.EXPECT().
		ApplyDelta(gomock.Any(), ownerID, 1, 2025, summary.ExpenseDelta(120000)).
		Return(&summary.Summary{}, nil)

	svc := bill.NewService(m.repo, m.ledger, m.payments, fixedClock(today))

	b, err := svc.Create(context.Background(), ownerID, bill.CreateParams{
		Name:         "Seguro do carro",
		Amount:       120000,
		Category:     bill.CategoryInsurance,
		Recurrence:   bill.RecurrenceAnnually,
		PreferredDay: 15,
	})

	require.NoError(t, err)
	assert.Equal(t, bill.RecurrenceAnnually, b.Recurrence)
}

func TestService_Create_InvalidParams(t *testing.T) {
	valid := bill.CreateParams{
		Name:         "Aluguel",
		Amount:       150000,
		Category:     bill.CategoryHousing,
		Recurrence:   bill.RecurrenceMonthly,
		PreferredDay: 5,
	}

	tests := []struct {
		name   string
		mutate func(*bill.CreateParams)
	}{
		{name: "empty name", mutate: func(p *bill.CreateParams) { p.Name = "" }},
		{name: "zero amount", mutate: func(p *bill.CreateParams) { p.Amount = 0 }},
		{name: "negative amount", mutate: func(p *bill.CreateParams) { p.Amount = -100 }},
		{name: "unknown category", mutate: func(p *bill.CreateParams) { p.Category = "games" }},
		{name: "day too low", mutate: func(p *bill.CreateParams) { p.PreferredDay = 0 }},
		{name: "day too high", mutate: func(p *bill.CreateParams) { p.PreferredDay = 32 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks(t)
			svc := bill.NewService(m.repo, m.ledger, m.payments)

			params := valid
			tc.mutate(&params)

			_, err := svc.Create(context.Background(), uuid.New(), params)
			assert.ErrorIs(t, err, bill.ErrInvalid)
		})
	}
}

func TestService_Update_PropagatesAmountToPendingInstances(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()
	today := date(2024, 2, 1)
	m := newServiceMocks(t)

	existing := &bill.Bill{
		ID:           billID,
		OwnerID:      ownerID,
		Name:         "Academia",
		Amount:       20000,
		Category:     bill.CategorySubscriptions,
		Recurrence:   bill.RecurrenceMonthly,
		PreferredDay: 10,
		Active:       true,
	}

	m.repo.EXPECT().GetBill(gomock.Any(), ownerID, billID).Return(existing, nil)
	m.repo.EXPECT().
		UpdateBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *bill.Bill) error {
			assert.Equal(t, moneyCents(15000), b.Amount)

			return nil
		})

	oldAmount := moneyCents(20000)
	pending := []*bill.Instance{
		{ID: uuid.New(), BillID: billID, OwnerID: ownerID, Amount: &oldAmount, Month: 2, Year: 2024, PreferredDay: 10, DueDate: date(2024, 2, 10), Status: bill.StatusPending},
		{ID: uuid.New(), BillID: billID, OwnerID: ownerID, Amount: &oldAmount, Month: 3, Year: 2024, PreferredDay: 10, DueDate: date(2024, 3, 10), Status: bill.StatusPending},
	}

	m.repo.EXPECT().
		ListInstances(gomock.Any(), ownerID, gomock.Any()).
		Return(pending, nil)

	m.repo.EXPECT().
		UpdateInstance(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, inst *bill.Instance) error {
			require.NotNil(t, inst.Amount)
			assert.Equal(t, moneyCents(15000), *inst.Amount)

			return nil
		})

	// Each touched period is adjusted by the difference only.
	m.ledger.EXPECT().
		ApplyDelta(gomock.Any(), ownerID, 2, 2024, summary.ExpenseDelta(-5000)).
		Return(&summary.Summary{}, nil)
	m.ledger.EXPECT().
		ApplyDelta(gomock.Any(), ownerID, 3, 2024, summary.ExpenseDelta(-5000)).
		Return(&summary.Summary{}, nil)

	svc := bill.NewService(m.repo, m.ledger, m.payments, fixedClock(today))

	newAmount := moneyCents(15000)
	updated, err := svc.Update(context.Background(), ownerID, bill.UpdateParams{
		ID:     billID,
		Amount: &newAmount,
	})

	require.NoError(t, err)
	assert.Equal(t, moneyCents(15000), updated.Amount)
}

func TestService_Update_NameOnlySkipsPropagation(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()
	m := newServiceMocks(t)

	existing := &bill.Bill{
		ID:           billID,
		OwnerID:      ownerID,
		Name:         "Luz",
		Amount:       9000,
		Category:     bill.CategoryUtilities,
		Recurrence:   bill.RecurrenceMonthly,
		PreferredDay: 20,
	}

	m.repo.EXPECT().GetBill(gomock.Any(), ownerID, billID).Return(existing, nil)
	m.repo.EXPECT().UpdateBill(gomock.Any(), gomock.Any()).Return(nil)

	svc := bill.NewService(m.repo, m.ledger, m.payments)

	name := "Energia"
	updated, err := svc.Update(context.Background(), ownerID, bill.UpdateParams{
		ID:   billID,
		Name: &name,
	})

	require.NoError(t, err)
	assert.Equal(t, "Energia", updated.Name)
}

func TestService_Update_InvalidRecurrence(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()
	m := newServiceMocks(t)

	existing := &bill.Bill{
		ID:           billID,
		OwnerID:      ownerID,
		Name:         "Luz",
		Amount:       9000,
		Category:     bill.CategoryUtilities,
		Recurrence:   bill.RecurrenceMonthly,
		PreferredDay: 20,
	}

	m.repo.EXPECT().GetBill(gomock.Any(), ownerID, billID).Return(existing, nil)

	svc := bill.NewService(m.repo, m.ledger, m.payments)

	recurrence := bill.Recurrence("weekly")
	_, err := svc.Update(context.Background(), ownerID, bill.UpdateParams{
		ID:         billID,
		Recurrence: &recurrence,
	})

	assert.ErrorIs(t, err, bill.ErrInvalid)
}

func TestService_DeleteInstance(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()
	m := newServiceMocks(t)

	amount := moneyCents(15000)
	inst := &bill.Instance{
		ID:     uuid.New(),
		BillID: billID,
		Amount: &amount,
		Month:  5,
		Year:   2024,
		Status: bill.StatusPending,
	}

	m.repo.EXPECT().InstanceForPeriod(gomock.Any(), ownerID, billID, 5, 2024).Return(inst, nil)
	m.repo.EXPECT().DeleteInstance(gomock.Any(), inst.ID).Return(nil)
	m.ledger.EXPECT().
		ApplyDelta(gomock.Any(), ownerID, 5, 2024, summary.ExpenseDelta(-15000)).
		Return(&summary.Summary{}, nil)

	svc := bill.NewService(m.repo, m.ledger, m.payments)

	err := svc.DeleteInstance(context.Background(), ownerID, billID, 5, 2024)
	require.NoError(t, err)
}

func TestService_DeleteInstance_NotFound(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()
	m := newServiceMocks(t)

	m.repo.EXPECT().
		InstanceForPeriod(gomock.Any(), ownerID, billID, 5, 2024).
		Return(nil, bill.ErrInstanceNotFound)

	svc := bill.NewService(m.repo, m.ledger, m.payments)

	err := svc.DeleteInstance(context.Background(), ownerID, billID, 5, 2024)
	assert.ErrorIs(t, err, bill.ErrInstanceNotFound)
}

func TestService_Delete_RevertsPendingInstances(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()
	m := newServiceMocks(t)

	amount := moneyCents(10000)
	removed := []*bill.Instance{
		{ID: uuid.New(), BillID: billID, Amount: &amount, Month: 6, Year: 2024},
		{ID: uuid.New(), BillID: billID, Amount: &amount, Month: 7, Year: 2024},
	}

	m.repo.EXPECT().GetBill(gomock.Any(), ownerID, billID).Return(&bill.Bill{ID: billID}, nil)
	m.repo.EXPECT().DeletePendingInstances(gomock.Any(), ownerID, billID).Return(removed, nil)
	m.repo.EXPECT().DeleteBill(gomock.Any(), ownerID, billID).Return(nil)

	m.ledger.EXPECT().
		ApplyDelta(gomock.Any(), ownerID, 6, 2024, summary.ExpenseDelta(-10000)).
		Return(&summary.Summary{}, nil)
	m.ledger.EXPECT().
		ApplyDelta(gomock.Any(), ownerID, 7, 2024, summary.ExpenseDelta(-10000)).
		Return(&summary.Summary{}, nil)

	svc := bill.NewService(m.repo, m.ledger, m.payments)

	err := svc.Delete(context.Background(), ownerID, billID)
	require.NoError(t, err)
}

func TestService_Pay_ExplicitInstance(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()
	now := date(2024, 3, 12)
	m := newServiceMocks(t)

	b := &bill.Bill{
		ID:       billID,
		OwnerID:  ownerID,
		Name:     "Internet",
		Amount:   8000,
		Category: bill.CategoryUtilities,
		Status:   bill.StatusPending,
	}

	amount := moneyCents(8000)
	inst := &bill.Instance{
		ID:     uuid.New(),
		BillID: billID,
		Amount: &amount,
		Month:  3,
		Year:   2024,
		Status: bill.StatusPending,
	}

	m.repo.EXPECT().GetBill(gomock.Any(), ownerID, billID).Return(b, nil)
	m.repo.EXPECT().GetInstance(gomock.Any(), ownerID, inst.ID).Return(inst, nil)
	m.repo.EXPECT().MarkInstancePaid(gomock.Any(), inst.ID, now).Return(true, nil)

	m.payments.EXPECT().
		Create(gomock.Any(), ownerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, params transaction.CreateParams) (*transaction.Transaction, error) {
			assert.Equal(t, "Internet", params.Title)
			assert.Equal(t, moneyCents(8000), params.Amount)
			assert.Equal(t, transaction.TypeExpense, params.Type)
			assert.Equal(t, "Pagamento de Internet", params.Description)
			assert.Equal(t, 3, params.Month)
			assert.Equal(t, 2024, params.Year)

			return &transaction.Transaction{ID: uuid.New(), Amount: params.Amount}, nil
		})

	m.repo.EXPECT().CountUnpaidInstances(gomock.Any(), ownerID, billID).Return(3, nil)

	svc := bill.NewService(m.repo, m.ledger, m.payments, fixedClock(now))

	result, err := svc.Pay(context.Background(), ownerID, billID, &inst.ID)

	require.NoError(t, err)
	assert.False(t, result.BillPaid)
	assert.Equal(t, bill.StatusPaid, result.Instance.Status)
	require.NotNil(t, result.Instance.PaidAt)
	assert.Equal(t, now, *result.Instance.PaidAt)
	require.NotNil(t, result.Payment)
}

func TestService_Pay_LastInstanceMarksBillPaid(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()
	now := date(2024, 12, 5)
	m := newServiceMocks(t)

	b := &bill.Bill{ID: billID, OwnerID: ownerID, Name: "IPVA", Amount: 60000, Category: bill.CategoryTransport}

	amount := moneyCents(60000)
	inst := &bill.Instance{ID: uuid.New(), BillID: billID, Amount: &amount, Month: 12, Year: 2024, Status: bill.StatusPending}

	m.repo.EXPECT().GetBill(gomock.Any(), ownerID, billID).Return(b, nil)
	m.repo.EXPECT().
		ListInstances(gomock.Any(), ownerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filter bill.InstanceFilter) ([]*bill.Instance, error) {
			require.NotNil(t, filter.BillID)
			assert.Equal(t, billID, *filter.BillID)
			assert.Equal(t, 1, filter.Limit)

			return []*bill.Instance{inst}, nil
		})
	m.repo.EXPECT().MarkInstancePaid(gomock.Any(), inst.ID, now).Return(true, nil)
	m.payments.EXPECT().
		Create(gomock.Any(), ownerID, gomock.Any()).
		Return(&transaction.Transaction{ID: uuid.New()}, nil)
	m.repo.EXPECT().CountUnpaidInstances(gomock.Any(), ownerID, billID).Return(0, nil)
	m.repo.EXPECT().UpdateBillStatus(gomock.Any(), billID, bill.StatusPaid, &now).Return(nil)

	svc := bill.NewService(m.repo, m.ledger, m.payments, fixedClock(now))

	result, err := svc.Pay(context.Background(), ownerID, billID, nil)

	require.NoError(t, err)
	assert.True(t, result.BillPaid)
	assert.Equal(t, bill.StatusPaid, result.Bill.Status)
}

func TestService_Pay_OverdueInstance(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()
	now := date(2024, 5, 2)
	m := newServiceMocks(t)

	b := &bill.Bill{
		ID:       billID,
		OwnerID:  ownerID,
		Name:     "Condomínio",
		Amount:   45000,
		Category: bill.CategoryHousing,
		Status:   bill.StatusOverdue,
	}

	amount := moneyCents(45000)
	inst := &bill.Instance{
		ID:      uuid.New(),
		BillID:  billID,
		Amount:  &amount,
		Month:   4,
		Year:    2024,
		DueDate: date(2024, 4, 10),
		Status:  bill.StatusOverdue,
	}

	m.repo.EXPECT().GetBill(gomock.Any(), ownerID, billID).Return(b, nil)
	m.repo.EXPECT().GetInstance(gomock.Any(), ownerID, inst.ID).Return(inst, nil)
	m.repo.EXPECT().MarkInstancePaid(gomock.Any(), inst.ID, now).Return(true, nil)
	m.payments.EXPECT().
		Create(gomock.Any(), ownerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, params transaction.CreateParams) (*transaction.Transaction, error) {
			assert.Equal(t, 4, params.Month)
			assert.Equal(t, 2024, params.Year)

			return &transaction.Transaction{ID: uuid.New(), Amount: params.Amount}, nil
		})
	m.repo.EXPECT().CountUnpaidInstances(gomock.Any(), ownerID, billID).Return(0, nil)
	m.repo.EXPECT().UpdateBillStatus(gomock.Any(), billID, bill.StatusPaid, &now).Return(nil)

	svc := bill.NewService(m.repo, m.ledger, m.payments, fixedClock(now))

	result, err := svc.Pay(context.Background(), ownerID, billID, &inst.ID)

	require.NoError(t, err)
	assert.Equal(t, bill.StatusPaid, result.Instance.Status)
	assert.True(t, result.BillPaid)
	assert.Equal(t, bill.StatusPaid, result.Bill.Status)
}

func TestService_Pay_OverdueInstancesStillRemain(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()
	now := date(2024, 5, 2)
	m := newServiceMocks(t)

	b := &bill.Bill{ID: billID, OwnerID: ownerID, Name: "Luz", Amount: 12000, Category: bill.CategoryUtilities, Status: bill.StatusOverdue}

	amount := moneyCents(12000)
	inst := &bill.Instance{ID: uuid.New(), BillID: billID, Amount: &amount, Month: 4, Year: 2024, Status: bill.StatusOverdue}

	m.repo.EXPECT().GetBill(gomock.Any(), ownerID, billID).Return(b, nil)
	m.repo.EXPECT().GetInstance(gomock.Any(), ownerID, inst.ID).Return(inst, nil)
	m.repo.EXPECT().MarkInstancePaid(gomock.Any(), inst.ID, now).Return(true, nil)
	m.payments.EXPECT().
		Create(gomock.Any(), ownerID, gomock.Any()).
		Return(&transaction.Transaction{ID: uuid.New()}, nil)
	m.repo.EXPECT().CountUnpaidInstances(gomock.Any(), ownerID, billID).Return(1, nil)

	svc := bill.NewService(m.repo, m.ledger, m.payments, fixedClock(now))

	result, err := svc.Pay(context.Background(), ownerID, billID, &inst.ID)

	require.NoError(t, err)
	assert.False(t, result.BillPaid)
	assert.Equal(t, bill.StatusOverdue, result.Bill.Status)
}

func TestService_Pay_AlreadyPaid(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()
	now := date(2024, 3, 12)
	m := newServiceMocks(t)

	amount := moneyCents(8000)
	inst := &bill.Instance{ID: uuid.New(), BillID: billID, Amount: &amount, Month: 3, Year: 2024, Status: bill.StatusPending}

	m.repo.EXPECT().GetBill(gomock.Any(), ownerID, billID).Return(&bill.Bill{ID: billID, Name: "Internet"}, nil)
	m.repo.EXPECT().GetInstance(gomock.Any(), ownerID, inst.ID).Return(inst, nil)
	m.repo.EXPECT().MarkInstancePaid(gomock.Any(), inst.ID, now).Return(false, nil)

	svc := bill.NewService(m.repo, m.ledger, m.payments, fixedClock(now))

	_, err := svc.Pay(context.Background(), ownerID, billID, &inst.ID)
	assert.ErrorIs(t, err, bill.ErrAlreadyPaid)
}

func TestService_Pay_NoPendingInstance(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()
	m := newServiceMocks(t)

	m.repo.EXPECT().GetBill(gomock.Any(), ownerID, billID).Return(&bill.Bill{ID: billID}, nil)
	m.repo.EXPECT().ListInstances(gomock.Any(), ownerID, gomock.Any()).Return(nil, nil)

	svc := bill.NewService(m.repo, m.ledger, m.payments)

	_, err := svc.Pay(context.Background(), ownerID, billID, nil)
	assert.ErrorIs(t, err, bill.ErrNoPendingInstance)
}

func TestService_Pay_InstanceBelongsToOtherBill(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()
	m := newServiceMocks(t)

	inst := &bill.Instance{ID: uuid.New(), BillID: uuid.New(), Status: bill.StatusPending}

	m.repo.EXPECT().GetBill(gomock.Any(), ownerID, billID).Return(&bill.Bill{ID: billID}, nil)
	m.repo.EXPECT().GetInstance(gomock.Any(), ownerID, inst.ID).Return(inst, nil)

	svc := bill.NewService(m.repo, m.ledger, m.payments)

	_, err := svc.Pay(context.Background(), ownerID, billID, &inst.ID)
	assert.ErrorIs(t, err, bill.ErrInstanceNotFound)
}

func TestService_CheckOverdue(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()
	today := date(2024, 4, 20)
	m := newServiceMocks(t)

	overdue := []*bill.Instance{
		{ID: uuid.New(), BillID: billID, Month: 2, Year: 2024, DueDate: date(2024, 2, 10), Status: bill.StatusPending},
		{ID: uuid.New(), BillID: billID, Month: 3, Year: 2024, DueDate: date(2024, 3, 10), Status: bill.StatusPending},
	}

	m.repo.EXPECT().
		ListInstances(gomock.Any(), ownerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filter bill.InstanceFilter) ([]*bill.Instance, error) {
			require.NotNil(t, filter.DueBefore)
			assert.Equal(t, today, *filter.DueBefore)

			return overdue, nil
		})
	m.repo.EXPECT().
		MarkInstancesOverdue(gomock.Any(), []uuid.UUID{overdue[0].ID, overdue[1].ID}).
		Return(nil)
	m.repo.EXPECT().CountPendingInstances(gomock.Any(), ownerID, billID).Return(0, nil)
	m.repo.EXPECT().MarkBillsOverdue(gomock.Any(), []uuid.UUID{billID}).Return(nil)

	// No ledger expectations: the sweep changes status only.
	svc := bill.NewService(m.repo, m.ledger, m.payments, fixedClock(today))

	count, err := svc.CheckOverdue(context.Background(), ownerID)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestService_CheckOverdue_BillStillHasPending(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()
	today := date(2024, 4, 20)
	m := newServiceMocks(t)

	overdue := []*bill.Instance{
		{ID: uuid.New(), BillID: billID, Month: 3, Year: 2024, DueDate: date(2024, 3, 10), Status: bill.StatusPending},
	}

	m.repo.EXPECT().ListInstances(gomock.Any(), ownerID, gomock.Any()).Return(overdue, nil)
	m.repo.EXPECT().MarkInstancesOverdue(gomock.Any(), gomock.Any()).Return(nil)
	m.repo.EXPECT().CountPendingInstances(gomock.Any(), ownerID, billID).Return(2, nil)

	svc := bill.NewService(m.repo, m.ledger, m.payments, fixedClock(today))

	count, err := svc.CheckOverdue(context.Background(), ownerID)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestService_CheckOverdue_NothingDue(t *testing.T) {
	ownerID := uuid.New()
	m := newServiceMocks(t)

	m.repo.EXPECT().ListInstances(gomock.Any(), ownerID, gomock.Any()).Return(nil, nil)

	svc := bill.NewService(m.repo, m.ledger, m.payments)

	count, err := svc.CheckOverdue(context.Background(), ownerID)

	require.NoError(t, err)
	assert.Zero(t, count)
}
