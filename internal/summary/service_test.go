package summary_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bolsofacil/api/internal/money"
	"github.com/bolsofacil/api/internal/summary"
)

func billCreatedAt(y, m int) time.Time {
	return time.Date(y, time.Month(m), 10, 0, 0, 0, 0, time.UTC)
}

func TestService_GetOrCreate(t *testing.T) {
	owner := uuid.New()

	type testCase struct {
		name          string
		month, year   int
		setupMocks    func(repo *summary.MockRepository, bills *summary.MockBillSource)
		wantErr       bool
		wantPersisted bool
		wantExpense   money.Cents
		wantBalance   money.Cents
	}

	tests := []testCase{
		{
			name:  "ExistingRowIsReturnedAsIs",
			month: 6, year: 2024,
			setupMocks: func(repo *summary.MockRepository, _ *summary.MockBillSource) {
				repo.EXPECT().
					GetSummary(gomock.Any(), owner, 6, 2024).
					Return(&summary.Summary{
						ID: uuid.New(), OwnerID: owner, Month: 6, Year: 2024,
						TotalIncome: 5000, TotalExpense: 2000, TotalBalance: 3000,
					}, nil)
			},
			wantPersisted: true,
			wantExpense:   2000,
			wantBalance:   3000,
		},
		{
			name:  "MissingRowIsSeededFromActiveBills",
			month: 6, year: 2024,
			setupMocks: func(repo *summary.MockRepository, bills *summary.MockBillSource) {
				repo.EXPECT().
					GetSummary(gomock.Any(), owner, 6, 2024).
					Return(nil, summary.ErrNotFound)
				bills.EXPECT().
					ActiveBills(gomock.Any(), owner).
					Return([]summary.SeedBill{
						{Amount: 10000, Recurrence: "monthly", CreatedAt: billCreatedAt(2024, 1)},
						// Quarterly from January: due in Jan, Apr, Jul... not June.
						{Amount: 5000, Recurrence: "quarterly", CreatedAt: billCreatedAt(2024, 1)},
						// Annual created in June counts for every June onwards.
						{Amount: 2000, Recurrence: "annually", CreatedAt: billCreatedAt(2023, 6)},
					}, nil)
				repo.EXPECT().
					CreateSummary(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *summary.Summary) error {
						s.ID = uuid.New()
						return nil
					})
			},
			wantPersisted: true,
			wantExpense:   12000,
			wantBalance:   -12000,
		},
		{
			name:  "ZeroSeedPersistsNothing",
			month: 3, year: 2024,
			setupMocks: func(repo *summary.MockRepository, bills *summary.MockBillSource) {
				repo.EXPECT().
					GetSummary(gomock.Any(), owner, 3, 2024).
					Return(nil, summary.ErrNotFound)
				bills.EXPECT().
					ActiveBills(gomock.Any(), owner).
					Return(nil, nil)
			},
			wantPersisted: false,
		},
		{
			name:  "BillsCreatedAfterPeriodAreExcluded",
			month: 3, year: 2024,
			setupMocks: func(repo *summary.MockRepository, bills *summary.MockBillSource) {
				repo.EXPECT().
					GetSummary(gomock.Any(), owner, 3, 2024).
					Return(nil, summary.ErrNotFound)
				bills.EXPECT().
					ActiveBills(gomock.Any(), owner).
					Return([]summary.SeedBill{
						{Amount: 10000, Recurrence: "monthly", CreatedAt: billCreatedAt(2024, 5)},
					}, nil)
			},
			wantPersisted: false,
		},
		{
			name:  "InvalidMonth",
			month: 13, year: 2024,
			setupMocks: func(_ *summary.MockRepository, _ *summary.MockBillSource) {},
			wantErr:    true,
		},
		{
			name:  "RepoError",
			month: 6, year: 2024,
			setupMocks: func(repo *summary.MockRepository, _ *summary.MockBillSource) {
				repo.EXPECT().
					GetSummary(gomock.Any(), owner, 6, 2024).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := summary.NewMockRepository(ctrl)
			bills := summary.NewMockBillSource(ctrl)
			tt.setupMocks(repo, bills)

			svc := summary.NewService(repo, bills)
			got, err := svc.GetOrCreate(context.Background(), owner, tt.month, tt.year)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantPersisted, got.Persisted())
			assert.Equal(t, tt.wantExpense, got.TotalExpense)
			assert.Equal(t, tt.wantBalance, got.TotalBalance)
			assert.Equal(t, got.TotalIncome-got.TotalExpense, got.TotalBalance)
		})
	}
}

func TestService_GetOrCreate_SecondCallIsPureRead(t *testing.T) {
	owner := uuid.New()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := summary.NewMockRepository(ctrl)
	bills := summary.NewMockBillSource(ctrl)

	row := &summary.Summary{ID: uuid.New(), OwnerID: owner, Month: 6, Year: 2024, TotalExpense: 100, TotalBalance: -100}

	gomock.InOrder(
		repo.EXPECT().GetSummary(gomock.Any(), owner, 6, 2024).Return(nil, summary.ErrNotFound),
		bills.EXPECT().ActiveBills(gomock.Any(), owner).Return([]summary.SeedBill{
			{Amount: 100, Recurrence: "monthly", CreatedAt: billCreatedAt(2024, 1)},
		}, nil),
		repo.EXPECT().CreateSummary(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *summary.Summary) error {
			s.ID = row.ID
			return nil
		}),
		repo.EXPECT().GetSummary(gomock.Any(), owner, 6, 2024).Return(row, nil),
	)

	svc := summary.NewService(repo, bills)

	first, err := svc.GetOrCreate(context.Background(), owner, 6, 2024)
	require.NoError(t, err)

	second, err := svc.GetOrCreate(context.Background(), owner, 6, 2024)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestService_ApplyDelta(t *testing.T) {
	owner := uuid.New()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := summary.NewMockRepository(ctrl)
	bills := summary.NewMockBillSource(ctrl)

	existing := &summary.Summary{ID: uuid.New(), OwnerID: owner, Month: 6, Year: 2024}

	repo.EXPECT().GetSummary(gomock.Any(), owner, 6, 2024).Return(existing, nil)
	repo.EXPECT().
		ApplyDelta(gomock.Any(), owner, 6, 2024, money.Cents(0), money.Cents(8000)).
		Return(&summary.Summary{
			ID: existing.ID, OwnerID: owner, Month: 6, Year: 2024,
			TotalExpense: 8000, TotalBalance: -8000,
		}, nil)

	svc := summary.NewService(repo, bills)

	got, err := svc.ApplyDelta(context.Background(), owner, 6, 2024, summary.ExpenseDelta(8000))
	require.NoError(t, err)
	assert.Equal(t, money.Cents(8000), got.TotalExpense)
	assert.Equal(t, got.TotalIncome-got.TotalExpense, got.TotalBalance)
}

func TestService_ApplyDelta_ZeroDeltaIsARead(t *testing.T) {
	owner := uuid.New()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := summary.NewMockRepository(ctrl)
	bills := summary.NewMockBillSource(ctrl)

	existing := &summary.Summary{ID: uuid.New(), OwnerID: owner, Month: 6, Year: 2024}
	repo.EXPECT().GetSummary(gomock.Any(), owner, 6, 2024).Return(existing, nil)

	svc := summary.NewService(repo, bills)

	got, err := svc.ApplyDelta(context.Background(), owner, 6, 2024, summary.Delta{})
	require.NoError(t, err)
	assert.Equal(t, existing, got)
}

func TestDelta_RoundTrip(t *testing.T) {
	d := summary.Delta{Income: 1500, Expense: 700}
	sum := d.Add(d.Negate())

	assert.True(t, sum.IsZero())
	assert.Equal(t, money.Cents(0), sum.Balance())
	assert.Equal(t, money.Cents(800), d.Balance())
}
