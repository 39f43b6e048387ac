package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/bolsofacil/api/internal/money"
	"github.com/bolsofacil/api/internal/summary"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectSummaryColumns = `
	id, user_id, month, year, total_income, total_expense, total_balance, updated_at
`

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(s scanner) (*summary.Summary, error) {
	var sm summary.Summary

	if err := s.Scan(
		&sm.ID, &sm.OwnerID, &sm.Month, &sm.Year,
		&sm.TotalIncome, &sm.TotalExpense, &sm.TotalBalance, &sm.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &sm, nil
}

func (s *Store) GetSummary(ctx context.Context, ownerID uuid.UUID, month, year int) (*summary.Summary, error) {
	query := `SELECT ` + selectSummaryColumns + `
		FROM user_monthly_summary
		WHERE user_id = $1 AND month = $2 AND year = $3`

	sm, err := scanSummary(s.db.QueryRowContext(ctx, query, ownerID, month, year))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, summary.ErrNotFound
		}

		return nil, fmt.Errorf("getting summary: %w", err)
	}

	return sm, nil
}

// CreateSummary inserts the seeded row for a period. Two callers racing on
// the same period both end up with the same row: the conflict arm returns
// the already-inserted one unchanged.
func (s *Store) CreateSummary(ctx context.Context, sm *summary.Summary) error {
	query := `
		INSERT INTO user_monthly_summary (user_id, month, year, total_income, total_expense, total_balance, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id, month, year) DO UPDATE SET updated_at = user_monthly_summary.updated_at
		RETURNING ` + selectSummaryColumns

	scanned, err := scanSummary(s.db.QueryRowContext(ctx, query,
		sm.OwnerID, sm.Month, sm.Year,
		sm.TotalIncome, sm.TotalExpense, sm.TotalBalance,
	))
	if err != nil {
		return fmt.Errorf("creating summary: %w", err)
	}

	*sm = *scanned

	return nil
}

// ApplyDelta increments the period totals in one statement. The expense
// total is floored at zero and the balance is recomputed from the new income
// and expense in the same statement, so the balance invariant cannot drift
// and concurrent deltas cannot race.
func (s *Store) ApplyDelta(ctx context.Context, ownerID uuid.UUID, month, year int, income, expense money.Cents) (*summary.Summary, error) {
	query := `
		INSERT INTO user_monthly_summary (user_id, month, year, total_income, total_expense, total_balance, updated_at)
		VALUES ($1, $2, $3, $4, GREATEST(0, $5), $4 - GREATEST(0, $5), NOW())
		ON CONFLICT (user_id, month, year) DO UPDATE SET
			total_income = user_monthly_summary.total_income + $4,
			total_expense = GREATEST(0, user_monthly_summary.total_expense + $5),
			total_balance = (user_monthly_summary.total_income + $4) - GREATEST(0, user_monthly_summary.total_expense + $5),
			updated_at = NOW()
		RETURNING ` + selectSummaryColumns

	sm, err := scanSummary(s.db.QueryRowContext(ctx, query, ownerID, month, year, income, expense))
	if err != nil {
		return nil, fmt.Errorf("applying summary delta: %w", err)
	}

	return sm, nil
}
