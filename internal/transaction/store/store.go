package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bolsofacil/api/internal/period"
	"github.com/bolsofacil/api/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	id, user_id, title, amount, type, category, description, date,
	month, year, created_at, updated_at
`

func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr string

	var category, description sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.OwnerID, &tx.Title, &tx.Amount, &typeStr,
		&category, &description, &tx.Date,
		&tx.Month, &tx.Year, &tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)
	tx.Category = category.String
	tx.Description = description.String

	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, title, amount, type, category, description, date, month, year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.OwnerID,
		tx.Title,
		tx.Amount,
		tx.Type,
		tx.Category,
		tx.Description,
		tx.Date,
		tx.Month,
		tx.Year,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE id = $1 AND user_id = $2`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

// ListTransactions narrows by the filter period. Month and week periods
// match on the bucketed (month, year) pair, so payments pinned to a past
// period surface with it; ranges match on the raw date window.
func (s *Store) ListTransactions(ctx context.Context, ownerID uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE user_id = $1`

	args := []any{ownerID}

	argIdx := 2

	if p := filter.Period; p != nil {
		switch p.Kind {
		case period.KindMonth, period.KindWeek:
			query += fmt.Sprintf(" AND month = $%d AND year = $%d", argIdx, argIdx+1)

			args = append(args, p.Month, p.Year)
			argIdx += 2
		case period.KindYear:
			query += fmt.Sprintf(" AND year = $%d", argIdx)

			args = append(args, p.Year)
			argIdx++
		case period.KindRange:
			start, end := p.Window()
			query += fmt.Sprintf(" AND date >= $%d AND date < $%d", argIdx, argIdx+1)

			args = append(args, start, end)
			argIdx += 2
		}
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (s *Store) ListTransactionsByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*transaction.Transaction, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND id = ANY($2)`

	rows, err := s.db.QueryContext(ctx, query, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("listing transactions by ids: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (s *Store) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		UPDATE transactions
		SET title = $1, amount = $2, type = $3, category = $4, description = $5,
			date = $6, month = $7, year = $8, updated_at = NOW()
		WHERE id = $9 AND user_id = $10
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.Title,
		tx.Amount,
		tx.Type,
		tx.Category,
		tx.Description,
		tx.Date,
		tx.Month,
		tx.Year,
		tx.ID,
		tx.OwnerID,
	).Scan(&tx.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return transaction.ErrNotFound
		}

		return fmt.Errorf("updating transaction: %w", err)
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if affected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteTransactions(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) error {
	query := `DELETE FROM transactions WHERE user_id = $1 AND id = ANY($2)`

	_, err := s.db.ExecContext(ctx, query, ownerID, ids)
	if err != nil {
		return fmt.Errorf("deleting transactions: %w", err)
	}

	return nil
}

// BeginImport opens the database transaction an import batch runs in. The
// statement's date window is captured up front so duplicate detection scans
// one bounded slice of the owner's history.
func (s *Store) BeginImport(ctx context.Context, ownerID uuid.UUID, minDate, maxDate time.Time) (transaction.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	return &importTx{
		tx:      dbTx,
		ownerID: ownerID,
		minDate: minDate,
		maxDate: maxDate,
	}, nil
}

type importTx struct {
	tx      *sql.Tx
	ownerID uuid.UUID
	minDate time.Time
	maxDate time.Time
}

func (t *importTx) FindDuplicates(ctx context.Context, _ []transaction.CreateParams) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3`

	rows, err := t.tx.QueryContext(ctx, query, t.ownerID, t.minDate, t.maxDate)
	if err != nil {
		return nil, fmt.Errorf("querying window: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (t *importTx) CreateTransactions(ctx context.Context, txs []*transaction.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, title, amount, type, category, description, date, month, year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	for _, tx := range txs {
		err := t.tx.QueryRowContext(ctx, query,
			tx.OwnerID,
			tx.Title,
			tx.Amount,
			tx.Type,
			tx.Category,
			tx.Description,
			tx.Date,
			tx.Month,
			tx.Year,
		).Scan(&tx.ID, &tx.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating transaction: %w", err)
		}
	}

	return nil
}

func (t *importTx) Commit() error {
	return t.tx.Commit()
}

func (t *importTx) Rollback() error {
	return t.tx.Rollback()
}

func collectTransactions(rows *sql.Rows) ([]*transaction.Transaction, error) {
	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	return txs, rows.Err()
}
