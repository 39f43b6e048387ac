package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bolsofacil/api/internal/bill"
	"github.com/bolsofacil/api/internal/summary"
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

const selectBillColumns = `
	id, user_id, name, description, amount, category, status, active,
	recurrence, preferred_payment_day, reminder_days, last_paid_date,
	created_at, updated_at
`

func scanBill(s scanner) (*bill.Bill, error) {
	var b bill.Bill

	var description sql.NullString

	var categoryStr, statusStr, recurrenceStr string

	if err := s.Scan(
		&b.ID, &b.OwnerID, &b.Name, &description, &b.Amount,
		&categoryStr, &statusStr, &b.Active,
		&recurrenceStr, &b.PreferredDay, &b.ReminderDays, &b.LastPaidAt,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	b.Description = description.String
	b.Category = bill.Category(categoryStr)
	b.Status = bill.Status(statusStr)
	b.Recurrence = bill.Recurrence(recurrenceStr)

	return &b, nil
}

const selectInstanceColumns = `
	id, user_id, bill_id, amount, status, due_date, paid_date,
	month, year, preferred_payment_day, created_at, updated_at
`

func scanInstance(s scanner) (*bill.Instance, error) {
	var inst bill.Instance

	var statusStr string

	if err := s.Scan(
		&inst.ID, &inst.OwnerID, &inst.BillID, &inst.Amount,
		&statusStr, &inst.DueDate, &inst.PaidAt,
		&inst.Month, &inst.Year, &inst.PreferredDay,
		&inst.CreatedAt, &inst.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inst.Status = bill.Status(statusStr)

	return &inst, nil
}

func (s *Store) CreateBill(ctx context.Context, b *bill.Bill) error {
	query := `
		INSERT INTO bills (user_id, name, description, amount, category, status, active,
			recurrence, day, preferred_payment_day, reminder_days, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9, $10, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		b.OwnerID,
		b.Name,
		b.Description,
		b.Amount,
		b.Category,
		b.Status,
		b.Active,
		b.Recurrence,
		b.PreferredDay,
		b.ReminderDays,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating bill: %w", err)
	}

	return nil
}

func (s *Store) GetBill(ctx context.Context, ownerID, billID uuid.UUID) (*bill.Bill, error) {
	query := `SELECT ` + selectBillColumns + `
		FROM bills
		WHERE id = $1 AND user_id = $2`

	b, err := scanBill(s.db.QueryRowContext(ctx, query, billID, ownerID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bill.ErrNotFound
		}

		return nil, fmt.Errorf("getting bill: %w", err)
	}

	return b, nil
}

func (s *Store) ListBills(ctx context.Context, ownerID uuid.UUID, limit int) ([]*bill.Bill, error) {
	query := `SELECT ` + selectBillColumns + `
		FROM bills
		WHERE user_id = $1
		ORDER BY created_at DESC`

	args := []any{ownerID}

	if limit > 0 {
		query += " LIMIT $2"

		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}
	defer rows.Close()

	return collectBills(rows)
}

// ListBillsByIDs returns the owner's active bills among ids. Inactive and
// deleted bills fall out of the result, which is how feed consumers detect
// orphaned instances.
func (s *Store) ListBillsByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*bill.Bill, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + selectBillColumns + `
		FROM bills
		WHERE user_id = $1 AND active AND id = ANY($2)`

	rows, err := s.db.QueryContext(ctx, query, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("listing bills by ids: %w", err)
	}
	defer rows.Close()

	return collectBills(rows)
}

// ActiveBills returns the slices of the owner's active bills that summary
// seeding needs.
func (s *Store) ActiveBills(ctx context.Context, ownerID uuid.UUID) ([]summary.SeedBill, error) {
	query := `
		SELECT amount, recurrence, created_at
		FROM bills
		WHERE user_id = $1 AND active
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing active bills: %w", err)
	}
	defer rows.Close()

	var seeds []summary.SeedBill

	for rows.Next() {
		var seed summary.SeedBill

		if err := rows.Scan(&seed.Amount, &seed.Recurrence, &seed.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning active bill: %w", err)
		}

		seeds = append(seeds, seed)
	}

	return seeds, rows.Err()
}

func (s *Store) UpdateBill(ctx context.Context, b *bill.Bill) error {
	query := `
		UPDATE bills
		SET name = $1, description = $2, amount = $3, category = $4, active = $5,
			recurrence = $6, day = $7, preferred_payment_day = $7, reminder_days = $8,
			updated_at = NOW()
		WHERE id = $9 AND user_id = $10
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		b.Name,
		b.Description,
		b.Amount,
		b.Category,
		b.Active,
		b.Recurrence,
		b.PreferredDay,
		b.ReminderDays,
		b.ID,
		b.OwnerID,
	).Scan(&b.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return bill.ErrNotFound
		}

		return fmt.Errorf("updating bill: %w", err)
	}

	return nil
}

func (s *Store) UpdateBillStatus(ctx context.Context, billID uuid.UUID, status bill.Status, lastPaidAt *time.Time) error {
	query := `
		UPDATE bills
		SET status = $1, last_paid_date = COALESCE($2, last_paid_date), updated_at = NOW()
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, status, lastPaidAt, billID)
	if err != nil {
		return fmt.Errorf("updating bill status: %w", err)
	}

	return nil
}

func (s *Store) MarkBillsOverdue(ctx context.Context, billIDs []uuid.UUID) error {
	query := `
		UPDATE bills
		SET status = 'overdue', updated_at = NOW()
		WHERE id = ANY($1) AND status = 'pending'
	`

	_, err := s.db.ExecContext(ctx, query, billIDs)
	if err != nil {
		return fmt.Errorf("marking bills overdue: %w", err)
	}

	return nil
}

func (s *Store) DeleteBill(ctx context.Context, ownerID, billID uuid.UUID) error {
	query := `DELETE FROM bills WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, billID, ownerID)
	if err != nil {
		return fmt.Errorf("deleting bill: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting bill: %w", err)
	}

	if affected == 0 {
		return bill.ErrNotFound
	}

	return nil
}

// CreateInstances inserts the batch inside one database transaction so a
// failed expansion leaves no partial occurrences behind.
func (s *Store) CreateInstances(ctx context.Context, instances []*bill.Instance) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO bill_instances (user_id, bill_id, amount, status, due_date,
			month, year, preferred_payment_day, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (bill_id, month, year) DO NOTHING
		RETURNING id, created_at
	`

	for _, inst := range instances {
		err := dbTx.QueryRowContext(ctx, query,
			inst.OwnerID,
			inst.BillID,
			inst.Amount,
			inst.Status,
			inst.DueDate,
			inst.Month,
			inst.Year,
			inst.PreferredDay,
		).Scan(&inst.ID, &inst.CreatedAt)
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("creating bill instance: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetInstance(ctx context.Context, ownerID, instanceID uuid.UUID) (*bill.Instance, error) {
	query := `SELECT ` + selectInstanceColumns + `
		FROM bill_instances
		WHERE id = $1 AND user_id = $2`

	inst, err := scanInstance(s.db.QueryRowContext(ctx, query, instanceID, ownerID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bill.ErrInstanceNotFound
		}

		return nil, fmt.Errorf("getting bill instance: %w", err)
	}

	return inst, nil
}

func (s *Store) InstanceForPeriod(ctx context.Context, ownerID, billID uuid.UUID, month, year int) (*bill.Instance, error) {
	query := `SELECT ` + selectInstanceColumns + `
		FROM bill_instances
		WHERE user_id = $1 AND bill_id = $2 AND month = $3 AND year = $4`

	inst, err := scanInstance(s.db.QueryRowContext(ctx, query, ownerID, billID, month, year))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bill.ErrInstanceNotFound
		}

		return nil, fmt.Errorf("getting bill instance: %w", err)
	}

	return inst, nil
}

func (s *Store) ListInstances(ctx context.Context, ownerID uuid.UUID, filter bill.InstanceFilter) ([]*bill.Instance, error) {
	query := `SELECT ` + selectInstanceColumns + `
		FROM bill_instances
		WHERE user_id = $1`

	args := []any{ownerID}

	argIdx := 2

	if filter.BillID != nil {
		query += fmt.Sprintf(" AND bill_id = $%d", argIdx)

		args = append(args, *filter.BillID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Month != nil {
		query += fmt.Sprintf(" AND month = $%d", argIdx)

		args = append(args, *filter.Month)
		argIdx++
	}

	if filter.Year != nil {
		query += fmt.Sprintf(" AND year = $%d", argIdx)

		args = append(args, *filter.Year)
		argIdx++
	}

	if filter.DueFrom != nil {
		query += fmt.Sprintf(" AND due_date >= $%d", argIdx)

		args = append(args, *filter.DueFrom)
		argIdx++
	}

	if filter.DueBefore != nil {
		query += fmt.Sprintf(" AND due_date < $%d", argIdx)

		args = append(args, *filter.DueBefore)
		argIdx++
	}

	query += " ORDER BY due_date ASC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing bill instances: %w", err)
	}
	defer rows.Close()

	var instances []*bill.Instance

	for rows.Next() {
		inst, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bill instance: %w", err)
		}

		instances = append(instances, inst)
	}

	return instances, rows.Err()
}

func (s *Store) UpdateInstance(ctx context.Context, inst *bill.Instance) error {
	query := `
		UPDATE bill_instances
		SET amount = $1, due_date = $2, preferred_payment_day = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		inst.Amount,
		inst.DueDate,
		inst.PreferredDay,
		inst.ID,
	).Scan(&inst.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return bill.ErrInstanceNotFound
		}

		return fmt.Errorf("updating bill instance: %w", err)
	}

	return nil
}

// MarkInstancePaid flips a pending or overdue instance to paid. The status
// guard in the WHERE clause makes the flip conditional: the second of two
// concurrent payments sees zero affected rows and reports false.
func (s *Store) MarkInstancePaid(ctx context.Context, instanceID uuid.UUID, paidAt time.Time) (bool, error) {
	query := `
		UPDATE bill_instances
		SET status = 'paid', paid_date = $1, updated_at = NOW()
		WHERE id = $2 AND status IN ('pending', 'overdue')
	`

	res, err := s.db.ExecContext(ctx, query, paidAt, instanceID)
	if err != nil {
		return false, fmt.Errorf("marking instance paid: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("marking instance paid: %w", err)
	}

	return affected > 0, nil
}

func (s *Store) MarkInstancesOverdue(ctx context.Context, instanceIDs []uuid.UUID) error {
	query := `
		UPDATE bill_instances
		SET status = 'overdue', updated_at = NOW()
		WHERE id = ANY($1) AND status = 'pending'
	`

	_, err := s.db.ExecContext(ctx, query, instanceIDs)
	if err != nil {
		return fmt.Errorf("marking instances overdue: %w", err)
	}

	return nil
}

func (s *Store) CountPendingInstances(ctx context.Context, ownerID, billID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bill_instances
		WHERE user_id = $1 AND bill_id = $2 AND status = 'pending'
	`

	var count int

	if err := s.db.QueryRowContext(ctx, query, ownerID, billID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting pending instances: %w", err)
	}

	return count, nil
}

// CountUnpaidInstances counts the bill's instances that still await payment,
// pending and overdue alike.
func (s *Store) CountUnpaidInstances(ctx context.Context, ownerID, billID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bill_instances
		WHERE user_id = $1 AND bill_id = $2 AND status IN ('pending', 'overdue')
	`

	var count int

	if err := s.db.QueryRowContext(ctx, query, ownerID, billID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting unpaid instances: %w", err)
	}

	return count, nil
}

func (s *Store) DeleteInstance(ctx context.Context, instanceID uuid.UUID) error {
	query := `DELETE FROM bill_instances WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, instanceID)
	if err != nil {
		return fmt.Errorf("deleting bill instance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting bill instance: %w", err)
	}

	if affected == 0 {
		return bill.ErrInstanceNotFound
	}

	return nil
}

// DeletePendingInstances removes the bill's pending instances and returns
// them so the caller can revert their summary contributions. Paid and
// overdue instances stay behind as history.
func (s *Store) DeletePendingInstances(ctx context.Context, ownerID, billID uuid.UUID) ([]*bill.Instance, error) {
	query := `
		DELETE FROM bill_instances
		WHERE user_id = $1 AND bill_id = $2 AND status = 'pending'
		RETURNING ` + selectInstanceColumns

	rows, err := s.db.QueryContext(ctx, query, ownerID, billID)
	if err != nil {
		return nil, fmt.Errorf("deleting pending instances: %w", err)
	}
	defer rows.Close()

	var removed []*bill.Instance

	for rows.Next() {
		inst, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning deleted instance: %w", err)
		}

		removed = append(removed, inst)
	}

	return removed, rows.Err()
}

func collectBills(rows *sql.Rows) ([]*bill.Bill, error) {
	var bills []*bill.Bill

	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bill: %w", err)
		}

		bills = append(bills, b)
	}

	return bills, rows.Err()
}
