package postgresql

import (
	"context"
	"fmt"

	"github.com/drivedesk/payroll-backend-go/internal/domain/compensation"
	"github.com/drivedesk/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type compensationRepository struct {
	db *database.DB
}

func NewCompensationRepository(db *database.DB) compensation.CompensationRepository {
	return &compensationRepository{db: db}
}

const compensationColumns = `
	id, staff_id, month_label, base_salary, deductions, net_pay, status,
	paid_date, advance_amount, created_at, updated_at
`

// GetByStaffAndMonth implements compensation.CompensationRepository.
func (r *compensationRepository) GetByStaffAndMonth(ctx context.Context, staffID, monthLabel string) (compensation.CompensationRecord, error) {
	q := r.db.Pool

	query := `
		SELECT ` + compensationColumns + `
		FROM compensation_records
		WHERE staff_id = $1 AND month_label = $2
	`

	var c compensation.CompensationRecord
	err := q.QueryRow(ctx, query, staffID, monthLabel).Scan(
		&c.ID, &c.StaffID, &c.MonthLabel, &c.BaseSalary, &c.Deductions, &c.NetPay, &c.Status,
		&c.PaidDate, &c.AdvanceAmount, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return compensation.CompensationRecord{}, compensation.ErrCompensationNotFound
		}
		return compensation.CompensationRecord{}, fmt.Errorf("failed to get compensation record: %w", err)
	}

	c.Transactions, err = r.loadTransactions(ctx, q, c.ID)
	if err != nil {
		return compensation.CompensationRecord{}, err
	}

	return c, nil
}

// ListByStaff implements compensation.CompensationRepository.
func (r *compensationRepository) ListByStaff(ctx context.Context, staffID string) ([]compensation.CompensationRecord, error) {
	q := r.db.Pool

	query := `
		SELECT ` + compensationColumns + `
		FROM compensation_records
		WHERE staff_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensation records: %w", err)
	}
	defer rows.Close()

	var records []compensation.CompensationRecord
	for rows.Next() {
		var c compensation.CompensationRecord
		if err := rows.Scan(
			&c.ID, &c.StaffID, &c.MonthLabel, &c.BaseSalary, &c.Deductions, &c.NetPay, &c.Status,
			&c.PaidDate, &c.AdvanceAmount, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan compensation row: %w", err)
		}
		records = append(records, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate compensation rows: %w", err)
	}

	for i := range records {
		records[i].Transactions, err = r.loadTransactions(ctx, q, records[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return records, nil
}

// RecordSettlement implements compensation.CompensationRepository. The upsert
// and the ledger append run in one transaction; the unique key on
// (staff_id, month_label) serializes concurrent settlements for the same
// month, so two racing calls end up as one record with two transactions.
func (r *compensationRepository) RecordSettlement(ctx context.Context, s compensation.Settlement) (compensation.CompensationRecord, error) {
	var result compensation.CompensationRecord

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		upsert := `
			INSERT INTO compensation_records (
				staff_id, month_label, base_salary, deductions, net_pay, status, paid_date
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (staff_id, month_label) DO UPDATE SET
				net_pay = EXCLUDED.net_pay,
				status = EXCLUDED.status,
				paid_date = EXCLUDED.paid_date,
				updated_at = NOW()
			RETURNING id
		`

		var compensationID string
		err := tx.QueryRow(ctx, upsert,
			s.StaffID, s.MonthLabel, s.BaseSalary, s.Deductions, s.NetPay, s.Status, s.PaidDate,
		).Scan(&compensationID)
		if err != nil {
			return fmt.Errorf("failed to upsert compensation record: %w", err)
		}

		appendTxn := `
			INSERT INTO payment_transactions (
				compensation_id, transaction_id, gateway_order_id, gateway_payment_id,
				gateway_signature, amount, status, payment_method, payment_date
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`

		t := s.Transaction
		_, err = tx.Exec(ctx, appendTxn,
			compensationID, t.TransactionID, t.GatewayOrderID, t.GatewayPaymentID,
			t.GatewaySignature, t.Amount, t.Status, t.PaymentMethod, t.PaymentDate,
		)
		if err != nil {
			return fmt.Errorf("failed to append payment transaction: %w", err)
		}

		query := `
			SELECT ` + compensationColumns + `
			FROM compensation_records
			WHERE id = $1
		`
		err = tx.QueryRow(ctx, query, compensationID).Scan(
			&result.ID, &result.StaffID, &result.MonthLabel, &result.BaseSalary, &result.Deductions,
			&result.NetPay, &result.Status, &result.PaidDate, &result.AdvanceAmount,
			&result.CreatedAt, &result.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to reload compensation record: %w", err)
		}

		result.Transactions, err = r.loadTransactions(ctx, tx, compensationID)
		return err
	})
	if err != nil {
		return compensation.CompensationRecord{}, err
	}

	return result, nil
}

func (r *compensationRepository) loadTransactions(ctx context.Context, q database.Querier, compensationID string) ([]compensation.PaymentTransaction, error) {
	query := `
		SELECT id, compensation_id, transaction_id, gateway_order_id, gateway_payment_id,
			   gateway_signature, amount, status, payment_method, payment_date, created_at
		FROM payment_transactions
		WHERE compensation_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, compensationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment transactions: %w", err)
	}
	defer rows.Close()

	var transactions []compensation.PaymentTransaction
	for rows.Next() {
		var t compensation.PaymentTransaction
		if err := rows.Scan(
			&t.ID, &t.CompensationID, &t.TransactionID, &t.GatewayOrderID, &t.GatewayPaymentID,
			&t.GatewaySignature, &t.Amount, &t.Status, &t.PaymentMethod, &t.PaymentDate, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment transaction row: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment transaction rows: %w", err)
	}

	return transactions, nil
}
