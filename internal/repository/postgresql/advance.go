package postgresql

import (
	"context"
	"fmt"

	"github.com/drivedesk/payroll-backend-go/internal/domain/compensation"
	"github.com/drivedesk/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) compensation.AdvanceRepository {
	return &advanceRepository{db: db}
}

const advanceColumns = `
	id, staff_id, total_amount, repaid_amount, reason, status, created_at, updated_at
`

// Create implements compensation.AdvanceRepository.
func (r *advanceRepository) Create(ctx context.Context, loan compensation.AdvanceLoan) (compensation.AdvanceLoan, error) {
	q := r.db.Pool

	query := `
		INSERT INTO advance_loans (staff_id, total_amount, reason, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + advanceColumns

	var a compensation.AdvanceLoan
	err := q.QueryRow(ctx, query,
		loan.StaffID, loan.TotalAmount, loan.Reason, compensation.AdvanceStatusOpen,
	).Scan(
		&a.ID, &a.StaffID, &a.TotalAmount, &a.RepaidAmount, &a.Reason, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return compensation.AdvanceLoan{}, fmt.Errorf("failed to create advance loan: %w", err)
	}

	return a, nil
}

// GetByID implements compensation.AdvanceRepository.
func (r *advanceRepository) GetByID(ctx context.Context, id string) (compensation.AdvanceLoan, error) {
	q := r.db.Pool

	query := `
		SELECT ` + advanceColumns + `
		FROM advance_loans
		WHERE id = $1
	`

	var a compensation.AdvanceLoan
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.StaffID, &a.TotalAmount, &a.RepaidAmount, &a.Reason, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return compensation.AdvanceLoan{}, compensation.ErrAdvanceNotFound
		}
		return compensation.AdvanceLoan{}, fmt.Errorf("failed to get advance loan: %w", err)
	}

	a.Repayments, err = r.loadRepayments(ctx, q, a.ID)
	if err != nil {
		return compensation.AdvanceLoan{}, err
	}

	return a, nil
}

// ListByStaff implements compensation.AdvanceRepository.
func (r *advanceRepository) ListByStaff(ctx context.Context, staffID string) ([]compensation.AdvanceLoan, error) {
	q := r.db.Pool

	query := `
		SELECT ` + advanceColumns + `
		FROM advance_loans
		WHERE staff_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advance loans: %w", err)
	}
	defer rows.Close()

	var loans []compensation.AdvanceLoan
	for rows.Next() {
		var a compensation.AdvanceLoan
		if err := rows.Scan(
			&a.ID, &a.StaffID, &a.TotalAmount, &a.RepaidAmount, &a.Reason, &a.Status,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan advance loan row: %w", err)
		}
		loans = append(loans, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate advance loan rows: %w", err)
	}

	for i := range loans {
		loans[i].Repayments, err = r.loadRepayments(ctx, q, loans[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return loans, nil
}

// AddRepayment implements compensation.AdvanceRepository. The row lock keeps
// the running total consistent under concurrent repayments.
func (r *advanceRepository) AddRepayment(ctx context.Context, advanceID string, repayment compensation.AdvanceRepayment) (compensation.AdvanceLoan, error) {
	var result compensation.AdvanceLoan

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		lock := `
			SELECT status
			FROM advance_loans
			WHERE id = $1
			FOR UPDATE
		`

		var status string
		err := tx.QueryRow(ctx, lock, advanceID).Scan(&status)
		if err != nil {
			if err == pgx.ErrNoRows {
				return compensation.ErrAdvanceNotFound
			}
			return fmt.Errorf("failed to lock advance loan: %w", err)
		}
		if status == compensation.AdvanceStatusClosed {
			return compensation.ErrAdvanceAlreadyClosed
		}

		insert := `
			INSERT INTO advance_repayments (advance_id, amount, note, paid_at)
			VALUES ($1, $2, $3, $4)
		`
		_, err = tx.Exec(ctx, insert, advanceID, repayment.Amount, repayment.Note, repayment.PaidAt)
		if err != nil {
			return fmt.Errorf("failed to append advance repayment: %w", err)
		}

		update := `
			UPDATE advance_loans
			SET repaid_amount = repaid_amount + $2,
				status = CASE WHEN repaid_amount + $2 >= total_amount THEN 'closed' ELSE status END,
				updated_at = NOW()
			WHERE id = $1
			RETURNING ` + advanceColumns

		err = tx.QueryRow(ctx, update, advanceID, repayment.Amount).Scan(
			&result.ID, &result.StaffID, &result.TotalAmount, &result.RepaidAmount,
			&result.Reason, &result.Status, &result.CreatedAt, &result.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to update advance loan balance: %w", err)
		}

		result.Repayments, err = r.loadRepayments(ctx, tx, advanceID)
		return err
	})
	if err != nil {
		return compensation.AdvanceLoan{}, err
	}

	return result, nil
}

func (r *advanceRepository) loadRepayments(ctx context.Context, q database.Querier, advanceID string) ([]compensation.AdvanceRepayment, error) {
	query := `
		SELECT id, advance_id, amount, note, paid_at, created_at
		FROM advance_repayments
		WHERE advance_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, advanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load advance repayments: %w", err)
	}
	defer rows.Close()

	var repayments []compensation.AdvanceRepayment
	for rows.Next() {
		var rep compensation.AdvanceRepayment
		if err := rows.Scan(
			&rep.ID, &rep.AdvanceID, &rep.Amount, &rep.Note, &rep.PaidAt, &rep.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan advance repayment row: %w", err)
		}
		repayments = append(repayments, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate advance repayment rows: %w", err)
	}

	return repayments, nil
}
