package postgresql

import (
	"context"
	"fmt"

	"github.com/drivedesk/payroll-backend-go/internal/domain/staff"
	"github.com/drivedesk/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

// GetByID implements staff.StaffRepository.
func (r *staffRepository) GetByID(ctx context.Context, id string) (staff.StaffMember, error) {
	q := r.db.Pool

	query := `
		SELECT id, name, base_salary, salary_method, created_at, updated_at
		FROM staff_members
		WHERE id = $1
	`

	var s staff.StaffMember
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.BaseSalary, &s.SalaryMethod, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.StaffMember{}, staff.ErrStaffNotFound
		}
		return staff.StaffMember{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return s, nil
}
