package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/drivedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/drivedesk/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository. The unique index on
// (staff_id, date) makes concurrent marks for the same day serialize to a
// single last-writer-wins row.
func (r *attendanceRepository) Upsert(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := r.db.Pool

	query := `
		INSERT INTO attendance_records (
			staff_id, date, in_time, out_time, work_hours, work_minutes, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (staff_id, date) DO UPDATE SET
			in_time = EXCLUDED.in_time,
			out_time = EXCLUDED.out_time,
			work_hours = EXCLUDED.work_hours,
			work_minutes = EXCLUDED.work_minutes,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, staff_id, date, in_time, out_time, work_hours, work_minutes, status,
			created_at, updated_at
	`

	var a attendance.AttendanceRecord
	err := q.QueryRow(ctx, query,
		record.StaffID,
		record.Date,
		record.InTime,
		record.OutTime,
		record.WorkHours,
		record.WorkMinutes,
		record.Status,
	).Scan(
		&a.ID, &a.StaffID, &a.Date, &a.InTime, &a.OutTime, &a.WorkHours, &a.WorkMinutes, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return a, nil
}

// ListByStaffAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	q := r.db.Pool

	query := `
		SELECT id, staff_id, date, in_time, out_time, work_hours, work_minutes, status,
			   created_at, updated_at
		FROM attendance_records
		WHERE staff_id = $1
		  AND date >= $2
		  AND date <= $3
	`

	rows, err := q.Query(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by range: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceRecord, error) {
	q := r.db.Pool

	var sb strings.Builder
	sb.WriteString(`
		SELECT id, staff_id, date, in_time, out_time, work_hours, work_minutes, status,
			   created_at, updated_at
		FROM attendance_records
		WHERE 1=1
	`)

	args := []interface{}{}
	argIdx := 1

	if filter.StaffID != "" {
		sb.WriteString(fmt.Sprintf(" AND staff_id = $%d", argIdx))
		args = append(args, filter.StaffID)
		argIdx++
	}
	if filter.Date != nil {
		sb.WriteString(fmt.Sprintf(" AND date = $%d", argIdx))
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND date >= $%d", argIdx))
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND date <= $%d", argIdx))
		args = append(args, *filter.To)
		argIdx++
	}

	sb.WriteString(" ORDER BY date DESC")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func scanAttendanceRows(rows pgx.Rows) ([]attendance.AttendanceRecord, error) {
	var records []attendance.AttendanceRecord
	for rows.Next() {
		var a attendance.AttendanceRecord
		if err := rows.Scan(
			&a.ID, &a.StaffID, &a.Date, &a.InTime, &a.OutTime, &a.WorkHours, &a.WorkMinutes, &a.Status,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}
	return records, nil
}
