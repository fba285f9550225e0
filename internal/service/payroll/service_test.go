package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/drivedesk/payroll-backend-go/internal/domain/attendance"
	payrollDomain "github.com/drivedesk/payroll-backend-go/internal/domain/payroll"
	"github.com/drivedesk/payroll-backend-go/internal/domain/staff"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaffRepo struct {
	member staff.StaffMember
	err    error
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.StaffMember, error) {
	if f.err != nil {
		return staff.StaffMember{}, f.err
	}
	return f.member, nil
}

type rangeAttendanceRepo struct {
	records  []attendance.AttendanceRecord
	lastFrom time.Time
	lastTo   time.Time
}

func (f *rangeAttendanceRepo) Upsert(_ context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	return record, nil
}

func (f *rangeAttendanceRepo) ListByStaffAndRange(_ context.Context, staffID string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	f.lastFrom = from
	f.lastTo = to
	return f.records, nil
}

func (f *rangeAttendanceRepo) List(_ context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceRecord, error) {
	return f.records, nil
}

func TestComputeForStaff(t *testing.T) {
	staffRepo := &fakeStaffRepo{member: staff.StaffMember{
		ID:         "staff-1",
		Name:       "Ravi Kumar",
		BaseSalary: decimal.NewFromInt(30000),
	}}
	attRepo := &rangeAttendanceRepo{records: []attendance.AttendanceRecord{
		record(1, attendance.StatusPresent, 540),
	}}
	svc := NewPayrollService(staffRepo, attRepo)

	resp, err := svc.ComputeForStaff(context.Background(), "staff-1", time.September, 2025)

	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", resp.StaffName)
	assert.Equal(t, 9, resp.Month)
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, 1, resp.PresentDays)
	assert.Equal(t, 29, resp.AbsentDays)

	// The fetch window covers exactly the requested month.
	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), attRepo.lastFrom)
	assert.Equal(t, time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC), attRepo.lastTo)
}

func TestComputeForStaff_StaffNotFound(t *testing.T) {
	staffRepo := &fakeStaffRepo{err: staff.ErrStaffNotFound}
	svc := NewPayrollService(staffRepo, &rangeAttendanceRepo{})

	_, err := svc.ComputeForStaff(context.Background(), "nope", time.September, 2025)

	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestComputeForStaff_InvalidPeriod(t *testing.T) {
	staffRepo := &fakeStaffRepo{member: staff.StaffMember{ID: "staff-1"}}
	svc := NewPayrollService(staffRepo, &rangeAttendanceRepo{})

	_, err := svc.ComputeForStaff(context.Background(), "staff-1", time.Month(13), 2025)
	assert.ErrorIs(t, err, payrollDomain.ErrInvalidPeriod)

	_, err = svc.ComputeForStaff(context.Background(), "staff-1", time.September, 1999)
	assert.ErrorIs(t, err, payrollDomain.ErrInvalidPeriod)
}
