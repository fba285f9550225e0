package payroll

import (
	"context"
	"time"

	"github.com/drivedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/drivedesk/payroll-backend-go/internal/domain/payroll"
	"github.com/drivedesk/payroll-backend-go/internal/domain/staff"
)

type PayrollService interface {
	// ComputeForStaff derives the payroll statement for one staff member and
	// period. Zero month/year default to the current month.
	ComputeForStaff(ctx context.Context, staffID string, month time.Month, year int) (payroll.PayrollResponse, error)
}

type payrollServiceImpl struct {
	staffRepo      staff.StaffRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewPayrollService(
	staffRepo staff.StaffRepository,
	attendanceRepo attendance.AttendanceRepository,
) PayrollService {
	return &payrollServiceImpl{
		staffRepo:      staffRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (s *payrollServiceImpl) ComputeForStaff(ctx context.Context, staffID string, month time.Month, year int) (payroll.PayrollResponse, error) {
	now := time.Now().UTC()
	if month == 0 {
		month = now.Month()
	}
	if year == 0 {
		year = now.Year()
	}
	if month < time.January || month > time.December || year < 2000 {
		return payroll.PayrollResponse{}, payroll.ErrInvalidPeriod
	}

	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListByStaffAndRange(ctx, staffID, from, to)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	stmt := Compute(member.BaseSalary, records, month, year)

	return payroll.PayrollResponse{
		StaffID:           member.ID,
		StaffName:         member.Name,
		Month:             int(month),
		Year:              year,
		BaseSalary:        stmt.BaseSalary,
		DaysInMonth:       stmt.DaysInMonth,
		PerDaySalary:      stmt.PerDaySalary,
		HalfDaySalary:     stmt.HalfDaySalary,
		PresentDays:       stmt.PresentDays,
		HalfDays:          stmt.HalfDays,
		AbsentDays:        stmt.AbsentDays,
		AbsentDeduction:   stmt.AbsentDeduction,
		HalfDayDeduction:  stmt.HalfDayDeduction,
		TotalExtraMinutes: stmt.TotalExtraMinutes,
		ExtraWorkAmount:   stmt.ExtraWorkAmount,
		NetPayable:        stmt.NetPayable,
	}, nil
}
