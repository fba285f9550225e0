package payroll

import (
	"time"

	"github.com/drivedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/drivedesk/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Day classification thresholds, in minutes. A full working day is 9 hours;
// anything beyond it is paid overtime, anything under 4.5 hours counts as a
// half day.
const (
	fullDayMinutes = 540
	halfDayMinutes = 270
)

// Derived classification, never stored in the ledger.
const classificationHalfDay = "half_day"

var (
	nineHours    = decimal.NewFromInt(9)
	sixtyMinutes = decimal.NewFromInt(60)
	two          = decimal.NewFromInt(2)
)

// Compute derives the monthly payroll statement from the base salary and the
// month's attendance records. Pure: no I/O, deterministic for identical
// inputs.
//
// Every calendar day of the month participates. A day with no record counts
// as absent, including days that have not happened yet when the month is
// still in progress; the figure is a worst-case liability, not earnings to
// date. A recorded day keeps its stored status when it is absent or its
// duration is unknown, and is otherwise reclassified by worked minutes:
// overtime past 9 hours pays out at the per-minute rate, under 4.5 hours
// becomes a half day.
func Compute(baseSalary decimal.Decimal, records []attendance.AttendanceRecord, month time.Month, year int) payroll.PayrollStatement {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	perDaySalary := baseSalary.Div(decimal.NewFromInt(int64(daysInMonth)))
	halfDaySalary := perDaySalary.Div(two)
	perMinuteRate := perDaySalary.Div(nineHours).Div(sixtyMinutes)

	// At most one record per day, per the ledger's uniqueness constraint.
	byDay := make(map[int]attendance.AttendanceRecord, len(records))
	for _, rec := range records {
		if rec.Date.Year() == year && rec.Date.Month() == month {
			byDay[rec.Date.Day()] = rec
		}
	}

	stmt := payroll.PayrollStatement{
		BaseSalary:       baseSalary,
		DaysInMonth:      daysInMonth,
		PerDaySalary:     perDaySalary,
		HalfDaySalary:    halfDaySalary,
		AbsentDeduction:  decimal.Zero,
		HalfDayDeduction: decimal.Zero,
		ExtraWorkAmount:  decimal.Zero,
	}

	for day := 1; day <= daysInMonth; day++ {
		rec, ok := byDay[day]
		if !ok {
			stmt.AbsentDays++
			continue
		}

		status := rec.Status
		minutes := rec.WorkMinutes

		// An absent mark and an unknown duration both leave the stored
		// status untouched; reclassification only applies to a day we know
		// the length of.
		if status != attendance.StatusAbsent && minutes > 0 {
			switch {
			case minutes > fullDayMinutes:
				status = attendance.StatusPresent
				extra := minutes - fullDayMinutes
				stmt.TotalExtraMinutes += extra
				stmt.ExtraWorkAmount = stmt.ExtraWorkAmount.Add(
					decimal.NewFromInt(int64(extra)).Mul(perMinuteRate),
				)
			case minutes < halfDayMinutes:
				status = classificationHalfDay
			default:
				status = attendance.StatusPresent
			}
		}

		switch status {
		case attendance.StatusPresent, attendance.StatusLate:
			stmt.PresentDays++
		case classificationHalfDay:
			stmt.HalfDays++
		default:
			stmt.AbsentDays++
		}
	}

	stmt.AbsentDeduction = perDaySalary.Mul(decimal.NewFromInt(int64(stmt.AbsentDays)))
	stmt.HalfDayDeduction = halfDaySalary.Mul(decimal.NewFromInt(int64(stmt.HalfDays)))
	stmt.NetPayable = baseSalary.
		Sub(stmt.AbsentDeduction).
		Sub(stmt.HalfDayDeduction).
		Add(stmt.ExtraWorkAmount)

	return stmt
}
