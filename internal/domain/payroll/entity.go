package payroll

import (
	"github.com/shopspring/decimal"
)

// PayrollStatement is the computed monthly breakdown for one staff member.
// It is derived on demand from the attendance ledger and the staff base
// salary, has no identity and is never persisted.
type PayrollStatement struct {
	BaseSalary        decimal.Decimal
	DaysInMonth       int
	PerDaySalary      decimal.Decimal
	HalfDaySalary     decimal.Decimal
	PresentDays       int
	HalfDays          int
	AbsentDays        int
	AbsentDeduction   decimal.Decimal
	HalfDayDeduction  decimal.Decimal
	TotalExtraMinutes int
	ExtraWorkAmount   decimal.Decimal
	NetPayable        decimal.Decimal
}
