package payroll

import (
	"github.com/shopspring/decimal"
)

type PayrollResponse struct {
	StaffID           string          `json:"staff_id"`
	StaffName         string          `json:"staff_name"`
	Month             int             `json:"month"`
	Year              int             `json:"year"`
	BaseSalary        decimal.Decimal `json:"base_salary"`
	DaysInMonth       int             `json:"days_in_month"`
	PerDaySalary      decimal.Decimal `json:"per_day_salary"`
	HalfDaySalary     decimal.Decimal `json:"half_day_salary"`
	PresentDays       int             `json:"present_days"`
	HalfDays          int             `json:"half_days"`
	AbsentDays        int             `json:"absent_days"`
	AbsentDeduction   decimal.Decimal `json:"absent_deduction"`
	HalfDayDeduction  decimal.Decimal `json:"half_day_deduction"`
	TotalExtraMinutes int             `json:"total_extra_minutes"`
	ExtraWorkAmount   decimal.Decimal `json:"extra_work_amount"`
	NetPayable        decimal.Decimal `json:"net_payable"`
}
