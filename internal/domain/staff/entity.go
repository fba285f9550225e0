package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryMethod enum. Informational only: the payroll calculator assumes a
// monthly salary regardless of the configured method.
type SalaryMethod string

const (
	SalaryMethodMonthly SalaryMethod = "monthly"
	SalaryMethodDaily   SalaryMethod = "daily"
	SalaryMethodPerTrip SalaryMethod = "per_trip"
)

// StaffMember is owned by the wider CRM; this service only reads it.
type StaffMember struct {
	ID           string
	Name         string
	BaseSalary   decimal.Decimal
	SalaryMethod SalaryMethod
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
