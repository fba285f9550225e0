package compensation

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Settlement carries one settlement outcome into the store. BaseSalary and
// Deductions only apply when the record does not exist yet; NetPay, Status and
// PaidDate overwrite the existing scalars every time.
type Settlement struct {
	StaffID     string
	MonthLabel  string
	BaseSalary  decimal.Decimal
	Deductions  decimal.Decimal
	NetPay      decimal.Decimal
	Status      Status
	PaidDate    time.Time
	Transaction PaymentTransaction
}

// CompensationRepository persists settled payroll statements.
type CompensationRepository interface {
	// GetByStaffAndMonth retrieves a record with its full transaction ledger.
	GetByStaffAndMonth(ctx context.Context, staffID, monthLabel string) (CompensationRecord, error)

	// ListByStaff retrieves all records for one staff member, ledgers included.
	ListByStaff(ctx context.Context, staffID string) ([]CompensationRecord, error)

	// RecordSettlement atomically finds-or-creates the (staffID, monthLabel)
	// record, overwrites its scalar fields and appends the transaction.
	// Concurrent calls for the same key must serialize on the store's
	// uniqueness constraint; the ledger never drops an append.
	RecordSettlement(ctx context.Context, settlement Settlement) (CompensationRecord, error)
}

// AdvanceRepository persists the advance-loan ledger.
type AdvanceRepository interface {
	Create(ctx context.Context, loan AdvanceLoan) (AdvanceLoan, error)
	GetByID(ctx context.Context, id string) (AdvanceLoan, error)
	ListByStaff(ctx context.Context, staffID string) ([]AdvanceLoan, error)

	// AddRepayment appends a repayment and bumps the running total in one
	// transaction, closing the loan once repaid >= total. Returns
	// ErrAdvanceAlreadyClosed when no balance remains.
	AddRepayment(ctx context.Context, advanceID string, repayment AdvanceRepayment) (AdvanceLoan, error)
}
