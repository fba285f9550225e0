package compensation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum for a compensation record. A record settles straight to paid;
// pending and processing exist for statements staged ahead of payment.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusPaid       Status = "paid"
)

// Transaction statuses
const (
	TransactionStatusPending = "pending"
	TransactionStatusSuccess = "success"
	TransactionStatusFailed  = "failed"
)

// Payment methods
const (
	PaymentMethodGateway      = "gateway"
	PaymentMethodManual       = "manual"
	PaymentMethodBankTransfer = "bank_transfer"
)

// CompensationRecord is the settled payroll ledger entry, unique per
// (staff_id, month_label). Scalar fields are last-write-wins across
// settlements; the transaction list is append-only and never loses history.
type CompensationRecord struct {
	ID            string
	StaffID       string
	MonthLabel    string
	BaseSalary    decimal.Decimal
	Deductions    decimal.Decimal
	NetPay        decimal.Decimal
	Status        Status
	PaidDate      *time.Time
	AdvanceAmount decimal.Decimal
	Transactions  []PaymentTransaction
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PaymentTransaction is one entry in a compensation record's payment ledger.
// Once appended it is never mutated or removed.
type PaymentTransaction struct {
	ID               string
	CompensationID   string
	TransactionID    string
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
	Amount           decimal.Decimal
	Status           string
	PaymentMethod    string
	PaymentDate      time.Time
	CreatedAt        time.Time
}

// Advance loan statuses
const (
	AdvanceStatusOpen   = "open"
	AdvanceStatusClosed = "closed"
)

// AdvanceLoan tracks a running repayment balance against a salary advance.
// Repayments are append-only; the loan closes when RepaidAmount reaches
// TotalAmount. The balance is deliberately not wired into the payroll
// deduction calculation.
type AdvanceLoan struct {
	ID           string
	StaffID      string
	TotalAmount  decimal.Decimal
	RepaidAmount decimal.Decimal
	Reason       *string
	Status       string
	Repayments   []AdvanceRepayment
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AdvanceRepayment struct {
	ID        string
	AdvanceID string
	Amount    decimal.Decimal
	Note      *string
	PaidAt    time.Time
	CreatedAt time.Time
}
