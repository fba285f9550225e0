package compensation

import (
	"time"

	"github.com/drivedesk/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SETTLEMENT DTOs ==========

// CreateOrderRequest starts phase 1 of a salary settlement. Month may be a
// label string or a zero-based month number, matching what the checkout
// client sends back on verification.
type CreateOrderRequest struct {
	StaffID     string          `json:"staff_id"`
	Amount      decimal.Decimal `json:"amount"`
	Month       any             `json:"month"`
	Year        int             `json:"year"`
	Description string          `json:"description,omitempty"`
}

func (r *CreateOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be a positive amount"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OrderResponse struct {
	OrderID       string          `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	TransactionID string          `json:"transaction_id"`
	KeyID         string          `json:"key_id"`
}

// VerifyPaymentRequest completes phase 2. TransactionID is the id handed out
// in phase 1; when absent a fresh one is generated.
type VerifyPaymentRequest struct {
	GatewayOrderID   string           `json:"gateway_order_id"`
	GatewayPaymentID string           `json:"gateway_payment_id"`
	GatewaySignature string           `json:"gateway_signature"`
	StaffID          string           `json:"staff_id"`
	Amount           decimal.Decimal  `json:"amount"`
	Month            any              `json:"month"`
	Year             int              `json:"year"`
	BaseSalary       *decimal.Decimal `json:"base_salary,omitempty"`
	Deductions       *decimal.Decimal `json:"deductions,omitempty"`
	TransactionID    string           `json:"transaction_id,omitempty"`
}

func (r *VerifyPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.GatewayOrderID) {
		errs = append(errs, validator.ValidationError{Field: "gateway_order_id", Message: "is required"})
	}
	if validator.IsEmpty(r.GatewayPaymentID) {
		errs = append(errs, validator.ValidationError{Field: "gateway_payment_id", Message: "is required"})
	}
	if validator.IsEmpty(r.GatewaySignature) {
		errs = append(errs, validator.ValidationError{Field: "gateway_signature", Message: "is required"})
	}
	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be a positive amount"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ManualPaymentRequest records an offline settlement (cash or bank transfer)
// through the same ledger path as a gateway payment.
type ManualPaymentRequest struct {
	StaffID       string           `json:"staff_id"`
	Amount        decimal.Decimal  `json:"amount"`
	Month         any              `json:"month"`
	Year          int              `json:"year"`
	PaymentMethod string           `json:"payment_method"`
	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`
	Deductions    *decimal.Decimal `json:"deductions,omitempty"`
}

func (r *ManualPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be a positive amount"})
	}
	if !validator.IsInSlice(r.PaymentMethod, []string{PaymentMethodManual, PaymentMethodBankTransfer}) {
		errs = append(errs, validator.ValidationError{Field: "payment_method", Message: "must be 'manual' or 'bank_transfer'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransactionResponse struct {
	TransactionID    string          `json:"transaction_id"`
	GatewayOrderID   string          `json:"gateway_order_id,omitempty"`
	GatewayPaymentID string          `json:"gateway_payment_id,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentDate      time.Time       `json:"payment_date"`
}

type CompensationResponse struct {
	ID            string                `json:"id"`
	StaffID       string                `json:"staff_id"`
	MonthLabel    string                `json:"month_label"`
	BaseSalary    decimal.Decimal       `json:"base_salary"`
	Deductions    decimal.Decimal       `json:"deductions"`
	NetPay        decimal.Decimal       `json:"net_pay"`
	Status        string                `json:"status"`
	PaidDate      *time.Time            `json:"paid_date,omitempty"`
	AdvanceAmount decimal.Decimal       `json:"advance_amount"`
	Transactions  []TransactionResponse `json:"transactions"`
}

func ToResponse(c CompensationRecord) CompensationResponse {
	resp := CompensationResponse{
		ID:            c.ID,
		StaffID:       c.StaffID,
		MonthLabel:    c.MonthLabel,
		BaseSalary:    c.BaseSalary,
		Deductions:    c.Deductions,
		NetPay:        c.NetPay,
		Status:        string(c.Status),
		PaidDate:      c.PaidDate,
		AdvanceAmount: c.AdvanceAmount,
		Transactions:  make([]TransactionResponse, 0, len(c.Transactions)),
	}
	for _, t := range c.Transactions {
		resp.Transactions = append(resp.Transactions, TransactionResponse{
			TransactionID:    t.TransactionID,
			GatewayOrderID:   t.GatewayOrderID,
			GatewayPaymentID: t.GatewayPaymentID,
			Amount:           t.Amount,
			Status:           t.Status,
			PaymentMethod:    t.PaymentMethod,
			PaymentDate:      t.PaymentDate,
		})
	}
	return resp
}

// ========== ADVANCE LOAN DTOs ==========

type CreateAdvanceRequest struct {
	StaffID string          `json:"staff_id"`
	Amount  decimal.Decimal `json:"amount"`
	Reason  *string         `json:"reason,omitempty"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be a positive amount"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceRepaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Note   *string         `json:"note,omitempty"`
}

func (r *AdvanceRepaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be a positive amount"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceRepaymentResponse struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Note   *string         `json:"note,omitempty"`
	PaidAt time.Time       `json:"paid_at"`
}

type AdvanceResponse struct {
	ID           string                     `json:"id"`
	StaffID      string                     `json:"staff_id"`
	TotalAmount  decimal.Decimal            `json:"total_amount"`
	RepaidAmount decimal.Decimal            `json:"repaid_amount"`
	Outstanding  decimal.Decimal            `json:"outstanding"`
	Reason       *string                    `json:"reason,omitempty"`
	Status       string                     `json:"status"`
	Repayments   []AdvanceRepaymentResponse `json:"repayments"`
}

func ToAdvanceResponse(a AdvanceLoan) AdvanceResponse {
	resp := AdvanceResponse{
		ID:           a.ID,
		StaffID:      a.StaffID,
		TotalAmount:  a.TotalAmount,
		RepaidAmount: a.RepaidAmount,
		Outstanding:  a.TotalAmount.Sub(a.RepaidAmount),
		Reason:       a.Reason,
		Status:       a.Status,
		Repayments:   make([]AdvanceRepaymentResponse, 0, len(a.Repayments)),
	}
	for _, rep := range a.Repayments {
		resp.Repayments = append(resp.Repayments, AdvanceRepaymentResponse{
			ID:     rep.ID,
			Amount: rep.Amount,
			Note:   rep.Note,
			PaidAt: rep.PaidAt,
		})
	}
	return resp
}
