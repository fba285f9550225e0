package settlement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/drivedesk/payroll-backend-go/internal/domain/compensation"
	"github.com/drivedesk/payroll-backend-go/internal/pkg/gateway"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderCreator is the slice of the payment gateway client that phase 1 needs.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req gateway.OrderRequest) (gateway.OrderResponse, error)
	KeyID() string
}

// SignatureVerifier checks the gateway's payment callback signature.
type SignatureVerifier interface {
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
}

type SettlementService interface {
	// CreateOrder runs phase 1: creates a gateway order for the salary amount.
	// Nothing is persisted; a gateway failure leaves no trace.
	CreateOrder(ctx context.Context, req compensation.CreateOrderRequest) (compensation.OrderResponse, error)

	// VerifyPayment runs phase 2: verifies the callback signature and merges
	// the settlement into the compensation ledger.
	VerifyPayment(ctx context.Context, req compensation.VerifyPaymentRequest) (compensation.CompensationResponse, error)

	// RecordManualPayment settles a month paid outside the gateway.
	RecordManualPayment(ctx context.Context, req compensation.ManualPaymentRequest) (compensation.CompensationResponse, error)

	GetCompensation(ctx context.Context, staffID, monthLabel string) (compensation.CompensationResponse, error)
	ListCompensations(ctx context.Context, staffID string) ([]compensation.CompensationResponse, error)
}

type settlementServiceImpl struct {
	compensationRepo compensation.CompensationRepository
	orders           OrderCreator
	verifier         SignatureVerifier
}

func NewSettlementService(
	compensationRepo compensation.CompensationRepository,
	orders OrderCreator,
	verifier SignatureVerifier,
) SettlementService {
	return &settlementServiceImpl{
		compensationRepo: compensationRepo,
		orders:           orders,
		verifier:         verifier,
	}
}

// newTransactionID generates a locally unique salary transaction id.
func newTransactionID() string {
	return "SAL" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
}

func (s *settlementServiceImpl) CreateOrder(ctx context.Context, req compensation.CreateOrderRequest) (compensation.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.OrderResponse{}, err
	}

	transactionID := newTransactionID()
	notes := map[string]string{
		"staff_id":       req.StaffID,
		"transaction_id": transactionID,
		"payment_type":   "staff_salary",
	}
	if label, err := compensation.ResolveMonthLabel(req.Month, req.Year); err == nil {
		notes["month"] = label
	}
	if req.Year != 0 {
		notes["year"] = fmt.Sprintf("%d", req.Year)
	}
	if req.Description != "" {
		notes["description"] = req.Description
	}

	order, err := s.orders.CreateOrder(ctx, gateway.OrderRequest{
		Amount:  req.Amount,
		Receipt: fmt.Sprintf("salary_%s_%d", req.StaffID, time.Now().Unix()),
		Notes:   notes,
	})
	if err != nil {
		return compensation.OrderResponse{}, fmt.Errorf("%w: %v", compensation.ErrGatewayUnavailable, err)
	}

	return compensation.OrderResponse{
		OrderID:       order.OrderID,
		Amount:        order.Amount,
		Currency:      order.Currency,
		TransactionID: transactionID,
		KeyID:         s.orders.KeyID(),
	}, nil
}

func (s *settlementServiceImpl) VerifyPayment(ctx context.Context, req compensation.VerifyPaymentRequest) (compensation.CompensationResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.CompensationResponse{}, err
	}

	// Signature check comes first; on mismatch the store is never touched.
	if !s.verifier.VerifyPaymentSignature(req.GatewayOrderID, req.GatewayPaymentID, req.GatewaySignature) {
		return compensation.CompensationResponse{}, compensation.ErrInvalidSignature
	}

	monthLabel, err := compensation.ResolveMonthLabel(req.Month, req.Year)
	if err != nil {
		return compensation.CompensationResponse{}, err
	}

	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID = newTransactionID()
	}

	now := time.Now().UTC()
	settlement := compensation.Settlement{
		StaffID:    req.StaffID,
		MonthLabel: monthLabel,
		BaseSalary: req.Amount,
		Deductions: decimal.Zero,
		NetPay:     req.Amount,
		Status:     compensation.StatusPaid,
		PaidDate:   now,
		Transaction: compensation.PaymentTransaction{
			TransactionID:    transactionID,
			GatewayOrderID:   req.GatewayOrderID,
			GatewayPaymentID: req.GatewayPaymentID,
			GatewaySignature: req.GatewaySignature,
			Amount:           req.Amount,
			Status:           compensation.TransactionStatusSuccess,
			PaymentMethod:    compensation.PaymentMethodGateway,
			PaymentDate:      now,
		},
	}
	if req.BaseSalary != nil {
		settlement.BaseSalary = *req.BaseSalary
	}
	if req.Deductions != nil {
		settlement.Deductions = *req.Deductions
	}

	record, err := s.compensationRepo.RecordSettlement(ctx, settlement)
	if err != nil {
		return compensation.CompensationResponse{}, err
	}

	return compensation.ToResponse(record), nil
}

func (s *settlementServiceImpl) RecordManualPayment(ctx context.Context, req compensation.ManualPaymentRequest) (compensation.CompensationResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.CompensationResponse{}, err
	}

	monthLabel, err := compensation.ResolveMonthLabel(req.Month, req.Year)
	if err != nil {
		return compensation.CompensationResponse{}, err
	}

	now := time.Now().UTC()
	settlement := compensation.Settlement{
		StaffID:    req.StaffID,
		MonthLabel: monthLabel,
		BaseSalary: req.Amount,
		Deductions: decimal.Zero,
		NetPay:     req.Amount,
		Status:     compensation.StatusPaid,
		PaidDate:   now,
		Transaction: compensation.PaymentTransaction{
			TransactionID: newTransactionID(),
			Amount:        req.Amount,
			Status:        compensation.TransactionStatusSuccess,
			PaymentMethod: req.PaymentMethod,
			PaymentDate:   now,
		},
	}
	if req.BaseSalary != nil {
		settlement.BaseSalary = *req.BaseSalary
	}
	if req.Deductions != nil {
		settlement.Deductions = *req.Deductions
	}

	record, err := s.compensationRepo.RecordSettlement(ctx, settlement)
	if err != nil {
		return compensation.CompensationResponse{}, err
	}

	return compensation.ToResponse(record), nil
}

func (s *settlementServiceImpl) GetCompensation(ctx context.Context, staffID, monthLabel string) (compensation.CompensationResponse, error) {
	record, err := s.compensationRepo.GetByStaffAndMonth(ctx, staffID, monthLabel)
	if err != nil {
		return compensation.CompensationResponse{}, err
	}
	return compensation.ToResponse(record), nil
}

func (s *settlementServiceImpl) ListCompensations(ctx context.Context, staffID string) ([]compensation.CompensationResponse, error) {
	records, err := s.compensationRepo.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	responses := make([]compensation.CompensationResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, compensation.ToResponse(rec))
	}
	return responses, nil
}
