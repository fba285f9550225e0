package advance

import (
	"context"
	"time"

	"github.com/drivedesk/payroll-backend-go/internal/domain/compensation"
	"github.com/drivedesk/payroll-backend-go/internal/domain/staff"
)

type AdvanceService interface {
	Create(ctx context.Context, req compensation.CreateAdvanceRequest) (compensation.AdvanceResponse, error)
	ListByStaff(ctx context.Context, staffID string) ([]compensation.AdvanceResponse, error)

	// Repay appends a repayment; the loan closes once the running total
	// reaches the advance amount.
	Repay(ctx context.Context, advanceID string, req compensation.AdvanceRepaymentRequest) (compensation.AdvanceResponse, error)
}

type advanceServiceImpl struct {
	advanceRepo compensation.AdvanceRepository
	staffRepo   staff.StaffRepository
}

func NewAdvanceService(advanceRepo compensation.AdvanceRepository, staffRepo staff.StaffRepository) AdvanceService {
	return &advanceServiceImpl{
		advanceRepo: advanceRepo,
		staffRepo:   staffRepo,
	}
}

func (s *advanceServiceImpl) Create(ctx context.Context, req compensation.CreateAdvanceRequest) (compensation.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.AdvanceResponse{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return compensation.AdvanceResponse{}, err
	}

	loan, err := s.advanceRepo.Create(ctx, compensation.AdvanceLoan{
		StaffID:     req.StaffID,
		TotalAmount: req.Amount,
		Reason:      req.Reason,
	})
	if err != nil {
		return compensation.AdvanceResponse{}, err
	}

	return compensation.ToAdvanceResponse(loan), nil
}

func (s *advanceServiceImpl) ListByStaff(ctx context.Context, staffID string) ([]compensation.AdvanceResponse, error) {
	loans, err := s.advanceRepo.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	responses := make([]compensation.AdvanceResponse, 0, len(loans))
	for _, loan := range loans {
		responses = append(responses, compensation.ToAdvanceResponse(loan))
	}
	return responses, nil
}

func (s *advanceServiceImpl) Repay(ctx context.Context, advanceID string, req compensation.AdvanceRepaymentRequest) (compensation.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.AdvanceResponse{}, err
	}

	loan, err := s.advanceRepo.AddRepayment(ctx, advanceID, compensation.AdvanceRepayment{
		Amount: req.Amount,
		Note:   req.Note,
		PaidAt: time.Now().UTC(),
	})
	if err != nil {
		return compensation.AdvanceResponse{}, err
	}

	return compensation.ToAdvanceResponse(loan), nil
}
