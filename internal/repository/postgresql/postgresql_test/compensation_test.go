package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/drivedesk/payroll-backend-go/internal/domain/compensation"
	"github.com/drivedesk/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settlementFor(staffID, monthLabel, transactionID string, amount decimal.Decimal) compensation.Settlement {
	now := time.Now().UTC()
	return compensation.Settlement{
		StaffID:    staffID,
		MonthLabel: monthLabel,
		BaseSalary: amount,
		Deductions: decimal.Zero,
		NetPay:     amount,
		Status:     compensation.StatusPaid,
		PaidDate:   now,
		Transaction: compensation.PaymentTransaction{
			TransactionID:    transactionID,
			GatewayOrderID:   "order_" + transactionID,
			GatewayPaymentID: "pay_" + transactionID,
			Amount:           amount,
			Status:           compensation.TransactionStatusSuccess,
			PaymentMethod:    compensation.PaymentMethodGateway,
			PaymentDate:      now,
		},
	}
}

func TestCompensationRepository_RecordSettlementCreatesRecord(t *testing.T) {
	db := requireTestDB(t)
	truncateAllTables(t, db)

	staffID := insertStaffMember(t, db, "Ravi Kumar", decimal.NewFromInt(30000))
	repo := postgresql.NewCompensationRepository(db)
	ctx := context.Background()

	record, err := repo.RecordSettlement(ctx, settlementFor(staffID, "September 2025", "SAL001", decimal.NewFromInt(26056)))
	require.NoError(t, err)

	assert.Equal(t, staffID, record.StaffID)
	assert.Equal(t, "September 2025", record.MonthLabel)
	assert.Equal(t, compensation.StatusPaid, record.Status)
	assert.True(t, record.NetPay.Equal(decimal.NewFromInt(26056)))
	require.NotNil(t, record.PaidDate)
	require.Len(t, record.Transactions, 1)
	assert.Equal(t, "SAL001", record.Transactions[0].TransactionID)
}

func TestCompensationRepository_RepeatSettlementAppendsToLedger(t *testing.T) {
	db := requireTestDB(t)
	truncateAllTables(t, db)

	staffID := insertStaffMember(t, db, "Ravi Kumar", decimal.NewFromInt(30000))
	repo := postgresql.NewCompensationRepository(db)
	ctx := context.Background()

	first, err := repo.RecordSettlement(ctx, settlementFor(staffID, "September 2025", "SAL001", decimal.NewFromInt(20000)))
	require.NoError(t, err)

	second, err := repo.RecordSettlement(ctx, settlementFor(staffID, "September 2025", "SAL002", decimal.NewFromInt(26056)))
	require.NoError(t, err)

	// Same record, not a duplicate.
	assert.Equal(t, first.ID, second.ID)

	// Scalars are last-write-wins, the ledger keeps both entries.
	assert.True(t, second.NetPay.Equal(decimal.NewFromInt(26056)))
	require.Len(t, second.Transactions, 2)
	assert.Equal(t, "SAL001", second.Transactions[0].TransactionID)
	assert.Equal(t, "SAL002", second.Transactions[1].TransactionID)

	records, err := repo.ListByStaff(ctx, staffID)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestCompensationRepository_GetByStaffAndMonthNotFound(t *testing.T) {
	db := requireTestDB(t)
	truncateAllTables(t, db)

	repo := postgresql.NewCompensationRepository(db)

	staffID := insertStaffMember(t, db, "Ravi Kumar", decimal.NewFromInt(30000))
	_, err := repo.GetByStaffAndMonth(context.Background(), staffID, "September 2025")
	assert.ErrorIs(t, err, compensation.ErrCompensationNotFound)
}

func TestAdvanceRepository_RepaymentClosesLoan(t *testing.T) {
	db := requireTestDB(t)
	truncateAllTables(t, db)

	staffID := insertStaffMember(t, db, "Ravi Kumar", decimal.NewFromInt(30000))
	repo := postgresql.NewAdvanceRepository(db)
	ctx := context.Background()

	loan, err := repo.Create(ctx, compensation.AdvanceLoan{
		StaffID:     staffID,
		TotalAmount: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, compensation.AdvanceStatusOpen, loan.Status)

	partial, err := repo.AddRepayment(ctx, loan.ID, compensation.AdvanceRepayment{
		Amount: decimal.NewFromInt(2000),
		PaidAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, compensation.AdvanceStatusOpen, partial.Status)
	assert.True(t, partial.RepaidAmount.Equal(decimal.NewFromInt(2000)))

	closed, err := repo.AddRepayment(ctx, loan.ID, compensation.AdvanceRepayment{
		Amount: decimal.NewFromInt(3000),
		PaidAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, compensation.AdvanceStatusClosed, closed.Status)
	require.Len(t, closed.Repayments, 2)

	_, err = repo.AddRepayment(ctx, loan.ID, compensation.AdvanceRepayment{
		Amount: decimal.NewFromInt(1),
		PaidAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, compensation.ErrAdvanceAlreadyClosed)
}
