package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/drivedesk/payroll-backend-go/internal/config"
	appHTTP "github.com/drivedesk/payroll-backend-go/internal/handler/http"
	"github.com/drivedesk/payroll-backend-go/internal/pkg/database"
	"github.com/drivedesk/payroll-backend-go/internal/pkg/gateway"
	"github.com/drivedesk/payroll-backend-go/internal/repository/postgresql"
	advanceService "github.com/drivedesk/payroll-backend-go/internal/service/advance"
	attendanceService "github.com/drivedesk/payroll-backend-go/internal/service/attendance"
	payrollService "github.com/drivedesk/payroll-backend-go/internal/service/payroll"
	settlementService "github.com/drivedesk/payroll-backend-go/internal/service/settlement"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	staffRepo := postgresql.NewStaffRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	compensationRepo := postgresql.NewCompensationRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)

	gatewayClient := gateway.NewClient(cfg.Gateway)
	signatureVerifier := gateway.NewSignatureVerifier(cfg.Gateway.KeySecret)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	payrollSvc := payrollService.NewPayrollService(staffRepo, attendanceRepo)
	settlementSvc := settlementService.NewSettlementService(compensationRepo, gatewayClient, signatureVerifier)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, staffRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	settlementHandler := appHTTP.NewSettlementHandler(settlementSvc)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		attendanceHandler,
		payrollHandler,
		settlementHandler,
		advanceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
