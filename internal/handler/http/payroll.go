package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/drivedesk/payroll-backend-go/internal/handler/http/response"
	payrollService "github.com/drivedesk/payroll-backend-go/internal/service/payroll"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Compute(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payrollService.PayrollService
}

func NewPayrollHandler(svc payrollService.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: svc}
}

func (h *payrollHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffId")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	var month time.Month
	var year int

	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			response.BadRequest(w, "month must be between 1 and 12", nil)
			return
		}
		month = time.Month(m)
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = y
	}

	result, err := h.payrollService.ComputeForStaff(r.Context(), staffID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
