package http

import (
	"encoding/json"
	"net/http"

	"github.com/drivedesk/payroll-backend-go/internal/domain/compensation"
	"github.com/drivedesk/payroll-backend-go/internal/handler/http/response"
	advanceService "github.com/drivedesk/payroll-backend-go/internal/service/advance"
	"github.com/go-chi/chi/v5"
)

type AdvanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Repay(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advanceService.AdvanceService
}

func NewAdvanceHandler(svc advanceService.AdvanceService) AdvanceHandler {
	return &advanceHandlerImpl{advanceService: svc}
}

func (h *advanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req compensation.CreateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.advanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance loan created", result)
}

func (h *advanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	staffID := r.URL.Query().Get("staff_id")
	if staffID == "" {
		response.BadRequest(w, "staff_id query parameter is required", nil)
		return
	}

	result, err := h.advanceService.ListByStaff(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *advanceHandlerImpl) Repay(w http.ResponseWriter, r *http.Request) {
	advanceID := chi.URLParam(r, "id")
	if advanceID == "" {
		response.BadRequest(w, "Advance ID is required", nil)
		return
	}

	var req compensation.AdvanceRepaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.advanceService.Repay(r.Context(), advanceID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Repayment recorded", result)
}
