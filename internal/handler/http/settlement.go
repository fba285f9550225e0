package http

import (
	"encoding/json"
	"net/http"

	"github.com/drivedesk/payroll-backend-go/internal/domain/compensation"
	"github.com/drivedesk/payroll-backend-go/internal/handler/http/response"
	settlementService "github.com/drivedesk/payroll-backend-go/internal/service/settlement"
	"github.com/go-chi/chi/v5"
)

type SettlementHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	VerifyPayment(w http.ResponseWriter, r *http.Request)
	RecordManualPayment(w http.ResponseWriter, r *http.Request)
	GetCompensation(w http.ResponseWriter, r *http.Request)
	ListCompensations(w http.ResponseWriter, r *http.Request)
}

type settlementHandlerImpl struct {
	settlementService settlementService.SettlementService
}

func NewSettlementHandler(svc settlementService.SettlementService) SettlementHandler {
	return &settlementHandlerImpl{settlementService: svc}
}

func (h *settlementHandlerImpl) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req compensation.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settlementService.CreateOrder(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary payment order created", result)
}

func (h *settlementHandlerImpl) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req compensation.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settlementService.VerifyPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary payment verified", result)
}

func (h *settlementHandlerImpl) RecordManualPayment(w http.ResponseWriter, r *http.Request) {
	var req compensation.ManualPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settlementService.RecordManualPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Manual salary payment recorded", result)
}

func (h *settlementHandlerImpl) GetCompensation(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffId")
	monthLabel := chi.URLParam(r, "monthLabel")
	if staffID == "" || monthLabel == "" {
		response.BadRequest(w, "Staff ID and month label are required", nil)
		return
	}

	result, err := h.settlementService.GetCompensation(r.Context(), staffID, monthLabel)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settlementHandlerImpl) ListCompensations(w http.ResponseWriter, r *http.Request) {
	staffID := r.URL.Query().Get("staff_id")
	if staffID == "" {
		response.BadRequest(w, "staff_id query parameter is required", nil)
		return
	}

	result, err := h.settlementService.ListCompensations(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
