package http

import (
	"encoding/json"
	"net/http"

	attendanceDomain "github.com/drivedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/drivedesk/payroll-backend-go/internal/handler/http/response"
	"github.com/drivedesk/payroll-backend-go/internal/pkg/validator"
	attendanceService "github.com/drivedesk/payroll-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendanceService.AttendanceService
}

func NewAttendanceHandler(svc attendanceService.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: svc}
}

func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendanceDomain.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked", result)
}

func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := attendanceDomain.AttendanceFilter{
		StaffID: query.Get("staff_id"),
	}

	if raw := query.Get("date"); raw != "" {
		date, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		filter.Date = &date
	}
	if raw := query.Get("from"); raw != "" {
		from, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "from must be in YYYY-MM-DD format", nil)
			return
		}
		filter.From = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "to must be in YYYY-MM-DD format", nil)
			return
		}
		filter.To = &to
	}

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
