package response

import (
	"errors"
	"net/http"

	"github.com/drivedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/drivedesk/payroll-backend-go/internal/domain/compensation"
	"github.com/drivedesk/payroll-backend-go/internal/domain/payroll"
	"github.com/drivedesk/payroll-backend-go/internal/domain/staff"
	"github.com/drivedesk/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Compensation domain errors
	case errors.Is(err, compensation.ErrInvalidSignature):
		Unauthorized(w, "Payment signature verification failed")
	case errors.Is(err, compensation.ErrInvalidMonth):
		BadRequest(w, "Invalid month", nil)
	case errors.Is(err, compensation.ErrCompensationNotFound):
		NotFound(w, "Compensation record not found")
	case errors.Is(err, compensation.ErrGatewayUnavailable):
		BadGateway(w, "Payment gateway request failed")
	case errors.Is(err, compensation.ErrAdvanceNotFound):
		NotFound(w, "Advance loan not found")
	case errors.Is(err, compensation.ErrAdvanceAlreadyClosed):
		Conflict(w, "Advance loan is already closed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
