package attendance

import (
	"time"

	"github.com/drivedesk/payroll-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	StaffID   string `json:"staff_id"`
	Date      string `json:"date"` // "YYYY-MM-DD"; defaults to today when empty
	Status    string `json:"status"`
	InTime    string `json:"in_time,omitempty"`
	OutTime   string `json:"out_time,omitempty"`
	WorkHours string `json:"work_hours,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.Status, []string{StatusPresent, StatusAbsent, StatusLate}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'present', 'absent' or 'late'"})
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceFilter narrows listings. Zero values mean "no constraint".
type AttendanceFilter struct {
	StaffID string
	Date    *time.Time
	From    *time.Time
	To      *time.Time
}

type AttendanceResponse struct {
	ID          string `json:"id"`
	StaffID     string `json:"staff_id"`
	Date        string `json:"date"`
	InTime      string `json:"in_time,omitempty"`
	OutTime     string `json:"out_time,omitempty"`
	WorkHours   string `json:"work_hours,omitempty"`
	WorkMinutes int    `json:"work_minutes"`
	Status      string `json:"status"`
}

func ToResponse(a AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:          a.ID,
		StaffID:     a.StaffID,
		Date:        a.Date.Format("2006-01-02"),
		InTime:      a.InTime,
		OutTime:     a.OutTime,
		WorkHours:   a.WorkHours,
		WorkMinutes: a.WorkMinutes,
		Status:      a.Status,
	}
}
