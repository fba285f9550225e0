package attendance

import (
	"time"
)

// Stored statuses. "Half Day" is never stored: the payroll calculator derives
// it from worked minutes.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

// AttendanceRecord is the single status record per (staff, calendar day).
// Date is truncated to midnight UTC; InTime/OutTime are free-form display
// strings from the operator UI. WorkMinutes is parsed once from the WorkHours
// display string at the ledger boundary.
type AttendanceRecord struct {
	ID          string
	StaffID     string
	Date        time.Time
	InTime      string
	OutTime     string
	WorkHours   string
	WorkMinutes int
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
