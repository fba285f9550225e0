package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for the attendance ledger.
// The store enforces one record per (staff_id, date); Upsert must resolve
// concurrent writes for the same key to a single last-writer-wins row.
type AttendanceRepository interface {
	// Upsert creates or replaces the record for (staffID, date) atomically
	// and returns the stored row.
	Upsert(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// ListByStaffAndRange returns records with date in [from, to] inclusive.
	// Callers must not rely on ordering.
	ListByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]AttendanceRecord, error)

	// List retrieves records matching the filter.
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceRecord, error)
}
