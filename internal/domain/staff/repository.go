package staff

import "context"

// StaffRepository is the read-only view of the CRM's staff roster that the
// compensation subsystem consumes.
type StaffRepository interface {
	GetByID(ctx context.Context, id string) (StaffMember, error)
}
