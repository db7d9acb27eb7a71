package vehicle

// Status is a derived cache of the vehicle's schedule, not the source of truth.
// The authoritative schedule is the set of rentals referencing the vehicle;
// rental.ResolveVehicleStatus recomputes this value from it. MAINTENANCE is the
// one manually-set state and is never cleared by reconciliation.
type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusRented      Status = "RENTED"
	StatusMaintenance Status = "MAINTENANCE"
	StatusReserved    Status = "RESERVED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusRented, StatusMaintenance, StatusReserved:
		return true
	default:
		return false
	}
}
