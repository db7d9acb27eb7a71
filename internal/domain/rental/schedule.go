package rental

import (
	"time"

	"fleetrent/internal/domain/vehicle"

	"github.com/google/uuid"
)

// ScheduleEntry is the slice of a rental the availability check needs.
// Reservations occupy their slot just like issued rentals.
type ScheduleEntry struct {
	RentalID      uuid.UUID
	Period        Period
	Status        Status
	IsReservation bool
}

// FindConflict returns the first non-terminal entry whose period intersects
// the candidate. Half-open semantics: back-to-back periods do not conflict.
// Deterministic: no clock involved, only the caller-supplied intervals.
func FindConflict(candidate Period, entries []ScheduleEntry) (uuid.UUID, bool) {
	for _, e := range entries {
		if e.Status.IsTerminal() {
			continue
		}
		if candidate.Overlaps(e.Period) {
			return e.RentalID, true
		}
	}
	return uuid.Nil, false
}

// ResolveVehicleStatus recomputes the derived vehicle status from the live
// schedule. Idempotent and safe to re-run at any time, so a crash between a
// rental mutation and the status flip is repairable by calling it again.
//
// MAINTENANCE is set manually and wins over the schedule. An active
// non-reservation rental means the car is physically out regardless of its
// dates. Otherwise a pending reservation holds the car as RESERVED until it
// expires.
func ResolveVehicleStatus(now time.Time, current vehicle.Status, entries []ScheduleEntry) vehicle.Status {
	if current == vehicle.StatusMaintenance {
		return vehicle.StatusMaintenance
	}

	reserved := false
	for _, e := range entries {
		if e.Status != StatusActive {
			continue
		}
		if !e.IsReservation {
			return vehicle.StatusRented
		}
		if e.Period.End().After(now) {
			reserved = true
		}
	}

	if reserved {
		return vehicle.StatusReserved
	}
	return vehicle.StatusAvailable
}
