package shared

import (
	"fleetrent/internal/domain/vehicle"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type VehicleSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	PlateNumber string
	DayRate     int64
	HourRate    int64
	Status      vehicle.Status
}

type ClientSnapshot struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	FullName string
	Phone    string
}

type LedgerEntry struct {
	OwnerID     uuid.UUID
	Amount      int64
	Category    string
	Description string
	ClientID    *uuid.UUID
	VehicleID   uuid.UUID
}
