package shared

import (
	"context"

	"fleetrent/internal/domain/rental"
	"fleetrent/internal/domain/request"
	"fleetrent/internal/domain/vehicle"

	"github.com/google/uuid"
)

// UnitOfWork runs every mutating operation of the core as one atomic database
// transaction. Create-style operations must lock the target vehicle row for
// the duration of the check-and-insert; without that lock two concurrent
// creates could both pass the availability check.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: read-only lookups outside a transaction
	CommandReads() CommandReads
}

type Tx interface {
	Rentals() RentalRepository
	Vehicles() VehicleRepository
	Requests() RequestRepository
	Reads() CommandReads
}

// CommandReads are the fetch-by-id lookups the core needs from the
// surrounding CRUD application to validate referenced entities.
type CommandReads interface {
	ClientByID(ctx context.Context, ownerID, id uuid.UUID) (*ClientSnapshot, error)
	// VehicleByID is unscoped: public booking-request submission derives the
	// tenant from the vehicle itself.
	VehicleByID(ctx context.Context, id uuid.UUID) (*VehicleSnapshot, error)
}

type RentalRepository interface {
	Create(ctx context.Context, r *rental.Rental) error
	Update(ctx context.Context, r *rental.Rental) error
	AppendExtension(ctx context.Context, rentalID uuid.UUID, ext rental.Extension) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	LockByID(ctx context.Context, ownerID, id uuid.UUID) (*rental.Rental, error)
	ActiveByVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) ([]rental.ScheduleEntry, error)
}

type VehicleRepository interface {
	// LockByID takes the row-level lock that serializes availability
	// check-and-insert per vehicle.
	LockByID(ctx context.Context, ownerID, id uuid.UUID) (*VehicleSnapshot, error)
	UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status vehicle.Status) error
}

type RequestRepository interface {
	Create(ctx context.Context, req *request.BookingRequest) error
	LockByID(ctx context.Context, ownerID, id uuid.UUID) (*request.BookingRequest, error)
	UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status request.Status) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// CashLedger records income outside the rental transaction. Fire-and-forget:
// a lost ledger entry is reconcilable, a lost rental is not, so failures are
// logged by the caller and never roll back the rental mutation.
type CashLedger interface {
	RecordIncome(ctx context.Context, entry LedgerEntry) error
}
