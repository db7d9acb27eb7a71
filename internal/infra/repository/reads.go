package repository

import (
	"context"

	"fleetrent/internal/domain/vehicle"
	"fleetrent/internal/infra"
	"fleetrent/internal/infra/db"
	"fleetrent/internal/pkg/pgconv"
	"fleetrent/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads provides the referenced-entity lookups command handlers need.
// It runs on whatever DBTX it is given, so it works both inside a transaction
// and directly against the pool.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) ClientByID(ctx context.Context, ownerID, id uuid.UUID) (*shared.ClientSnapshot, error) {
	const query = `
		SELECT id, owner_id, full_name, phone
		FROM clients
		WHERE owner_id = $1 AND id = $2`

	var snap shared.ClientSnapshot
	err := r.db.QueryRow(ctx, query, ownerID, id).Scan(
		&snap.ID, &snap.OwnerID, &snap.FullName, &snap.Phone,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, wrapPg("failed to find client", err)
	}
	return &snap, nil
}

// VehicleByID is deliberately not owner-scoped: public booking-request
// submission resolves the tenant from the vehicle row.
func (r *CommandReads) VehicleByID(ctx context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	const query = `
		SELECT id, owner_id, name, plate_number, day_rate, hour_rate, status
		FROM vehicles
		WHERE id = $1`

	var (
		snap   shared.VehicleSnapshot
		status string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.OwnerID, &snap.Name, &snap.PlateNumber,
		&snap.DayRate, &snap.HourRate, &status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, wrapPg("failed to find vehicle", err)
	}
	snap.Status = vehicle.Status(status)
	return &snap, nil
}
