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

type VehicleRepository struct {
	db db.DBTX
}

func NewVehicleRepository(dbtx db.DBTX) *VehicleRepository {
	return &VehicleRepository{db: dbtx}
}

// LockByID is the serialization point for schedule mutations: holding the
// vehicle row lock guarantees no concurrent availability check-and-insert.
func (r *VehicleRepository) LockByID(ctx context.Context, ownerID, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	const query = `
		SELECT id, owner_id, name, plate_number, day_rate, hour_rate, status
		FROM vehicles
		WHERE owner_id = $1 AND id = $2
		FOR UPDATE`

	var (
		snap   shared.VehicleSnapshot
		status string
	)
	err := r.db.QueryRow(ctx, query, ownerID, id).Scan(
		&snap.ID, &snap.OwnerID, &snap.Name, &snap.PlateNumber,
		&snap.DayRate, &snap.HourRate, &status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, wrapPg("failed to lock vehicle", err)
	}
	snap.Status = vehicle.Status(status)
	return &snap, nil
}

func (r *VehicleRepository) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status vehicle.Status) error {
	const query = `
		UPDATE vehicles
		SET status = $3, updated_at = now()
		WHERE owner_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query, ownerID, id, status.String())
	if err != nil {
		return wrapPg("failed to update vehicle status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}
