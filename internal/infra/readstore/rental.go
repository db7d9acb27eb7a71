package readstore

import (
	"context"

	"fleetrent/internal/infra"
	"fleetrent/internal/infra/db"
	"fleetrent/internal/pkg/pgconv"
	"fleetrent/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RentalReadStore struct {
	db db.DBTX
}

func NewRentalReadStore(dbtx db.DBTX) *RentalReadStore {
	return &RentalReadStore{db: dbtx}
}

func (s *RentalReadStore) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*queries.RentalView, error) {
	const query = `
		SELECT r.id, r.vehicle_id, v.name, v.plate_number,
			r.client_id, c.full_name,
			r.start_at, r.end_at, r.status, r.payment_status, r.booking_type,
			r.is_reservation, r.total_amount, r.prepayment, r.contract_number,
			r.created_at, r.updated_at
		FROM rentals r
		JOIN vehicles v ON v.id = r.vehicle_id
		JOIN clients c ON c.id = r.client_id
		WHERE r.owner_id = $1 AND r.id = $2`

	var view queries.RentalView
	err := s.db.QueryRow(ctx, query, ownerID, id).Scan(
		&view.ID, &view.VehicleID, &view.VehicleName, &view.PlateNumber,
		&view.ClientID, &view.ClientName,
		&view.StartAt, &view.EndAt, &view.Status, &view.PaymentStatus, &view.BookingType,
		&view.IsReservation, &view.TotalAmount, &view.Prepayment, &view.ContractNumber,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental", err)
	}

	extensions, err := s.loadExtensions(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Extensions = extensions

	return &view, nil
}

func (s *RentalReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.RentalListItem, error) {
	const query = `
		SELECT r.id, r.vehicle_id, v.name, c.full_name,
			r.start_at, r.end_at, r.status, r.payment_status,
			r.is_reservation, r.total_amount, r.contract_number
		FROM rentals r
		JOIN vehicles v ON v.id = r.vehicle_id
		JOIN clients c ON c.id = r.client_id
		WHERE r.owner_id = $1
		ORDER BY r.created_at DESC`

	rows, err := s.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.RentalListItem, error) {
		var item queries.RentalListItem
		err := row.Scan(
			&item.ID, &item.VehicleID, &item.VehicleName, &item.ClientName,
			&item.StartAt, &item.EndAt, &item.Status, &item.PaymentStatus,
			&item.IsReservation, &item.TotalAmount, &item.ContractNumber,
		)
		return &item, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan rentals", err)
	}
	return items, nil
}

func (s *RentalReadStore) ScheduleByVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) ([]*queries.ScheduleItem, error) {
	const vehicleQuery = `SELECT 1 FROM vehicles WHERE owner_id = $1 AND id = $2`

	var one int
	if err := s.db.QueryRow(ctx, vehicleQuery, ownerID, vehicleID).Scan(&one); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle", err)
	}

	const query = `
		SELECT id, contract_number, start_at, end_at, status, is_reservation
		FROM rentals
		WHERE owner_id = $1 AND vehicle_id = $2
		ORDER BY start_at`

	rows, err := s.db.Query(ctx, query, ownerID, vehicleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load vehicle schedule", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ScheduleItem, error) {
		var item queries.ScheduleItem
		err := row.Scan(
			&item.RentalID, &item.ContractNumber,
			&item.StartAt, &item.EndAt, &item.Status, &item.IsReservation,
		)
		return &item, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan vehicle schedule", err)
	}
	return items, nil
}

func (s *RentalReadStore) loadExtensions(ctx context.Context, rentalID uuid.UUID) ([]queries.ExtensionView, error) {
	const query = `
		SELECT end_at, amount, created_at
		FROM rental_extensions
		WHERE rental_id = $1
		ORDER BY created_at, id`

	rows, err := s.db.Query(ctx, query, rentalID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load rental extensions", err)
	}
	defer rows.Close()

	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.ExtensionView, error) {
		var view queries.ExtensionView
		err := row.Scan(&view.EndAt, &view.Amount, &view.CreatedAt)
		return view, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan rental extensions", err)
	}
	return views, nil
}
