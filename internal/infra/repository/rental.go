package repository

import (
	"context"
	"time"

	"fleetrent/internal/domain/rental"
	"fleetrent/internal/infra"
	"fleetrent/internal/infra/db"
	"fleetrent/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RentalRepository struct {
	db db.DBTX
}

func NewRentalRepository(dbtx db.DBTX) *RentalRepository {
	return &RentalRepository{db: dbtx}
}

func (r *RentalRepository) Create(ctx context.Context, rent *rental.Rental) error {
	const query = `
		INSERT INTO rentals (
			id, owner_id, vehicle_id, client_id,
			start_at, end_at, status, payment_status, booking_type,
			is_reservation, total_amount, prepayment, contract_number,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.Exec(ctx, query,
		rent.ID(), rent.OwnerID(), rent.VehicleID(), rent.ClientID(),
		rent.Period().Start(), rent.Period().End(),
		rent.Status().String(), rent.PaymentStatus().String(), rent.BookingType().String(),
		rent.IsReservation(), rent.TotalAmount(), rent.Prepayment(), rent.ContractNumber(),
		rent.CreatedAt(), rent.UpdatedAt(),
	)
	if err != nil {
		return wrapPg("failed to create rental", err)
	}
	return nil
}

func (r *RentalRepository) Update(ctx context.Context, rent *rental.Rental) error {
	const query = `
		UPDATE rentals
		SET end_at = $3,
			status = $4,
			payment_status = $5,
			is_reservation = $6,
			total_amount = $7,
			updated_at = $8
		WHERE owner_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query,
		rent.OwnerID(), rent.ID(),
		rent.Period().End(),
		rent.Status().String(), rent.PaymentStatus().String(),
		rent.IsReservation(), rent.TotalAmount(), rent.UpdatedAt(),
	)
	if err != nil {
		return wrapPg("failed to update rental", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RentalRepository) AppendExtension(ctx context.Context, rentalID uuid.UUID, ext rental.Extension) error {
	const query = `
		INSERT INTO rental_extensions (rental_id, end_at, amount, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, rentalID, ext.EndAt, ext.Amount, ext.CreatedAt)
	if err != nil {
		return wrapPg("failed to append rental extension", err)
	}
	return nil
}

func (r *RentalRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const query = `DELETE FROM rentals WHERE owner_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query, ownerID, id)
	if err != nil {
		return wrapPg("failed to delete rental", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RentalRepository) LockByID(ctx context.Context, ownerID, id uuid.UUID) (*rental.Rental, error) {
	const query = `
		SELECT id, owner_id, vehicle_id, client_id,
			start_at, end_at, status, payment_status, booking_type,
			is_reservation, total_amount, prepayment, contract_number,
			created_at, updated_at
		FROM rentals
		WHERE owner_id = $1 AND id = $2
		FOR UPDATE`

	row := rentalRow{}
	err := r.db.QueryRow(ctx, query, ownerID, id).Scan(
		&row.id, &row.ownerID, &row.vehicleID, &row.clientID,
		&row.startAt, &row.endAt, &row.status, &row.paymentStatus, &row.bookingType,
		&row.isReservation, &row.totalAmount, &row.prepayment, &row.contractNumber,
		&row.createdAt, &row.updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, wrapPg("failed to lock rental", err)
	}

	extensions, err := r.loadExtensions(ctx, id)
	if err != nil {
		return nil, err
	}

	return row.toDomain(extensions), nil
}

func (r *RentalRepository) ActiveByVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) ([]rental.ScheduleEntry, error) {
	const query = `
		SELECT id, start_at, end_at, is_reservation
		FROM rentals
		WHERE owner_id = $1 AND vehicle_id = $2 AND status = 'ACTIVE'
		ORDER BY start_at`

	rows, err := r.db.Query(ctx, query, ownerID, vehicleID)
	if err != nil {
		return nil, wrapPg("failed to load vehicle schedule", err)
	}
	defer rows.Close()

	var entries []rental.ScheduleEntry
	for rows.Next() {
		var (
			entry          rental.ScheduleEntry
			startAt, endAt time.Time
		)
		if err := rows.Scan(&entry.RentalID, &startAt, &endAt, &entry.IsReservation); err != nil {
			return nil, wrapPg("failed to scan schedule entry", err)
		}
		entry.Period = rental.ReconstructPeriod(startAt, endAt)
		entry.Status = rental.StatusActive
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPg("failed to iterate schedule entries", err)
	}
	return entries, nil
}

type rentalRow struct {
	id             uuid.UUID
	ownerID        uuid.UUID
	vehicleID      uuid.UUID
	clientID       uuid.UUID
	startAt        time.Time
	endAt          time.Time
	status         string
	paymentStatus  string
	bookingType    string
	isReservation  bool
	totalAmount    int64
	prepayment     int64
	contractNumber string
	createdAt      time.Time
	updatedAt      time.Time
}

func (row rentalRow) toDomain(extensions []rental.Extension) *rental.Rental {
	return rental.ReconstructRental(
		row.id, row.ownerID, row.vehicleID, row.clientID,
		rental.ReconstructPeriod(row.startAt, row.endAt),
		rental.Status(row.status),
		rental.PaymentStatus(row.paymentStatus),
		rental.BookingType(row.bookingType),
		row.isReservation,
		row.totalAmount, row.prepayment,
		row.contractNumber,
		extensions,
		row.createdAt, row.updatedAt,
	)
}

func (r *RentalRepository) loadExtensions(ctx context.Context, rentalID uuid.UUID) ([]rental.Extension, error) {
	const query = `
		SELECT end_at, amount, created_at
		FROM rental_extensions
		WHERE rental_id = $1
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, rentalID)
	if err != nil {
		return nil, wrapPg("failed to load rental extensions", err)
	}
	defer rows.Close()

	var extensions []rental.Extension
	for rows.Next() {
		var ext rental.Extension
		if err := rows.Scan(&ext.EndAt, &ext.Amount, &ext.CreatedAt); err != nil {
			return nil, wrapPg("failed to scan rental extension", err)
		}
		extensions = append(extensions, ext)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPg("failed to iterate rental extensions", err)
	}
	return extensions, nil
}
