package repository

import (
	"context"
	"time"

	"fleetrent/internal/domain/rental"
	"fleetrent/internal/domain/request"
	"fleetrent/internal/infra"
	"fleetrent/internal/infra/db"
	"fleetrent/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(dbtx db.DBTX) *RequestRepository {
	return &RequestRepository{db: dbtx}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.BookingRequest) error {
	const query = `
		INSERT INTO booking_requests (
			id, owner_id, vehicle_id, client_id,
			contact_name, contact_phone, contact_email,
			start_at, end_at, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		req.ID(), req.OwnerID(), req.VehicleID(),
		pgconv.UUIDPtrToPgtype(req.ClientID()),
		req.ContactName(), req.ContactPhone(),
		pgconv.StringPtrToPgtype(req.ContactEmail()),
		req.Period().Start(), req.Period().End(),
		req.Status().String(), req.CreatedAt(),
	)
	if err != nil {
		return wrapPg("failed to create booking request", err)
	}
	return nil
}

func (r *RequestRepository) LockByID(ctx context.Context, ownerID, id uuid.UUID) (*request.BookingRequest, error) {
	const query = `
		SELECT id, owner_id, vehicle_id, client_id,
			contact_name, contact_phone, contact_email,
			start_at, end_at, status, created_at
		FROM booking_requests
		WHERE owner_id = $1 AND id = $2
		FOR UPDATE`

	var (
		reqID, reqOwnerID, vehicleID uuid.UUID
		clientID                     pgtype.UUID
		contactName, contactPhone    string
		contactEmail                 pgtype.Text
		startAt, endAt               time.Time
		status                       string
		createdAt                    time.Time
	)
	err := r.db.QueryRow(ctx, query, ownerID, id).Scan(
		&reqID, &reqOwnerID, &vehicleID, &clientID,
		&contactName, &contactPhone, &contactEmail,
		&startAt, &endAt, &status, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking request not found", err, infra.KindNotFound)
		}
		return nil, wrapPg("failed to lock booking request", err)
	}

	return request.Reconstruct(
		reqID, reqOwnerID, vehicleID,
		pgconv.UUIDPtrFromPgtype(clientID),
		contactName, contactPhone,
		pgconv.StringPtrFromPgtype(contactEmail),
		rental.ReconstructPeriod(startAt, endAt),
		request.Status(status),
		createdAt,
	), nil
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status request.Status) error {
	const query = `
		UPDATE booking_requests
		SET status = $3
		WHERE owner_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query, ownerID, id, status.String())
	if err != nil {
		return wrapPg("failed to update booking request status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const query = `DELETE FROM booking_requests WHERE owner_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query, ownerID, id)
	if err != nil {
		return wrapPg("failed to delete booking request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking request not found", nil, infra.KindNotFound)
	}
	return nil
}
