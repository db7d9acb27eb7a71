package readstore

import (
	"context"

	"fleetrent/internal/infra"
	"fleetrent/internal/infra/db"
	"fleetrent/internal/pkg/pgconv"
	"fleetrent/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

const requestViewColumns = `
	br.id, br.vehicle_id, v.name, br.client_id,
	br.contact_name, br.contact_phone, br.contact_email,
	br.start_at, br.end_at, br.status, br.created_at`

func (s *RequestReadStore) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*queries.RequestView, error) {
	query := `
		SELECT ` + requestViewColumns + `
		FROM booking_requests br
		JOIN vehicles v ON v.id = br.vehicle_id
		WHERE br.owner_id = $1 AND br.id = $2`

	view, err := scanRequestView(s.db.QueryRow(ctx, query, ownerID, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking request", err)
	}
	return view, nil
}

func (s *RequestReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.RequestView, error) {
	query := `
		SELECT ` + requestViewColumns + `
		FROM booking_requests br
		JOIN vehicles v ON v.id = br.vehicle_id
		WHERE br.owner_id = $1
		ORDER BY br.created_at DESC`

	rows, err := s.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking requests", err)
	}
	defer rows.Close()

	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.RequestView, error) {
		return scanRequestView(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan booking requests", err)
	}
	return views, nil
}

func scanRequestView(row pgx.Row) (*queries.RequestView, error) {
	var (
		view         queries.RequestView
		clientID     pgtype.UUID
		contactEmail pgtype.Text
	)
	err := row.Scan(
		&view.ID, &view.VehicleID, &view.VehicleName, &clientID,
		&view.ContactName, &view.ContactPhone, &contactEmail,
		&view.StartAt, &view.EndAt, &view.Status, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.ClientID = pgconv.UUIDPtrFromPgtype(clientID)
	view.ContactEmail = pgconv.StringPtrFromPgtype(contactEmail)
	return &view, nil
}
