package repository

import (
	"context"

	"fleetrent/internal/pkg/pgconv"
	"fleetrent/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LedgerRepository writes cash transactions outside the rental transaction.
// Callers treat failures as non-fatal, so it talks straight to the pool.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

func (r *LedgerRepository) RecordIncome(ctx context.Context, entry shared.LedgerEntry) error {
	const query = `
		INSERT INTO cash_transactions (
			id, owner_id, kind, amount, category, description,
			client_id, vehicle_id, created_at
		) VALUES ($1, $2, 'INCOME', $3, $4, $5, $6, $7, now())`

	_, err := r.pool.Exec(ctx, query,
		uuid.New(), entry.OwnerID, entry.Amount, entry.Category, entry.Description,
		pgconv.UUIDPtrToPgtype(entry.ClientID), entry.VehicleID,
	)
	if err != nil {
		return wrapPg("failed to record income", err)
	}
	return nil
}
