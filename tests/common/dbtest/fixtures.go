//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultOwnerID is the tenant every fixture belongs to unless a test creates
// its own owner. Seeded by SeedReferenceData.
var DefaultOwnerID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func CreateTestOwner(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	ownerID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO owners (id, name) VALUES ($1, $2)", ownerID, name)
	require.NoError(t, err)

	return ownerID
}

func CreateTestVehicle(t *testing.T, db DBLike, ownerID uuid.UUID, name, plate string, dayRate, hourRate int64) uuid.UUID {
	t.Helper()

	vehicleID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO vehicles (id, owner_id, name, plate_number, day_rate, hour_rate) VALUES ($1, $2, $3, $4, $5, $6)",
		vehicleID, ownerID, name, plate, dayRate, hourRate)
	require.NoError(t, err)

	return vehicleID
}

func CreateTestClient(t *testing.T, db DBLike, ownerID uuid.UUID, fullName, phone string) uuid.UUID {
	t.Helper()

	clientID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO clients (id, owner_id, full_name, phone) VALUES ($1, $2, $3, $4)",
		clientID, ownerID, fullName, phone)
	require.NoError(t, err)

	return clientID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO owners (id, name) VALUES ($1, 'Default Owner')
		ON CONFLICT (id) DO NOTHING;
	`, DefaultOwnerID)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
