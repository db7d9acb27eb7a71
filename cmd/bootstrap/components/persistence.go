package components

import (
	"fleetrent/internal/infra/db"
	"fleetrent/internal/infra/readstore"
	"fleetrent/internal/infra/repository"
	"fleetrent/internal/infra/uow"
	"fleetrent/internal/usecase/queries"
	"fleetrent/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewLedgerRepository,
			fx.As(new(shared.CashLedger)),
		),
		fx.Annotate(
			readstore.NewRentalReadStore,
			fx.As(new(queries.RentalReadStore)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
