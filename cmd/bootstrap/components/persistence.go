package components

import (
	"marketplace-core/internal/infra/readstore"
	"marketplace-core/internal/infra/repository"
	"marketplace-core/internal/infra/uow"
	"marketplace-core/internal/usecase/queries"
	"marketplace-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewQuotationReadStore,
			fx.As(new(queries.QuotationReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		// Contact lookups for notifications run outside any transaction.
		repository.NewUserRepository,
	),
)

func NewDBTX(pool *pgxpool.Pool) shared.DBTX {
	return pool
}
