package components

import (
	"stayhub/internal/infra/readstore"
	"stayhub/internal/infra/repository"
	"stayhub/internal/infra/uow"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewReadstoreDB,
	NewRepositoryDB,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		readstore.NewPropertyReadStore,
		readstore.NewBookingReadStore,
		readstore.NewReviewReadStore,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		repository.NewUserRepository,
	),
)

func NewReadstoreDB(pool *pgxpool.Pool) readstore.DB {
	return pool
}

func NewRepositoryDB(pool *pgxpool.Pool) repository.DB {
	return pool
}
