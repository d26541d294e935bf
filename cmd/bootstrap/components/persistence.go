package components

import (
	"splitpay/internal/infra/readstore"
	"splitpay/internal/infra/repository"
	"splitpay/internal/infra/uow"
	"splitpay/internal/usecase/queries"
	"splitpay/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		fx.Annotate(
			readstore.NewClaimReadStore,
			fx.As(new(queries.ClaimReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Claim write-side (the sweep needs it outside a Tx)
		fx.Annotate(
			repository.NewClaimRepository,
			fx.As(new(shared.ClaimRepository)),
		),
	),
)
