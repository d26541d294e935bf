package components

import (
	"splitpay/internal/domain/claim"
	"splitpay/internal/pkg/clock"
	"splitpay/internal/pkg/config"
	"splitpay/internal/pkg/sessiontoken"
	"splitpay/internal/usecase/commands"
	"splitpay/internal/usecase/queries"
	"splitpay/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) claim.FeeCalculator {
		return claim.NewFixedPercentFeeCalculator(cfg.Claim.FeePercent)
	},
	func(clk clock.Clock, calc claim.FeeCalculator) *claim.Services {
		return &claim.Services{
			Clock:         clk,
			FeeCalculator: calc,
		}
	},
	fx.Annotate(
		func(s *sessiontoken.Service) *sessiontoken.Service { return s },
		fx.As(new(commands.SessionTokens)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			uow shared.UnitOfWork,
			claimRepo shared.ClaimRepository,
			sessions commands.SessionTokens,
			services *claim.Services,
			clk clock.Clock,
			cfg config.Config,
		) commands.ClaimCommands {
			return commands.NewClaimCommands(uow, claimRepo, sessions, services, clk, cfg.Claim.TTL, cfg.Reaper.BatchSize)
		},
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
	),
)
