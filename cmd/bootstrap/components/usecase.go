package components

import (
	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/usecase"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

// ClockModule is split out so tests can swap in a mock clock.
var ClockModule = fx.Module("clock",
	fx.Provide(clock.NewRealClock),
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		reservation.NewDailyRateCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSearchQueries,
		queries.NewReservationQueries,
		queries.NewCatalogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
