package components

import (
	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/pkg/clock"
	"ticket-booking/internal/usecase/commands"
	"ticket-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewUUIDReferenceGenerator,
		fx.As(new(booking.ReferenceGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewEventUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEventQueries,
		queries.NewBookingQueries,
		queries.NewAuditQueries,
	),
)
