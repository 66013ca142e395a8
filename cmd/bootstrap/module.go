package bootstrap

import (
	"ticket-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	components.PersistenceModule,
	components.MessagingModule,
	components.UseCaseModule,
	components.AssistantModule,
	components.HandlerModule,
	components.SeedModule,
)
