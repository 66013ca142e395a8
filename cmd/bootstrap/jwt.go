package bootstrap

import (
	"ticket-booking/internal/handler/middleware"
	"ticket-booking/internal/pkg/config"
	"ticket-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Admin.JWTSecret)
}
