package components

import (
	"ticket-booking/internal/handler"
	"ticket-booking/internal/handler/api"
	"ticket-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewEventHandler,
		api.NewAssistantHandler,
		middleware.NewAdminAuth,
		func(b *api.BookingHandler, e *api.EventHandler, a *api.AssistantHandler) handler.Handlers {
			return handler.Handlers{Bookings: b, Events: e, Assistant: a}
		},
	),
	fx.Invoke(handler.NewRouter),
)
