package components

import (
	"context"
	"log/slog"

	"ticket-booking/internal/infra/publisher"
	"ticket-booking/internal/pkg/config"
	"ticket-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewBookingEventPublisher,
	),
)

func NewBookingEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.BookingEventPublisher, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("No Kafka brokers configured; booking lifecycle events go to the log")
		return publisher.NewLogPublisher(logger), nil
	}

	p, err := publisher.NewKafkaPublisher(cfg.Kafka, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	logger.Info("Publishing booking lifecycle events to Kafka",
		"brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.BookingTopic,
		"async", cfg.Kafka.Async, "batch_timeout", cfg.Kafka.BatchTimeout)
	return p, nil
}
