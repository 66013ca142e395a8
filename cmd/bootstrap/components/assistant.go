package components

import (
	"context"
	"log/slog"
	"net/http"

	"ticket-booking/internal/infra/cache"
	"ticket-booking/internal/oracle"
	"ticket-booking/internal/pkg/config"
	"ticket-booking/internal/usecase/assistant"
	"ticket-booking/internal/usecase/commands"
	"ticket-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var AssistantModule = fx.Module("assistant",
	fx.Provide(
		NewOracleClient,
		NewIntentCache,
		NewAssistant,
	),
)

func NewOracleClient(cfg config.Config) oracle.Client {
	return oracle.NewOpenAI(cfg.Oracle, &http.Client{Timeout: cfg.Oracle.Timeout})
}

func NewIntentCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) assistant.IntentCache {
	if cfg.Redis.Addr == "" {
		return assistant.NoopIntentCache{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// an unreachable Redis degrades to cache misses
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warn("Redis is unreachable; intent cache will miss", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return cache.NewRedisIntentCache(rdb, cfg.Assistant.IntentCacheTTL)
}

func NewAssistant(
	client oracle.Client,
	catalog queries.EventQueries,
	bookings commands.BookingCommands,
	intents assistant.IntentCache,
	cfg config.Config,
) assistant.Assistant {
	return assistant.NewRouter(client, catalog, bookings, intents, cfg.Assistant)
}
