package components

import (
	"context"
	"log/slog"

	"ticket-booking/internal/infra/db"
	"ticket-booking/internal/infra/memstore"
	"ticket-booking/internal/infra/repository"
	"ticket-booking/internal/infra/uow"
	"ticket-booking/internal/pkg/config"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/shared"
	"ticket-booking/migrations"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStorage,
	),
)

// Storage hands every persistence port to the graph from one backend.
type Storage struct {
	fx.Out

	Ledger   shared.InventoryLedger
	Events   shared.EventRepository
	Bookings shared.BookingRepository
	UoW      shared.UnitOfWork
}

func NewStorage(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Storage, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Warn("Using in-memory storage; data is lost on restart")
		store := memstore.New()
		return Storage{
			Ledger:   memstore.NewLedger(store, logger),
			Events:   memstore.NewEventRepository(store),
			Bookings: memstore.NewBookingRepository(store),
			UoW:      memstore.NewUnitOfWork(store),
		}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return Storage{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	if cfg.DB.AutoMigrate {
		if err := migrations.Apply(ctx, pool); err != nil {
			cleanup()
			return Storage{}, errs.Wrap(err, "apply migrations")
		}
	}

	return Storage{
		Ledger:   repository.NewInventoryLedger(pool, logger),
		Events:   repository.NewEventRepository(pool, logger),
		Bookings: repository.NewBookingRepository(pool, logger),
		UoW:      uow.NewPostgresUoW(pool, logger),
	}, nil
}
