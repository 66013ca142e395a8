//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"ticket-booking/internal/domain/event"
	"ticket-booking/internal/infra/memstore"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/commands"
	"ticket-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventCommands() (commands.EventCommands, *memstore.EventRepository, *memstore.Ledger) {
	store := memstore.New()
	repo := memstore.NewEventRepository(store)
	return commands.NewEventUseCase(repo, memstore.NewUnitOfWork(store)), repo, memstore.NewLedger(store, slog.Default())
}

func TestEventCommands_CreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("new event starts fully available", func(t *testing.T) {
		uc, repo, _ := newEventCommands()
		ev, err := uc.CreateEvent(ctx, builder.NewEventBuilder().WithSeats(120).Params())
		require.NoError(t, err)

		stored, err := repo.FindByID(ctx, ev.ID())
		require.NoError(t, err)
		assert.Equal(t, 120, stored.TotalSeats())
		assert.Equal(t, 120, stored.AvailableSeats())
	})

	t.Run("invalid params are a validation error", func(t *testing.T) {
		uc, _, _ := newEventCommands()
		_, err := uc.CreateEvent(ctx, builder.NewEventBuilder().WithSeats(0).Params())
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.ErrorIs(t, err, event.ErrInvalidCapacity)
	})
}

func TestEventCommands_UpdateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("details change while seat counts stay", func(t *testing.T) {
		uc, repo, ledger := newEventCommands()
		ev, err := uc.CreateEvent(ctx, builder.NewEventBuilder().WithSeats(50).Params())
		require.NoError(t, err)
		_, err = ledger.Reserve(ctx, ev.ID(), 5)
		require.NoError(t, err)

		p := builder.NewEventBuilder().With(func(b *builder.EventBuilder) {
			b.Name = "Rock Concert: Encore"
			b.Venue = "Hollywood Bowl"
			b.TotalSeats = 999
		}).Params()
		updated, err := uc.UpdateEvent(ctx, ev.ID(), p)
		require.NoError(t, err)
		assert.Equal(t, "Rock Concert: Encore", updated.Name())

		stored, err := repo.FindByID(ctx, ev.ID())
		require.NoError(t, err)
		assert.Equal(t, "Hollywood Bowl", stored.Venue())
		assert.Equal(t, 50, stored.TotalSeats())
		assert.Equal(t, 45, stored.AvailableSeats())
	})

	t.Run("unknown event", func(t *testing.T) {
		uc, _, _ := newEventCommands()
		_, err := uc.UpdateEvent(ctx, uuid.New(), builder.NewEventBuilder().Params())
		assert.ErrorIs(t, err, errs.ErrEventNotFound)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		uc, _, _ := newEventCommands()
		ev, err := uc.CreateEvent(ctx, builder.NewEventBuilder().Params())
		require.NoError(t, err)

		p := builder.NewEventBuilder().With(func(b *builder.EventBuilder) { b.Name = "  " }).Params()
		_, err = uc.UpdateEvent(ctx, ev.ID(), p)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestEventCommands_ImportEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("all events land", func(t *testing.T) {
		uc, repo, _ := newEventCommands()
		params := []event.NewEventParams{
			builder.NewEventBuilder().Params(),
			builder.NewEventBuilder().With(func(b *builder.EventBuilder) { b.Name = "Jazz Night" }).Params(),
		}
		evs, err := uc.ImportEvents(ctx, params)
		require.NoError(t, err)
		assert.Len(t, evs, 2)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("one bad entry imports nothing", func(t *testing.T) {
		uc, repo, _ := newEventCommands()
		params := []event.NewEventParams{
			builder.NewEventBuilder().Params(),
			builder.NewEventBuilder().WithPriceCents(-1).Params(),
		}
		_, err := uc.ImportEvents(ctx, params)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "event #2")

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
