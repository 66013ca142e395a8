//go:build unit

package memstore_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"ticket-booking/internal/infra"
	"ticket-booking/internal/infra/memstore"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedEvent(t *testing.T, store *memstore.Store, seats int) uuid.UUID {
	t.Helper()
	ev := builder.NewEventBuilder().WithSeats(seats).MustBuildDomain()
	require.NoError(t, memstore.NewEventRepository(store).Create(context.Background(), ev))
	return ev.ID()
}

func TestLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("reserve and release", func(t *testing.T) {
		store := memstore.New()
		ledger := memstore.NewLedger(store, discardLogger())
		id := seedEvent(t, store, 100)

		remaining, err := ledger.Reserve(ctx, id, 3)
		require.NoError(t, err)
		assert.Equal(t, 97, remaining)

		remaining, err = ledger.Release(ctx, id, 3)
		require.NoError(t, err)
		assert.Equal(t, 100, remaining)
	})

	t.Run("insufficient inventory reports availability", func(t *testing.T) {
		store := memstore.New()
		ledger := memstore.NewLedger(store, discardLogger())
		id := seedEvent(t, store, 2)

		_, err := ledger.Reserve(ctx, id, 5)
		require.ErrorIs(t, err, errs.ErrInsufficientInventory)

		var insufficient *errs.InsufficientInventoryError
		require.True(t, errs.As(err, &insufficient))
		assert.Equal(t, 5, insufficient.Requested)
		assert.Equal(t, 2, insufficient.Available)

		ev, err := memstore.NewEventRepository(store).FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 2, ev.AvailableSeats())
	})

	t.Run("release above capacity is refused", func(t *testing.T) {
		store := memstore.New()
		ledger := memstore.NewLedger(store, discardLogger())
		id := seedEvent(t, store, 10)

		_, err := ledger.Reserve(ctx, id, 2)
		require.NoError(t, err)

		remaining, err := ledger.Release(ctx, id, 3)
		require.ErrorIs(t, err, errs.ErrInventoryInvariant)
		assert.Equal(t, 8, remaining)
	})

	t.Run("unknown event", func(t *testing.T) {
		ledger := memstore.NewLedger(memstore.New(), discardLogger())
		_, err := ledger.Reserve(ctx, uuid.New(), 1)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("non-positive count", func(t *testing.T) {
		store := memstore.New()
		ledger := memstore.NewLedger(store, discardLogger())
		id := seedEvent(t, store, 10)

		_, err := ledger.Reserve(ctx, id, 0)
		require.ErrorIs(t, err, errs.ErrValidation)
		_, err = ledger.Release(ctx, id, -1)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("concurrent reserves never oversell", func(t *testing.T) {
		store := memstore.New()
		ledger := memstore.NewLedger(store, discardLogger())
		id := seedEvent(t, store, 50)

		const workers = 40
		var (
			wg        sync.WaitGroup
			succeeded atomic.Int64
			refused   atomic.Int64
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := ledger.Reserve(ctx, id, 3)
				switch {
				case err == nil:
					succeeded.Add(1)
				case errs.Is(err, errs.ErrInsufficientInventory):
					refused.Add(1)
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		// 50 seats fit 16 reservations of 3
		assert.Equal(t, int64(16), succeeded.Load())
		assert.Equal(t, int64(workers-16), refused.Load())

		ev, err := memstore.NewEventRepository(store).FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 2, ev.AvailableSeats())
	})

	t.Run("events do not share counters", func(t *testing.T) {
		store := memstore.New()
		ledger := memstore.NewLedger(store, discardLogger())
		a := seedEvent(t, store, 5)
		b := seedEvent(t, store, 5)

		var wg sync.WaitGroup
		for _, id := range []uuid.UUID{a, b} {
			for range 5 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := ledger.Reserve(ctx, id, 1)
					assert.NoError(t, err)
				}()
			}
		}
		wg.Wait()

		for _, id := range []uuid.UUID{a, b} {
			ev, err := memstore.NewEventRepository(store).FindByID(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, 0, ev.AvailableSeats())
		}
	})
}
