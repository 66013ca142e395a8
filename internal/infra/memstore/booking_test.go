//go:build unit

package memstore_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/domain/event"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/infra/memstore"
	"ticket-booking/internal/usecase/shared"
	"ticket-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*memstore.Store, *memstore.BookingRepository, *event.Event) {
		t.Helper()
		store := memstore.New()
		ev := builder.NewEventBuilder().MustBuildDomain()
		require.NoError(t, memstore.NewEventRepository(store).Create(ctx, ev))
		return store, memstore.NewBookingRepository(store), ev
	}

	t.Run("create and find", func(t *testing.T) {
		_, repo, ev := setup(t)
		b, err := builder.NewBookingBuilder().BuildDomain(ev)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, b))

		found, err := repo.FindByReference(ctx, b.Reference())
		require.NoError(t, err)
		assert.Equal(t, b.ID(), found.ID())

		list, err := repo.FindByEmail(ctx, "ANN@example.com")
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("duplicate reference", func(t *testing.T) {
		_, repo, ev := setup(t)
		first, err := builder.NewBookingBuilder().BuildDomain(ev)
		require.NoError(t, err)
		second, err := builder.NewBookingBuilder().BuildDomain(ev)
		require.NoError(t, err)

		require.NoError(t, repo.Create(ctx, first))
		err = repo.Create(ctx, second)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("missing booking", func(t *testing.T) {
		_, repo, _ := setup(t)
		_, err := repo.FindByReference(ctx, "BK-FFFFFFFF")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("stored booking is detached from caller", func(t *testing.T) {
		_, repo, ev := setup(t)
		b, err := builder.NewBookingBuilder().BuildDomain(ev)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, b))

		require.NoError(t, b.Cancel(time.Now()))
		found, err := repo.FindByReference(ctx, b.Reference())
		require.NoError(t, err)
		assert.True(t, found.IsConfirmed())
	})

	t.Run("cancel is conditional and reinstate undoes it", func(t *testing.T) {
		_, repo, ev := setup(t)
		b, err := builder.NewBookingBuilder().WithTickets(4).BuildDomain(ev)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, b))

		tickets, err := repo.ConfirmedTickets(ctx, ev.ID())
		require.NoError(t, err)
		assert.Equal(t, 4, tickets)

		require.NoError(t, repo.MarkCancelled(ctx, b.Reference(), time.Now()))
		err = repo.MarkCancelled(ctx, b.Reference(), time.Now())
		assert.True(t, infra.IsKind(err, infra.KindConflict))

		tickets, err = repo.ConfirmedTickets(ctx, ev.ID())
		require.NoError(t, err)
		assert.Equal(t, 0, tickets)

		require.NoError(t, repo.Reinstate(ctx, b.Reference(), time.Now()))
		found, err := repo.FindByReference(ctx, b.Reference())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, found.Status())
	})

	t.Run("only one concurrent cancel wins", func(t *testing.T) {
		_, repo, ev := setup(t)
		b, err := builder.NewBookingBuilder().BuildDomain(ev)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, b))

		var (
			wg   sync.WaitGroup
			wins atomic.Int64
		)
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if repo.MarkCancelled(ctx, b.Reference(), time.Now()) == nil {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int64(1), wins.Load())
	})
}

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()

	t.Run("staged inserts apply on commit", func(t *testing.T) {
		store := memstore.New()
		uow := memstore.NewUnitOfWork(store)
		a := builder.NewEventBuilder().MustBuildDomain()
		b := builder.NewEventBuilder().With(func(b *builder.EventBuilder) { b.Name = "Comedy Night Live" }).MustBuildDomain()

		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Events().Create(ctx, a); err != nil {
				return err
			}
			return tx.Events().Create(ctx, b)
		})
		require.NoError(t, err)

		all, err := memstore.NewEventRepository(store).FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("failed transaction applies nothing", func(t *testing.T) {
		store := memstore.New()
		uow := memstore.NewUnitOfWork(store)

		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Events().Create(ctx, builder.NewEventBuilder().MustBuildDomain()); err != nil {
				return err
			}
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		all, err := memstore.NewEventRepository(store).FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
