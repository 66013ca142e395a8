//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/domain/event"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/infra/memstore"
	"ticket-booking/internal/pkg/clock"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/commands"
	"ticket-booking/internal/usecase/shared"
	"ticket-booking/tests/common/builder"
	sharedmock "ticket-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// sequenceRefs hands out scripted references, then falls back to random ones.
type sequenceRefs struct {
	mu   sync.Mutex
	refs []booking.Reference
	gen  booking.ReferenceGenerator
}

func (s *sequenceRefs) Next() booking.Reference {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.refs) == 0 {
		return s.gen.Next()
	}
	ref := s.refs[0]
	s.refs = s.refs[1:]
	return ref
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.BookingLifecycleEvent
}

func (p *recordingPublisher) Publish(_ context.Context, evt shared.BookingLifecycleEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) types() []shared.LifecycleType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]shared.LifecycleType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx       context.Context
	store     *memstore.Store
	events    *memstore.EventRepository
	bookings  *memstore.BookingRepository
	ledger    *memstore.Ledger
	refs      *sequenceRefs
	publisher *recordingPublisher
	clock     *clock.MockClock
	uc        commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.events = memstore.NewEventRepository(s.store)
	s.bookings = memstore.NewBookingRepository(s.store)
	s.ledger = memstore.NewLedger(s.store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.refs = &sequenceRefs{gen: booking.NewUUIDReferenceGenerator()}
	s.publisher = &recordingPublisher{}
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.uc = commands.NewBookingUseCase(s.ledger, s.events, s.bookings, s.refs, s.publisher, s.clock)
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) seedEvent(seats int, priceCents int64) *event.Event {
	ev := builder.NewEventBuilder().WithSeats(seats).WithPriceCents(priceCents).MustBuildDomain()
	s.Require().NoError(s.events.Create(s.ctx, ev))
	return ev
}

func (s *BookingCommandsTestSuite) available(id uuid.UUID) int {
	ev, err := s.events.FindByID(s.ctx, id)
	s.Require().NoError(err)
	return ev.AvailableSeats()
}

func (s *BookingCommandsTestSuite) assertConserved(id uuid.UUID) {
	ev, err := s.events.FindByID(s.ctx, id)
	s.Require().NoError(err)
	confirmed, err := s.bookings.ConfirmedTickets(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(ev.TotalSeats(), ev.AvailableSeats()+confirmed, "available + confirmed must equal total")
}

func input(eventID uuid.UUID, tickets int) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		EventID:         eventID,
		CustomerName:    "Ann",
		CustomerEmail:   "ann@example.com",
		NumberOfTickets: tickets,
	}
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("prices the booking and takes the seats", func() {
		ev := s.seedEvent(100, 5000)

		got, err := s.uc.CreateBooking(s.ctx, input(ev.ID(), 3))
		s.Require().NoError(err)

		s.Equal(int64(15000), got.Booking.TotalAmount().Cents())
		s.Equal(booking.StatusConfirmed, got.Booking.Status())
		s.Regexp(`^BK-[0-9A-F]{8}$`, got.Booking.Reference().String())
		s.Equal(97, got.Event.AvailableSeats())
		s.Equal(97, s.available(ev.ID()))
		s.Equal(s.clock.Now(), got.Booking.CreatedAt())
		s.Contains(s.publisher.types(), shared.BookingConfirmed)
		s.assertConserved(ev.ID())
	})

	s.Run("insufficient inventory leaves seats untouched", func() {
		ev := s.seedEvent(2, 5000)

		_, err := s.uc.CreateBooking(s.ctx, input(ev.ID(), 5))
		s.Require().ErrorIs(err, errs.ErrInsufficientInventory)

		var insufficient *errs.InsufficientInventoryError
		s.Require().True(errs.As(err, &insufficient))
		s.Equal(2, insufficient.Available)
		s.Equal(2, s.available(ev.ID()))
	})

	s.Run("validation", func() {
		ev := s.seedEvent(10, 5000)
		cases := []struct {
			name string
			in   commands.CreateBookingInput
		}{
			{name: "zero tickets", in: input(ev.ID(), 0)},
			{name: "eleven tickets", in: input(ev.ID(), 11)},
			{name: "blank name", in: commands.CreateBookingInput{EventID: ev.ID(), CustomerName: " ", CustomerEmail: "a@b.co", NumberOfTickets: 1}},
			{name: "blank email", in: commands.CreateBookingInput{EventID: ev.ID(), CustomerName: "Ann", NumberOfTickets: 1}},
			{name: "bad email", in: commands.CreateBookingInput{EventID: ev.ID(), CustomerName: "Ann", CustomerEmail: "ann", NumberOfTickets: 1}},
		}
		for _, c := range cases {
			_, err := s.uc.CreateBooking(s.ctx, c.in)
			s.ErrorIs(err, errs.ErrValidation, c.name)
		}
		s.Equal(10, s.available(ev.ID()))
	})

	s.Run("unknown event", func() {
		_, err := s.uc.CreateBooking(s.ctx, input(uuid.New(), 1))
		s.Require().ErrorIs(err, errs.ErrEventNotFound)
		s.ErrorIs(err, errs.ErrNotFound)
	})

	s.Run("reference collision is retried", func() {
		ev := s.seedEvent(20, 1000)
		s.refs.refs = []booking.Reference{"BK-AAAAAAAA"}
		_, err := s.uc.CreateBooking(s.ctx, input(ev.ID(), 1))
		s.Require().NoError(err)

		s.refs.refs = []booking.Reference{"BK-AAAAAAAA", "BK-BBBBBBBB"}
		got, err := s.uc.CreateBooking(s.ctx, input(ev.ID(), 2))
		s.Require().NoError(err)
		s.Equal(booking.Reference("BK-BBBBBBBB"), got.Booking.Reference())
		s.Equal(17, s.available(ev.ID()))
		s.assertConserved(ev.ID())
	})

	s.Run("exhausted reference retries release the seats", func() {
		ev := s.seedEvent(20, 1000)
		s.refs.refs = []booking.Reference{"BK-CCCCCCCC"}
		_, err := s.uc.CreateBooking(s.ctx, input(ev.ID(), 1))
		s.Require().NoError(err)

		s.refs.refs = []booking.Reference{"BK-CCCCCCCC", "BK-CCCCCCCC", "BK-CCCCCCCC"}
		_, err = s.uc.CreateBooking(s.ctx, input(ev.ID(), 4))
		s.Require().ErrorIs(err, errs.ErrPersistenceFailure)
		s.ErrorIs(err, errs.ErrDuplicateReference)
		s.Equal(19, s.available(ev.ID()))
		s.assertConserved(ev.ID())
	})
}

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	s.Run("round trip restores availability", func() {
		ev := s.seedEvent(100, 5000)
		created, err := s.uc.CreateBooking(s.ctx, input(ev.ID(), 3))
		s.Require().NoError(err)
		s.Equal(97, s.available(ev.ID()))

		s.clock.Add(time.Hour)
		cancelled, err := s.uc.CancelBooking(s.ctx, created.Booking.Reference())
		s.Require().NoError(err)
		s.Equal(booking.StatusCancelled, cancelled.Booking.Status())
		s.Equal(100, cancelled.Event.AvailableSeats())
		s.Equal(100, s.available(ev.ID()))
		s.Contains(s.publisher.types(), shared.BookingCancelled)
		s.assertConserved(ev.ID())
	})

	s.Run("second cancel fails and keeps seats", func() {
		ev := s.seedEvent(100, 5000)
		created, err := s.uc.CreateBooking(s.ctx, input(ev.ID(), 3))
		s.Require().NoError(err)
		_, err = s.uc.CancelBooking(s.ctx, created.Booking.Reference())
		s.Require().NoError(err)

		_, err = s.uc.CancelBooking(s.ctx, created.Booking.Reference())
		s.Require().ErrorIs(err, errs.ErrDoubleCancellation)
		s.Equal(100, s.available(ev.ID()))
	})

	s.Run("unknown reference", func() {
		_, err := s.uc.CancelBooking(s.ctx, "BK-00000000")
		s.Require().ErrorIs(err, errs.ErrBookingNotFound)
		s.NotErrorIs(err, errs.ErrEventNotFound)
	})

	s.Run("concurrent cancels credit seats once", func() {
		ev := s.seedEvent(10, 5000)
		created, err := s.uc.CreateBooking(s.ctx, input(ev.ID(), 4))
		s.Require().NoError(err)

		var (
			wg      sync.WaitGroup
			ok      atomic.Int64
			doubles atomic.Int64
		)
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.uc.CancelBooking(s.ctx, created.Booking.Reference())
				switch {
				case err == nil:
					ok.Add(1)
				case errs.Is(err, errs.ErrDoubleCancellation):
					doubles.Add(1)
				}
			}()
		}
		wg.Wait()

		s.Equal(int64(1), ok.Load())
		s.Equal(int64(7), doubles.Load())
		s.Equal(10, s.available(ev.ID()))
	})
}

func (s *BookingCommandsTestSuite) TestConcurrentBookingsConserveInventory() {
	ev := s.seedEvent(25, 1000)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int64
	)
	for range 30 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.uc.CreateBooking(s.ctx, input(ev.ID(), 2)); err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int64(12), succeeded.Load())
	s.Equal(1, s.available(ev.ID()))
	s.assertConserved(ev.ID())
}

// Failure injection on the write path.
func TestBookingCommandsCompensation(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ev := builder.NewEventBuilder().WithSeats(100).WithPriceCents(5000).MustBuildDomain()

	type deps struct {
		ledger    *sharedmock.MockInventoryLedger
		events    *sharedmock.MockEventRepository
		bookings  *sharedmock.MockBookingRepository
		publisher *sharedmock.MockBookingEventPublisher
	}
	setup := func(t *testing.T) (deps, commands.BookingCommands) {
		ctrl := gomock.NewController(t)
		d := deps{
			ledger:    sharedmock.NewMockInventoryLedger(ctrl),
			events:    sharedmock.NewMockEventRepository(ctrl),
			bookings:  sharedmock.NewMockBookingRepository(ctrl),
			publisher: sharedmock.NewMockBookingEventPublisher(ctrl),
		}
		uc := commands.NewBookingUseCase(d.ledger, d.events, d.bookings,
			booking.NewUUIDReferenceGenerator(), d.publisher, clock.NewMockClock(now))
		return d, uc
	}

	t.Run("persistence failure releases the reservation", func(t *testing.T) {
		d, uc := setup(t)
		gomock.InOrder(
			d.events.EXPECT().FindByID(gomock.Any(), ev.ID()).Return(ev, nil),
			d.ledger.EXPECT().Reserve(gomock.Any(), ev.ID(), 3).Return(97, nil),
			d.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
				Return(infra.NewRepoErr(infra.KindDBFailure, "connection reset")),
			d.ledger.EXPECT().Release(gomock.Any(), ev.ID(), 3).Return(100, nil),
		)

		_, err := uc.CreateBooking(ctx, input(ev.ID(), 3))
		require.ErrorIs(t, err, errs.ErrPersistenceFailure)
	})

	t.Run("release runs even when the caller has gone away", func(t *testing.T) {
		d, uc := setup(t)
		reqCtx, cancel := context.WithCancel(ctx)

		d.events.EXPECT().FindByID(gomock.Any(), ev.ID()).Return(ev, nil)
		d.ledger.EXPECT().Reserve(gomock.Any(), ev.ID(), 2).Return(98, nil)
		d.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ *booking.Booking) error {
				cancel()
				return ctx.Err()
			})
		d.ledger.EXPECT().Release(gomock.Any(), ev.ID(), 2).
			DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ int) (int, error) {
				assert.NoError(t, ctx.Err(), "undo must not inherit the request cancellation")
				return 100, nil
			})

		_, err := uc.CreateBooking(reqCtx, input(ev.ID(), 2))
		require.ErrorIs(t, err, errs.ErrPersistenceFailure)
	})

	t.Run("failed undo is reported alongside the cause", func(t *testing.T) {
		d, uc := setup(t)
		d.events.EXPECT().FindByID(gomock.Any(), ev.ID()).Return(ev, nil)
		d.ledger.EXPECT().Reserve(gomock.Any(), ev.ID(), 1).Return(99, nil)
		d.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assert.AnError)
		d.ledger.EXPECT().Release(gomock.Any(), ev.ID(), 1).Return(0, errs.New("ledger offline"))

		_, err := uc.CreateBooking(ctx, input(ev.ID(), 1))
		require.ErrorIs(t, err, errs.ErrPersistenceFailure)
		assert.Contains(t, err.Error(), "persist booking")
	})

	t.Run("publisher failure does not fail the booking", func(t *testing.T) {
		d, uc := setup(t)
		d.events.EXPECT().FindByID(gomock.Any(), ev.ID()).Return(ev, nil)
		d.ledger.EXPECT().Reserve(gomock.Any(), ev.ID(), 1).Return(99, nil)
		d.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(assert.AnError)

		got, err := uc.CreateBooking(ctx, input(ev.ID(), 1))
		require.NoError(t, err)
		assert.Equal(t, 99, got.Event.AvailableSeats())
	})

	confirmed := func(t *testing.T) *booking.Booking {
		b, err := builder.NewBookingBuilder().WithTickets(3).BuildDomain(ev)
		require.NoError(t, err)
		return b
	}

	t.Run("cancel failing to persist never releases", func(t *testing.T) {
		d, uc := setup(t)
		b := confirmed(t)
		d.bookings.EXPECT().FindByReference(gomock.Any(), b.Reference()).Return(b, nil)
		d.events.EXPECT().FindByID(gomock.Any(), ev.ID()).Return(ev, nil)
		d.bookings.EXPECT().MarkCancelled(gomock.Any(), b.Reference(), now).Return(assert.AnError)
		d.ledger.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.CancelBooking(ctx, b.Reference())
		require.ErrorIs(t, err, errs.ErrPersistenceFailure)
	})

	t.Run("cancel losing the conditional update is a double cancellation", func(t *testing.T) {
		d, uc := setup(t)
		b := confirmed(t)
		d.bookings.EXPECT().FindByReference(gomock.Any(), b.Reference()).Return(b, nil)
		d.events.EXPECT().FindByID(gomock.Any(), ev.ID()).Return(ev, nil)
		d.bookings.EXPECT().MarkCancelled(gomock.Any(), b.Reference(), now).
			Return(infra.NewRepoErr(infra.KindConflict, "booking is not confirmed"))

		_, err := uc.CancelBooking(ctx, b.Reference())
		require.ErrorIs(t, err, errs.ErrDoubleCancellation)
	})

	t.Run("release failure reinstates the booking", func(t *testing.T) {
		d, uc := setup(t)
		b := confirmed(t)
		gomock.InOrder(
			d.bookings.EXPECT().FindByReference(gomock.Any(), b.Reference()).Return(b, nil),
			d.events.EXPECT().FindByID(gomock.Any(), ev.ID()).Return(ev, nil),
			d.bookings.EXPECT().MarkCancelled(gomock.Any(), b.Reference(), now).Return(nil),
			d.ledger.EXPECT().Release(gomock.Any(), ev.ID(), 3).
				Return(100, errs.Wrap(errs.ErrInventoryInvariant, "over capacity")),
			d.bookings.EXPECT().Reinstate(gomock.Any(), b.Reference(), now).Return(nil),
		)

		_, err := uc.CancelBooking(ctx, b.Reference())
		require.ErrorIs(t, err, errs.ErrPersistenceFailure)
		assert.ErrorIs(t, err, errs.ErrInventoryInvariant)
	})
}
