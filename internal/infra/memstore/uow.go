package memstore

import (
	"context"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/domain/event"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/usecase/shared"
)

var _ shared.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork stages inserts made through the transaction and applies them
// all-or-nothing on commit. Reads and conditional updates go straight to the store.
type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := newStagingTx(u.store)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit()
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &readTx{
		events:   NewEventRepository(u.store),
		bookings: NewBookingRepository(u.store),
	})
}

type readTx struct {
	events   *EventRepository
	bookings *BookingRepository
}

func (t *readTx) Events() shared.EventRepository     { return t.events }
func (t *readTx) Bookings() shared.BookingRepository { return t.bookings }

type stagingTx struct {
	store    *Store
	events   *stagedEvents
	bookings *stagedBookings
}

func newStagingTx(store *Store) *stagingTx {
	return &stagingTx{
		store:    store,
		events:   &stagedEvents{EventRepository: NewEventRepository(store)},
		bookings: &stagedBookings{BookingRepository: NewBookingRepository(store)},
	}
}

func (t *stagingTx) Events() shared.EventRepository     { return t.events }
func (t *stagingTx) Bookings() shared.BookingRepository { return t.bookings }

func (t *stagingTx) commit() error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	for _, ev := range t.events.pending {
		if _, exists := t.store.events[ev.ID()]; exists {
			return infra.NewRepoErr(infra.KindDuplicateKey, "event already exists")
		}
	}
	for _, b := range t.bookings.pending {
		if _, exists := t.store.bookings[b.Reference()]; exists {
			return infra.NewRepoErr(infra.KindDuplicateKey, "booking reference already exists")
		}
	}

	for _, ev := range t.events.pending {
		t.store.events[ev.ID()] = &eventSlot{details: ev, available: ev.AvailableSeats()}
	}
	for _, b := range t.bookings.pending {
		t.store.bookings[b.Reference()] = copyBooking(b)
	}
	return nil
}

type stagedEvents struct {
	*EventRepository
	pending []*event.Event
}

func (s *stagedEvents) Create(_ context.Context, ev *event.Event) error {
	s.pending = append(s.pending, ev)
	return nil
}

type stagedBookings struct {
	*BookingRepository
	pending []*booking.Booking
}

func (s *stagedBookings) Create(_ context.Context, b *booking.Booking) error {
	s.pending = append(s.pending, b)
	return nil
}
