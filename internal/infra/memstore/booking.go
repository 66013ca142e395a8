package memstore

import (
	"context"
	"slices"
	"strings"
	"time"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var _ shared.BookingRepository = (*BookingRepository)(nil)

type BookingRepository struct {
	store *Store
}

func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) Create(_ context.Context, b *booking.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.bookings[b.Reference()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "booking reference already exists")
	}
	if _, exists := r.store.events[b.EventID()]; !exists {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "booking references unknown event")
	}
	r.store.bookings[b.Reference()] = copyBooking(b)
	return nil
}

func (r *BookingRepository) FindByReference(_ context.Context, ref booking.Reference) (*booking.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	b, ok := r.store.bookings[ref]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return copyBooking(b), nil
}

// FindByEmail matches the address case-insensitively, newest booking first.
func (r *BookingRepository) FindByEmail(_ context.Context, email string) ([]*booking.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*booking.Booking
	for _, b := range r.store.bookings {
		if strings.EqualFold(b.Customer().Email(), email) {
			out = append(out, copyBooking(b))
		}
	}
	slices.SortFunc(out, func(a, b *booking.Booking) int {
		return b.CreatedAt().Compare(a.CreatedAt())
	})
	return out, nil
}

func (r *BookingRepository) MarkCancelled(_ context.Context, ref booking.Reference, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	b, ok := r.store.bookings[ref]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	if !b.IsConfirmed() {
		return infra.NewRepoErr(infra.KindConflict, "booking is not confirmed")
	}
	cp := copyBooking(b)
	if err := cp.Cancel(at); err != nil {
		return infra.NewRepoErr(infra.KindConflict, err.Error())
	}
	r.store.bookings[ref] = cp
	return nil
}

func (r *BookingRepository) Reinstate(_ context.Context, ref booking.Reference, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	b, ok := r.store.bookings[ref]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	if !b.IsCancelled() {
		return infra.NewRepoErr(infra.KindConflict, "booking is not cancelled")
	}
	r.store.bookings[ref] = booking.ReconstructBooking(
		b.ID(), b.Reference(), b.EventID(), b.Customer(), b.Tickets(), b.TotalAmount(),
		booking.StatusConfirmed, b.CreatedAt(), at,
	)
	return nil
}

func (r *BookingRepository) ConfirmedTickets(_ context.Context, eventID uuid.UUID) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	total := 0
	for _, b := range r.store.bookings {
		if b.EventID() == eventID && b.IsConfirmed() {
			total += b.Tickets().Int()
		}
	}
	return total, nil
}
