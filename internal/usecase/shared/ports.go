package shared

import (
	"context"
	"time"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/domain/event"

	"github.com/google/uuid"
)

// InventoryLedger owns every mutation of an event's available seat count.
// Calls for the same event are linearizable; calls for different events do not contend.
type InventoryLedger interface {
	// Reserve takes count seats or fails with *errs.InsufficientInventoryError
	// carrying the availability it observed. It returns the seats left.
	Reserve(ctx context.Context, eventID uuid.UUID, count int) (int, error)
	// Release gives count seats back. A release that would push availability
	// above capacity is refused with errs.ErrInventoryInvariant.
	Release(ctx context.Context, eventID uuid.UUID, count int) (int, error)
}

// EventRepository is the catalog. It never writes seat counts after creation.
type EventRepository interface {
	Create(ctx context.Context, ev *event.Event) error
	// Update rewrites descriptive fields only.
	Update(ctx context.Context, ev *event.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	FindAll(ctx context.Context) ([]*event.Event, error)
	SearchByName(ctx context.Context, name string) ([]*event.Event, error)
	FindByCategory(ctx context.Context, category event.Category) ([]*event.Event, error)
	SearchByVenue(ctx context.Context, venue string) ([]*event.Event, error)
	FindBetween(ctx context.Context, from, to time.Time) ([]*event.Event, error)
	FindAvailable(ctx context.Context) ([]*event.Event, error)
}

type BookingRepository interface {
	// Create fails with infra.KindDuplicateKey when the reference is taken.
	Create(ctx context.Context, b *booking.Booking) error
	FindByReference(ctx context.Context, ref booking.Reference) (*booking.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]*booking.Booking, error)
	// MarkCancelled moves CONFIRMED to CANCELLED and fails with infra.KindConflict
	// when the booking is no longer confirmed.
	MarkCancelled(ctx context.Context, ref booking.Reference, at time.Time) error
	// Reinstate undoes MarkCancelled.
	Reinstate(ctx context.Context, ref booking.Reference, at time.Time) error
	ConfirmedTickets(ctx context.Context, eventID uuid.UUID) (int, error)
}

type BookingEventPublisher interface {
	Publish(ctx context.Context, evt BookingLifecycleEvent) error
}
