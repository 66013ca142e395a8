// Package memstore keeps events and bookings in process memory. It backs the
// "memory" storage driver and the use-case tests.
package memstore

import (
	"slices"
	"strings"
	"sync"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/domain/event"

	"github.com/google/uuid"
)

// eventSlot guards one event's seat counter. Reserve and Release hold slot.mu,
// never Store.mu, so different events do not contend.
type eventSlot struct {
	mu        sync.Mutex
	details   *event.Event
	available int
}

func (s *eventSlot) snapshot() *event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.details.WithAvailableSeats(s.available)
}

type Store struct {
	mu       sync.RWMutex
	events   map[uuid.UUID]*eventSlot
	bookings map[booking.Reference]*booking.Booking
}

func New() *Store {
	return &Store{
		events:   make(map[uuid.UUID]*eventSlot),
		bookings: make(map[booking.Reference]*booking.Booking),
	}
}

func (s *Store) slot(id uuid.UUID) (*eventSlot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slot, ok := s.events[id]
	return slot, ok
}

// snapshotEvents copies every event matching keep, ordered by date then name.
func (s *Store) snapshotEvents(keep func(*event.Event) bool) []*event.Event {
	s.mu.RLock()
	slots := make([]*eventSlot, 0, len(s.events))
	for _, slot := range s.events {
		slots = append(slots, slot)
	}
	s.mu.RUnlock()

	out := make([]*event.Event, 0, len(slots))
	for _, slot := range slots {
		ev := slot.snapshot()
		if keep == nil || keep(ev) {
			out = append(out, ev)
		}
	}
	slices.SortFunc(out, func(a, b *event.Event) int {
		if c := a.Date().Compare(b.Date()); c != 0 {
			return c
		}
		return strings.Compare(a.Name(), b.Name())
	})
	return out
}

// copyBooking detaches a stored booking so callers cannot mutate the store.
func copyBooking(b *booking.Booking) *booking.Booking {
	cp := *b
	return &cp
}
