package memstore

import (
	"context"
	"strings"
	"time"

	"ticket-booking/internal/domain/event"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var _ shared.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

func (r *EventRepository) Create(_ context.Context, ev *event.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.events[ev.ID()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "event already exists")
	}
	r.store.events[ev.ID()] = &eventSlot{details: ev, available: ev.AvailableSeats()}
	return nil
}

func (r *EventRepository) Update(_ context.Context, ev *event.Event) error {
	slot, ok := r.store.slot(ev.ID())
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "event not found")
	}
	slot.mu.Lock()
	defer slot.mu.Unlock()
	// seat counters stay with the slot
	slot.details = ev
	return nil
}

func (r *EventRepository) FindByID(_ context.Context, id uuid.UUID) (*event.Event, error) {
	slot, ok := r.store.slot(id)
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "event not found")
	}
	return slot.snapshot(), nil
}

func (r *EventRepository) FindAll(_ context.Context) ([]*event.Event, error) {
	return r.store.snapshotEvents(nil), nil
}

func (r *EventRepository) SearchByName(_ context.Context, name string) ([]*event.Event, error) {
	needle := strings.ToLower(name)
	return r.store.snapshotEvents(func(ev *event.Event) bool {
		return strings.Contains(strings.ToLower(ev.Name()), needle)
	}), nil
}

func (r *EventRepository) FindByCategory(_ context.Context, category event.Category) ([]*event.Event, error) {
	return r.store.snapshotEvents(func(ev *event.Event) bool {
		return ev.Category() == category
	}), nil
}

func (r *EventRepository) SearchByVenue(_ context.Context, venue string) ([]*event.Event, error) {
	needle := strings.ToLower(venue)
	return r.store.snapshotEvents(func(ev *event.Event) bool {
		return strings.Contains(strings.ToLower(ev.Venue()), needle)
	}), nil
}

func (r *EventRepository) FindBetween(_ context.Context, from, to time.Time) ([]*event.Event, error) {
	return r.store.snapshotEvents(func(ev *event.Event) bool {
		return !ev.Date().Before(from) && !ev.Date().After(to)
	}), nil
}

func (r *EventRepository) FindAvailable(_ context.Context) ([]*event.Event, error) {
	return r.store.snapshotEvents(func(ev *event.Event) bool {
		return ev.HasAvailability()
	}), nil
}
