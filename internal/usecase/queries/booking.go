package queries

import (
	"context"
	"strings"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/domain/event"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByReference(ctx context.Context, ref booking.Reference) (*shared.BookingDetails, error)
	ListByEmail(ctx context.Context, email string) ([]*shared.BookingDetails, error)
}

type bookingQueriesImpl struct {
	bookings shared.BookingRepository
	events   shared.EventRepository
}

func NewBookingQueries(bookings shared.BookingRepository, events shared.EventRepository) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, events: events}
}

func (q *bookingQueriesImpl) GetByReference(ctx context.Context, ref booking.Reference) (*shared.BookingDetails, error) {
	b, err := q.bookings.FindByReference(ctx, ref)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrBookingNotFound, "reference %s", ref)
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	ev, err := q.event(ctx, b.EventID())
	if err != nil {
		return nil, err
	}
	return &shared.BookingDetails{Booking: b, Event: ev}, nil
}

func (q *bookingQueriesImpl) ListByEmail(ctx context.Context, email string) ([]*shared.BookingDetails, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errs.Validationf("email is required")
	}

	list, err := q.bookings.FindByEmail(ctx, email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	// one catalog lookup per distinct event
	seen := make(map[uuid.UUID]*event.Event)
	out := make([]*shared.BookingDetails, 0, len(list))
	for _, b := range list {
		ev, ok := seen[b.EventID()]
		if !ok {
			ev, err = q.event(ctx, b.EventID())
			if err != nil {
				return nil, err
			}
			seen[b.EventID()] = ev
		}
		out = append(out, &shared.BookingDetails{Booking: b, Event: ev})
	}
	return out, nil
}

func (q *bookingQueriesImpl) event(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	ev, err := q.events.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrEventNotFound, "event %s", id)
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return ev, nil
}
