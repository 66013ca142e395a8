package commands

import (
	"context"
	"log/slog"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/domain/event"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/pkg/clock"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// maxReferenceAttempts bounds re-minting after a reference collision.
const maxReferenceAttempts = 3

type CreateBookingInput struct {
	EventID         uuid.UUID
	CustomerName    string
	CustomerEmail   string
	NumberOfTickets int
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*shared.BookingDetails, error)
	CancelBooking(ctx context.Context, ref booking.Reference) (*shared.BookingDetails, error)
}

type bookingUseCaseImpl struct {
	ledger    shared.InventoryLedger
	events    shared.EventRepository
	bookings  shared.BookingRepository
	refs      booking.ReferenceGenerator
	publisher shared.BookingEventPublisher
	clock     clock.Clock
}

func NewBookingUseCase(
	ledger shared.InventoryLedger,
	events shared.EventRepository,
	bookings shared.BookingRepository,
	refs booking.ReferenceGenerator,
	publisher shared.BookingEventPublisher,
	clock clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		ledger:    ledger,
		events:    events,
		bookings:  bookings,
		refs:      refs,
		publisher: publisher,
		clock:     clock,
	}
}

// CreateBooking reserves seats and then records the booking. A booking that cannot
// be recorded gives its seats back before the error is returned.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*shared.BookingDetails, error) {
	tickets, err := booking.NewTicketCount(in.NumberOfTickets)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	customer, err := booking.NewCustomer(in.CustomerName, in.CustomerEmail)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	ev, err := u.findEvent(ctx, in.EventID)
	if err != nil {
		return nil, err
	}

	comp := newCompensation("create booking")

	var remaining int
	err = comp.step(ctx, "reserve seats",
		func(ctx context.Context) error {
			remaining, err = u.ledger.Reserve(ctx, ev.ID(), tickets.Int())
			return err
		},
		func(ctx context.Context) error {
			_, err := u.ledger.Release(ctx, ev.ID(), tickets.Int())
			return err
		},
	)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrEventNotFound, "event %s", in.EventID)
		}
		if errs.Is(err, errs.ErrInsufficientInventory) {
			return nil, err
		}
		return nil, errs.Mark(errs.Wrap(err, "reserve seats"), errs.ErrPersistenceFailure)
	}

	b, err := u.persistNewBooking(ctx, ev, customer, tickets)
	if err != nil {
		return nil, comp.abort(ctx, err)
	}

	details := &shared.BookingDetails{Booking: b, Event: ev.WithAvailableSeats(remaining)}
	u.publish(ctx, shared.BookingConfirmed, details)
	return details, nil
}

func (u *bookingUseCaseImpl) persistNewBooking(
	ctx context.Context,
	ev *event.Event,
	customer booking.Customer,
	tickets booking.TicketCount,
) (*booking.Booking, error) {
	var lastErr error
	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		b, err := booking.NewBooking(u.refs.Next(), ev, customer, tickets, u.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrValidation)
		}

		err = u.bookings.Create(ctx, b)
		if err == nil {
			return b, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(errs.Wrap(err, "persist booking"), errs.ErrPersistenceFailure)
		}

		slog.Warn("booking reference collision, minting a new one",
			"reference", b.Reference().String(),
			"attempt", attempt)
		lastErr = err
	}
	return nil, errs.Mark(
		errs.Mark(errs.Wrapf(lastErr, "persist booking after %d attempts", maxReferenceAttempts), errs.ErrDuplicateReference),
		errs.ErrPersistenceFailure,
	)
}

// CancelBooking records the cancellation first and only then releases seats, so a
// retried cancel can never credit the same seats twice.
func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, ref booking.Reference) (*shared.BookingDetails, error) {
	b, err := u.bookings.FindByReference(ctx, ref)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrBookingNotFound, "reference %s", ref)
		}
		return nil, errs.Mark(errs.Wrap(err, "find booking"), errs.ErrPersistenceFailure)
	}
	if b.IsCancelled() {
		return nil, errs.Wrapf(errs.ErrDoubleCancellation, "reference %s", ref)
	}

	ev, err := u.findEvent(ctx, b.EventID())
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	if err := b.Cancel(now); err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	comp := newCompensation("cancel booking")

	err = comp.step(ctx, "mark cancelled",
		func(ctx context.Context) error {
			return u.bookings.MarkCancelled(ctx, ref, now)
		},
		func(ctx context.Context) error {
			return u.bookings.Reinstate(ctx, ref, u.clock.Now())
		},
	)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Wrapf(errs.ErrDoubleCancellation, "reference %s", ref)
		}
		return nil, errs.Mark(errs.Wrap(err, "mark booking cancelled"), errs.ErrPersistenceFailure)
	}

	var remaining int
	err = comp.step(ctx, "release seats",
		func(ctx context.Context) error {
			remaining, err = u.ledger.Release(ctx, b.EventID(), b.Tickets().Int())
			return err
		},
		nil,
	)
	if err != nil {
		return nil, comp.abort(ctx, errs.Mark(errs.Wrap(err, "release seats"), errs.ErrPersistenceFailure))
	}

	details := &shared.BookingDetails{Booking: b, Event: ev.WithAvailableSeats(remaining)}
	u.publish(ctx, shared.BookingCancelled, details)
	return details, nil
}

func (u *bookingUseCaseImpl) findEvent(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	ev, err := u.events.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrEventNotFound, "event %s", id)
		}
		return nil, errs.Mark(errs.Wrap(err, "find event"), errs.ErrPersistenceFailure)
	}
	return ev, nil
}

// publish never fails the operation; the booking is already durable.
func (u *bookingUseCaseImpl) publish(ctx context.Context, t shared.LifecycleType, d *shared.BookingDetails) {
	evt := shared.NewLifecycleEvent(t, d, u.clock.Now())
	if err := u.publisher.Publish(context.WithoutCancel(ctx), evt); err != nil {
		slog.Warn("failed to publish booking lifecycle event",
			"type", string(t),
			"reference", evt.Reference,
			"error", err.Error())
	}
}
