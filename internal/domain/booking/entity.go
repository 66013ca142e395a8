package booking

import (
	"errors"
	"time"

	"ticket-booking/internal/domain/event"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled  = errors.New("booking already cancelled")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrMissingReference  = errors.New("booking reference is required")
)

type Booking struct {
	id          uuid.UUID
	reference   Reference
	eventID     uuid.UUID
	customer    Customer
	tickets     TicketCount
	totalAmount Money
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking prices the booking once, from the event's unit price at creation time.
func NewBooking(ref Reference, ev *event.Event, customer Customer, tickets TicketCount, now time.Time) (*Booking, error) {
	if ref == "" {
		return nil, ErrMissingReference
	}
	return &Booking{
		id:          uuid.New(),
		reference:   ref,
		eventID:     ev.ID(),
		customer:    customer,
		tickets:     tickets,
		totalAmount: NewMoney(ev.PriceCents()).Times(tickets.Int()),
		status:      StatusConfirmed,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	ref Reference,
	eventID uuid.UUID,
	customer Customer,
	tickets TicketCount,
	totalAmount Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		reference:   ref,
		eventID:     eventID,
		customer:    customer,
		tickets:     tickets,
		totalAmount: totalAmount,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Cancel moves a confirmed booking to cancelled. It mutates only the in-memory copy.
func (b *Booking) Cancel(now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !b.status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) IsConfirmed() bool { return b.status == StatusConfirmed }
func (b *Booking) IsCancelled() bool { return b.status == StatusCancelled }

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Reference() Reference { return b.reference }
func (b *Booking) EventID() uuid.UUID   { return b.eventID }
func (b *Booking) Customer() Customer   { return b.customer }
func (b *Booking) Tickets() TicketCount { return b.tickets }
func (b *Booking) TotalAmount() Money   { return b.totalAmount }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
