package shared

import (
	"time"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/domain/event"

	"github.com/google/uuid"
)

// BookingDetails pairs a booking with the event it draws seats from.
type BookingDetails struct {
	Booking *booking.Booking
	Event   *event.Event
}

type LifecycleType string

const (
	BookingConfirmed LifecycleType = "booking.confirmed"
	BookingCancelled LifecycleType = "booking.cancelled"
)

type BookingLifecycleEvent struct {
	Type           LifecycleType `json:"type"`
	BookingID      uuid.UUID     `json:"bookingId"`
	Reference      string        `json:"bookingReference"`
	EventID        uuid.UUID     `json:"eventId"`
	Tickets        int           `json:"numberOfTickets"`
	TotalCents     int64         `json:"totalAmountCents"`
	AvailableSeats int           `json:"availableSeats"`
	OccurredAt     time.Time     `json:"occurredAt"`
}

func NewLifecycleEvent(t LifecycleType, d *BookingDetails, at time.Time) BookingLifecycleEvent {
	return BookingLifecycleEvent{
		Type:           t,
		BookingID:      d.Booking.ID(),
		Reference:      d.Booking.Reference().String(),
		EventID:        d.Booking.EventID(),
		Tickets:        d.Booking.Tickets().Int(),
		TotalCents:     d.Booking.TotalAmount().Cents(),
		AvailableSeats: d.Event.AvailableSeats(),
		OccurredAt:     at,
	}
}
