//go:build unit || e2e

package builder

import (
	"time"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/domain/event"
	reqdto "ticket-booking/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	EventID       uuid.UUID
	Reference     booking.Reference
	CustomerName  string
	CustomerEmail string
	Tickets       int
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		EventID:       uuid.New(),
		Reference:     "BK-1A2B3C4D",
		CustomerName:  "Ann",
		CustomerEmail: "ann@example.com",
		Tickets:       3,
		CreatedAt:     time.Now().Truncate(time.Second),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithTickets(n int) *BookingBuilder {
	b.Tickets = n
	return b
}

func (b *BookingBuilder) WithReference(ref booking.Reference) *BookingBuilder {
	b.Reference = ref
	return b
}

func (b *BookingBuilder) BuildDomain(ev *event.Event) (*booking.Booking, error) {
	customer, err := booking.NewCustomer(b.CustomerName, b.CustomerEmail)
	if err != nil {
		return nil, err
	}
	tickets, err := booking.NewTicketCount(b.Tickets)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.Reference, ev, customer, tickets, b.CreatedAt)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		EventID:         b.EventID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		NumberOfTickets: b.Tickets,
	}
}
