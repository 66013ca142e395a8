//go:build unit || e2e

package builder

import (
	"time"

	"ticket-booking/internal/domain/event"
	reqdto "ticket-booking/internal/handler/dto/request"
)

type EventBuilder struct {
	Name        string
	Venue       string
	Date        time.Time
	PriceCents  int64
	TotalSeats  int
	Category    string
	Description string
}

func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		Name:        "Rock Concert: The Legends",
		Venue:       "Madison Square Garden",
		Date:        time.Now().Add(15 * 24 * time.Hour).Truncate(time.Second),
		PriceCents:  5000,
		TotalSeats:  100,
		Category:    "CONCERT",
		Description: "An unforgettable night with legendary rock bands.",
	}
}

func (b *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(b)
	return b
}

func (b *EventBuilder) WithSeats(total int) *EventBuilder {
	b.TotalSeats = total
	return b
}

func (b *EventBuilder) WithPriceCents(cents int64) *EventBuilder {
	b.PriceCents = cents
	return b
}

func (b *EventBuilder) Params() event.NewEventParams {
	return event.NewEventParams{
		Name:        b.Name,
		Venue:       b.Venue,
		Date:        b.Date,
		PriceCents:  b.PriceCents,
		TotalSeats:  b.TotalSeats,
		Category:    b.Category,
		Description: b.Description,
	}
}

func (b *EventBuilder) BuildDomain() (*event.Event, error) {
	return event.NewEvent(b.Params())
}

// MustBuildDomain is for fixtures whose values are known to be valid.
func (b *EventBuilder) MustBuildDomain() *event.Event {
	ev, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return ev
}

func (b *EventBuilder) BuildCreateRequestDTO() reqdto.CreateEventRequest {
	return reqdto.CreateEventRequest{
		Name:        b.Name,
		Venue:       b.Venue,
		EventDate:   b.Date,
		TicketPrice: float64(b.PriceCents) / 100.0,
		TotalSeats:  b.TotalSeats,
		Category:    b.Category,
		Description: b.Description,
	}
}
