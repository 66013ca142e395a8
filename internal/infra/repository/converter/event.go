package converter

import (
	"time"

	"ticket-booking/internal/domain/event"

	"github.com/google/uuid"
)

// EventRow mirrors a row of the events table.
type EventRow struct {
	ID             uuid.UUID
	Name           string
	Venue          string
	EventDate      time.Time
	TicketPrice    int64
	TotalSeats     int32
	AvailableSeats int32
	Category       string
	Description    string
}

// ScanTargets returns the destinations for EventColumns, in order.
func (r *EventRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.Name, &r.Venue, &r.EventDate, &r.TicketPrice,
		&r.TotalSeats, &r.AvailableSeats, &r.Category, &r.Description,
	}
}

const EventColumns = `id, name, venue, event_date, ticket_price, total_seats, available_seats, category, description`

func EventToRow(ev *event.Event) EventRow {
	return EventRow{
		ID:             ev.ID(),
		Name:           ev.Name(),
		Venue:          ev.Venue(),
		EventDate:      ev.Date(),
		TicketPrice:    ev.PriceCents(),
		TotalSeats:     int32(ev.TotalSeats()),     // #nosec G115 -- bounded by the schema
		AvailableSeats: int32(ev.AvailableSeats()), // #nosec G115 -- bounded by the schema
		Category:       ev.Category().String(),
		Description:    ev.Description(),
	}
}

func EventToDomain(r EventRow) (*event.Event, error) {
	return event.ReconstructEvent(
		r.ID,
		r.Name,
		r.Venue,
		r.EventDate.UTC(),
		r.TicketPrice,
		int(r.TotalSeats),
		int(r.AvailableSeats),
		event.Category(r.Category),
		r.Description,
	)
}
