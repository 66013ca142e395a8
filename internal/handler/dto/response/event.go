package response

import (
	"time"

	"ticket-booking/internal/domain/event"
	"ticket-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EventResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Venue          string    `json:"venue"`
	EventDate      time.Time `json:"eventDate"`
	TicketPrice    float64   `json:"ticketPrice"`
	TotalSeats     int       `json:"totalSeats"`
	AvailableSeats int       `json:"availableSeats"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
}

func FromEvent(ev *event.Event) *EventResponse {
	return &EventResponse{
		ID:             ev.ID(),
		Name:           ev.Name(),
		Venue:          ev.Venue(),
		EventDate:      ev.Date(),
		TicketPrice:    ev.PriceDollars(),
		TotalSeats:     ev.TotalSeats(),
		AvailableSeats: ev.AvailableSeats(),
		Category:       ev.Category().String(),
		Description:    ev.Description(),
	}
}

func FromEventList(evs []*event.Event) []*EventResponse {
	res := make([]*EventResponse, len(evs))
	for i, ev := range evs {
		res[i] = FromEvent(ev)
	}
	return res
}

type InventoryAuditResponse struct {
	EventID          uuid.UUID `json:"eventId"`
	TotalSeats       int       `json:"totalSeats"`
	AvailableSeats   int       `json:"availableSeats"`
	ConfirmedTickets int       `json:"confirmedTickets"`
	Discrepancy      int       `json:"discrepancy"`
	Balanced         bool      `json:"balanced"`
}

func FromInventoryAudit(a *queries.InventoryAudit) *InventoryAuditResponse {
	res := &InventoryAuditResponse{}
	_ = copier.Copy(res, a)
	return res
}
