package request

import (
	"math"
	"time"

	"ticket-booking/internal/domain/event"
)

type CreateEventRequest struct {
	Name        string    `json:"name" binding:"required,max=255"`
	Venue       string    `json:"venue" binding:"required,max=255"`
	EventDate   time.Time `json:"eventDate" binding:"required"`
	TicketPrice float64   `json:"ticketPrice" binding:"gte=0"`
	TotalSeats  int       `json:"totalSeats" binding:"required,min=1"`
	Category    string    `json:"category" binding:"max=50"`
	Description string    `json:"description" binding:"max=1000"`
}

// ToParams converts the dollar price to cents, rounding half away from zero.
func (r *CreateEventRequest) ToParams() event.NewEventParams {
	return event.NewEventParams{
		Name:        r.Name,
		Venue:       r.Venue,
		Date:        r.EventDate,
		PriceCents:  int64(math.Round(r.TicketPrice * 100)),
		TotalSeats:  r.TotalSeats,
		Category:    r.Category,
		Description: r.Description,
	}
}
