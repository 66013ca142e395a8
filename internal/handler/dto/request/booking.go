package request

import (
	"ticket-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	EventID         uuid.UUID `json:"eventId" binding:"required"`
	CustomerName    string    `json:"customerName" binding:"required,max=255"`
	CustomerEmail   string    `json:"customerEmail" binding:"required,email"`
	NumberOfTickets int       `json:"numberOfTickets" binding:"required,min=1,max=10"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		EventID:         r.EventID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		NumberOfTickets: r.NumberOfTickets,
	}
}
