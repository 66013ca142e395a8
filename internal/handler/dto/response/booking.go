package response

import (
	"time"

	"ticket-booking/internal/usecase/shared"
)

const (
	MessageBookingConfirmed = "Booking confirmed"
	MessageBookingCancelled = "Booking cancelled"
)

type BookingResponse struct {
	BookingID        string    `json:"bookingId"`
	BookingReference string    `json:"bookingReference"`
	EventID          string    `json:"eventId"`
	EventName        string    `json:"eventName"`
	Venue            string    `json:"venue"`
	EventDate        time.Time `json:"eventDate"`
	CustomerName     string    `json:"customerName"`
	CustomerEmail    string    `json:"customerEmail"`
	NumberOfTickets  int       `json:"numberOfTickets"`
	TotalAmount      float64   `json:"totalAmount"`
	BookingDate      time.Time `json:"bookingDate"`
	Status           string    `json:"status"`
	Message          string    `json:"message,omitempty"`
}

func FromBookingDetails(d *shared.BookingDetails, message string) *BookingResponse {
	b := d.Booking
	return &BookingResponse{
		BookingID:        b.ID().String(),
		BookingReference: b.Reference().String(),
		EventID:          b.EventID().String(),
		EventName:        d.Event.Name(),
		Venue:            d.Event.Venue(),
		EventDate:        d.Event.Date(),
		CustomerName:     b.Customer().Name(),
		CustomerEmail:    b.Customer().Email(),
		NumberOfTickets:  b.Tickets().Int(),
		TotalAmount:      b.TotalAmount().Dollars(),
		BookingDate:      b.CreatedAt(),
		Status:           b.Status().String(),
		Message:          message,
	}
}

func FromBookingList(list []*shared.BookingDetails) []*BookingResponse {
	res := make([]*BookingResponse, len(list))
	for i, d := range list {
		res[i] = FromBookingDetails(d, "")
	}
	return res
}
