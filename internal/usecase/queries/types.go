package queries

import "github.com/google/uuid"

// UpcomingWindowMonths is how far ahead "upcoming" looks.
const UpcomingWindowMonths = 3

// InventoryAudit compares an event's seat counter with its confirmed bookings.
// Balanced holds whenever no booking operation is in flight.
type InventoryAudit struct {
	EventID          uuid.UUID `json:"eventId"`
	TotalSeats       int       `json:"totalSeats"`
	AvailableSeats   int       `json:"availableSeats"`
	ConfirmedTickets int       `json:"confirmedTickets"`
	Discrepancy      int       `json:"discrepancy"`
	Balanced         bool      `json:"balanced"`
}
