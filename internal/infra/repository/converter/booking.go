package converter

import (
	"time"

	"ticket-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingRow struct {
	ID              uuid.UUID
	Reference       string
	EventID         uuid.UUID
	CustomerName    string
	CustomerEmail   string
	NumberOfTickets int32
	TotalAmount     int64
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (r *BookingRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.Reference, &r.EventID, &r.CustomerName, &r.CustomerEmail,
		&r.NumberOfTickets, &r.TotalAmount, &r.Status, &r.CreatedAt, &r.UpdatedAt,
	}
}

const BookingColumns = `id, booking_reference, event_id, customer_name, customer_email, number_of_tickets, total_amount, status, created_at, updated_at`

func BookingToRow(b *booking.Booking) BookingRow {
	return BookingRow{
		ID:              b.ID(),
		Reference:       b.Reference().String(),
		EventID:         b.EventID(),
		CustomerName:    b.Customer().Name(),
		CustomerEmail:   b.Customer().Email(),
		NumberOfTickets: int32(b.Tickets().Int()), // #nosec G115 -- at most booking.MaxTickets
		TotalAmount:     b.TotalAmount().Cents(),
		Status:          b.Status().String(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

// BookingToDomain trusts stored rows; the schema's checks already bound them.
func BookingToDomain(r BookingRow) *booking.Booking {
	return booking.ReconstructBooking(
		r.ID,
		booking.Reference(r.Reference),
		r.EventID,
		booking.ReconstructCustomer(r.CustomerName, r.CustomerEmail),
		booking.ReconstructTicketCount(int(r.NumberOfTickets)),
		booking.NewMoney(r.TotalAmount),
		booking.Status(r.Status),
		r.CreatedAt.UTC(),
		r.UpdatedAt.UTC(),
	)
}
