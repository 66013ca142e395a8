package repository

import (
	"context"
	"log/slog"
	"time"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewBookingRepository(db DBTX, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{db: db, logger: logger}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const stmt = `
INSERT INTO bookings (` + converter.BookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	row := converter.BookingToRow(b)
	if _, err := r.db.Exec(ctx, stmt,
		row.ID, row.Reference, row.EventID, row.CustomerName, row.CustomerEmail,
		row.NumberOfTickets, row.TotalAmount, row.Status, row.CreatedAt, row.UpdatedAt,
	); err != nil {
		return wrapPgErr(r.logger, "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByReference(ctx context.Context, ref booking.Reference) (*booking.Booking, error) {
	const query = `SELECT ` + converter.BookingColumns + ` FROM bookings WHERE booking_reference = $1`

	var row converter.BookingRow
	if err := r.db.QueryRow(ctx, query, ref.String()).Scan(row.ScanTargets()...); err != nil {
		return nil, wrapPgErr(r.logger, "booking not found", err)
	}
	return converter.BookingToDomain(row), nil
}

func (r *BookingRepository) FindByEmail(ctx context.Context, email string) ([]*booking.Booking, error) {
	const query = `
SELECT ` + converter.BookingColumns + `
FROM bookings
WHERE LOWER(customer_email) = LOWER($1)
ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, wrapPgErr(r.logger, "failed to list bookings by email", err)
	}
	bookingRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (converter.BookingRow, error) {
		var br converter.BookingRow
		err := row.Scan(br.ScanTargets()...)
		return br, err
	})
	if err != nil {
		return nil, wrapPgErr(r.logger, "failed to list bookings by email", err)
	}

	out := make([]*booking.Booking, 0, len(bookingRows))
	for _, br := range bookingRows {
		out = append(out, converter.BookingToDomain(br))
	}
	return out, nil
}

// MarkCancelled flips CONFIRMED to CANCELLED. Exactly one concurrent caller wins;
// the rest get KindConflict.
func (r *BookingRepository) MarkCancelled(ctx context.Context, ref booking.Reference, at time.Time) error {
	const stmt = `
UPDATE bookings SET status = 'CANCELLED', updated_at = $2
WHERE booking_reference = $1 AND status = 'CONFIRMED'`

	return r.transition(ctx, stmt, ref, at, "booking is not confirmed")
}

// Reinstate undoes MarkCancelled.
func (r *BookingRepository) Reinstate(ctx context.Context, ref booking.Reference, at time.Time) error {
	const stmt = `
UPDATE bookings SET status = 'CONFIRMED', updated_at = $2
WHERE booking_reference = $1 AND status = 'CANCELLED'`

	return r.transition(ctx, stmt, ref, at, "booking is not cancelled")
}

func (r *BookingRepository) transition(ctx context.Context, stmt string, ref booking.Reference, at time.Time, conflict string) error {
	tag, err := r.db.Exec(ctx, stmt, ref.String(), at)
	if err != nil {
		return wrapPgErr(r.logger, "failed to update booking status", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM bookings WHERE booking_reference = $1)`, ref.String(),
	).Scan(&exists); err != nil {
		return wrapPgErr(r.logger, "failed to check booking", err)
	}
	if !exists {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return infra.NewRepoErr(infra.KindConflict, conflict)
}

func (r *BookingRepository) ConfirmedTickets(ctx context.Context, eventID uuid.UUID) (int, error) {
	const query = `
SELECT COALESCE(SUM(number_of_tickets), 0)
FROM bookings
WHERE event_id = $1 AND status = 'CONFIRMED'`

	var total int64
	if err := r.db.QueryRow(ctx, query, eventID).Scan(&total); err != nil {
		return 0, wrapPgErr(r.logger, "failed to sum confirmed tickets", err)
	}
	return int(total), nil
}
