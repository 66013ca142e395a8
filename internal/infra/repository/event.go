package repository

import (
	"context"
	"log/slog"
	"time"

	"ticket-booking/internal/domain/event"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const eventOrder = ` ORDER BY event_date, name`

type EventRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewEventRepository(db DBTX, logger *slog.Logger) *EventRepository {
	return &EventRepository{db: db, logger: logger}
}

func (r *EventRepository) Create(ctx context.Context, ev *event.Event) error {
	const stmt = `
INSERT INTO events (` + converter.EventColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	row := converter.EventToRow(ev)
	if _, err := r.db.Exec(ctx, stmt,
		row.ID, row.Name, row.Venue, row.EventDate, row.TicketPrice,
		row.TotalSeats, row.AvailableSeats, row.Category, row.Description,
	); err != nil {
		return wrapPgErr(r.logger, "failed to create event", err)
	}
	return nil
}

// Update rewrites descriptive columns only; the seat counters belong to the ledger.
func (r *EventRepository) Update(ctx context.Context, ev *event.Event) error {
	const stmt = `
UPDATE events
SET name = $2, venue = $3, event_date = $4, ticket_price = $5, category = $6, description = $7, updated_at = NOW()
WHERE id = $1`

	row := converter.EventToRow(ev)
	tag, err := r.db.Exec(ctx, stmt,
		row.ID, row.Name, row.Venue, row.EventDate, row.TicketPrice, row.Category, row.Description)
	if err != nil {
		return wrapPgErr(r.logger, "failed to update event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "event not found")
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	const query = `SELECT ` + converter.EventColumns + ` FROM events WHERE id = $1`

	var row converter.EventRow
	if err := r.db.QueryRow(ctx, query, id).Scan(row.ScanTargets()...); err != nil {
		return nil, wrapPgErr(r.logger, "event not found", err)
	}
	return r.toDomain(row)
}

func (r *EventRepository) FindAll(ctx context.Context) ([]*event.Event, error) {
	return r.list(ctx, "failed to list events",
		`SELECT `+converter.EventColumns+` FROM events`+eventOrder)
}

func (r *EventRepository) SearchByName(ctx context.Context, name string) ([]*event.Event, error) {
	return r.list(ctx, "failed to search events by name",
		`SELECT `+converter.EventColumns+` FROM events WHERE name ILIKE '%' || $1 || '%'`+eventOrder, name)
}

func (r *EventRepository) FindByCategory(ctx context.Context, category event.Category) ([]*event.Event, error) {
	return r.list(ctx, "failed to list events by category",
		`SELECT `+converter.EventColumns+` FROM events WHERE category = $1`+eventOrder, category.String())
}

func (r *EventRepository) SearchByVenue(ctx context.Context, venue string) ([]*event.Event, error) {
	return r.list(ctx, "failed to search events by venue",
		`SELECT `+converter.EventColumns+` FROM events WHERE venue ILIKE '%' || $1 || '%'`+eventOrder, venue)
}

func (r *EventRepository) FindBetween(ctx context.Context, from, to time.Time) ([]*event.Event, error) {
	return r.list(ctx, "failed to list events by date",
		`SELECT `+converter.EventColumns+` FROM events WHERE event_date BETWEEN $1 AND $2`+eventOrder, from, to)
}

func (r *EventRepository) FindAvailable(ctx context.Context) ([]*event.Event, error) {
	return r.list(ctx, "failed to list available events",
		`SELECT `+converter.EventColumns+` FROM events WHERE available_seats > 0`+eventOrder)
}

func (r *EventRepository) list(ctx context.Context, msg, query string, args ...any) ([]*event.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapPgErr(r.logger, msg, err)
	}
	eventRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (converter.EventRow, error) {
		var er converter.EventRow
		err := row.Scan(er.ScanTargets()...)
		return er, err
	})
	if err != nil {
		return nil, wrapPgErr(r.logger, msg, err)
	}

	evs := make([]*event.Event, 0, len(eventRows))
	for _, er := range eventRows {
		ev, err := r.toDomain(er)
		if err != nil {
			return nil, err
		}
		evs = append(evs, ev)
	}
	return evs, nil
}

func (r *EventRepository) toDomain(row converter.EventRow) (*event.Event, error) {
	ev, err := converter.EventToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored event is inconsistent", err)
	}
	return ev, nil
}
