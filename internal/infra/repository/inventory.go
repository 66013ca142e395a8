package repository

import (
	"context"
	"errors"
	"log/slog"

	"ticket-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InventoryLedger keeps events.available_seats. Each change is a single
// conditional UPDATE, so concurrent callers never oversell or overfill.
type InventoryLedger struct {
	db     DBTX
	logger *slog.Logger
}

func NewInventoryLedger(db DBTX, logger *slog.Logger) *InventoryLedger {
	return &InventoryLedger{db: db, logger: logger}
}

func (l *InventoryLedger) Reserve(ctx context.Context, eventID uuid.UUID, count int) (int, error) {
	if count <= 0 {
		return 0, errs.Validationf("seat count must be positive, got %d", count)
	}

	const stmt = `
UPDATE events SET available_seats = available_seats - $2, updated_at = NOW()
WHERE id = $1 AND available_seats >= $2
RETURNING available_seats`

	var remaining int32
	err := l.db.QueryRow(ctx, stmt, eventID, count).Scan(&remaining)
	if err == nil {
		return int(remaining), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, wrapPgErr(l.logger, "failed to reserve seats", err)
	}

	available, _, err := l.counters(ctx, eventID)
	if err != nil {
		return 0, err
	}
	return 0, &errs.InsufficientInventoryError{Requested: count, Available: available}
}

func (l *InventoryLedger) Release(ctx context.Context, eventID uuid.UUID, count int) (int, error) {
	if count <= 0 {
		return 0, errs.Validationf("seat count must be positive, got %d", count)
	}

	const stmt = `
UPDATE events SET available_seats = available_seats + $2, updated_at = NOW()
WHERE id = $1 AND available_seats + $2 <= total_seats
RETURNING available_seats`

	var restored int32
	err := l.db.QueryRow(ctx, stmt, eventID, count).Scan(&restored)
	if err == nil {
		return int(restored), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, wrapPgErr(l.logger, "failed to release seats", err)
	}

	available, total, err := l.counters(ctx, eventID)
	if err != nil {
		return 0, err
	}
	l.logger.Error("release would exceed event capacity",
		"event_id", eventID.String(),
		"count", count,
		"available", available,
		"total", total)
	return available, errs.Wrapf(errs.ErrInventoryInvariant,
		"releasing %d seats would exceed capacity %d (available %d)", count, total, available)
}

// counters tells a lost conditional update apart from a missing event.
func (l *InventoryLedger) counters(ctx context.Context, eventID uuid.UUID) (available, total int, err error) {
	var a, t int32
	if err := l.db.QueryRow(ctx,
		`SELECT available_seats, total_seats FROM events WHERE id = $1`, eventID,
	).Scan(&a, &t); err != nil {
		return 0, 0, wrapPgErr(l.logger, "event not found", err)
	}
	return int(a), int(t), nil
}
