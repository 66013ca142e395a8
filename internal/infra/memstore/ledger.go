package memstore

import (
	"context"
	"log/slog"

	"ticket-booking/internal/infra"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var _ shared.InventoryLedger = (*Ledger)(nil)

type Ledger struct {
	store  *Store
	logger *slog.Logger
}

func NewLedger(store *Store, logger *slog.Logger) *Ledger {
	return &Ledger{store: store, logger: logger}
}

func (l *Ledger) Reserve(_ context.Context, eventID uuid.UUID, count int) (int, error) {
	if count <= 0 {
		return 0, errs.Validationf("seat count must be positive, got %d", count)
	}
	slot, ok := l.store.slot(eventID)
	if !ok {
		return 0, infra.NewRepoErr(infra.KindNotFound, "event not found")
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	if slot.available < count {
		return slot.available, &errs.InsufficientInventoryError{Requested: count, Available: slot.available}
	}
	slot.available -= count
	return slot.available, nil
}

func (l *Ledger) Release(_ context.Context, eventID uuid.UUID, count int) (int, error) {
	if count <= 0 {
		return 0, errs.Validationf("seat count must be positive, got %d", count)
	}
	slot, ok := l.store.slot(eventID)
	if !ok {
		return 0, infra.NewRepoErr(infra.KindNotFound, "event not found")
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	total := slot.details.TotalSeats()
	if slot.available+count > total {
		l.logger.Error("release would exceed event capacity",
			slog.String("event_id", eventID.String()),
			slog.Int("available", slot.available),
			slog.Int("release", count),
			slog.Int("total", total))
		return slot.available, errs.Wrapf(errs.ErrInventoryInvariant,
			"release %d seats with %d of %d available", count, slot.available, total)
	}
	slot.available += count
	return slot.available, nil
}
