package queries

import (
	"context"
	"log/slog"

	"ticket-booking/internal/infra"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AuditQueries interface {
	AuditEvent(ctx context.Context, id uuid.UUID) (*InventoryAudit, error)
}

type auditQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewAuditQueries(uow shared.UnitOfWork) AuditQueries {
	return &auditQueriesImpl{uow: uow}
}

// AuditEvent reads the seat counter and the confirmed bookings from one snapshot.
func (q *auditQueriesImpl) AuditEvent(ctx context.Context, id uuid.UUID) (*InventoryAudit, error) {
	var audit *InventoryAudit
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, err := tx.Events().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Wrapf(errs.ErrEventNotFound, "event %s", id)
			}
			return errs.Mark(err, errs.ErrPersistenceFailure)
		}
		confirmed, err := tx.Bookings().ConfirmedTickets(ctx, id)
		if err != nil {
			return errs.Mark(err, errs.ErrPersistenceFailure)
		}

		discrepancy := ev.TotalSeats() - ev.AvailableSeats() - confirmed
		audit = &InventoryAudit{
			EventID:          id,
			TotalSeats:       ev.TotalSeats(),
			AvailableSeats:   ev.AvailableSeats(),
			ConfirmedTickets: confirmed,
			Discrepancy:      discrepancy,
			Balanced:         discrepancy == 0,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !audit.Balanced {
		slog.Warn("inventory audit found a discrepancy",
			"event_id", id.String(),
			"available", audit.AvailableSeats,
			"confirmed", audit.ConfirmedTickets,
			"total", audit.TotalSeats)
	}
	return audit, nil
}
