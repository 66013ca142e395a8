package queries

import (
	"context"

	"ticket-booking/internal/domain/event"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/pkg/clock"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	ListAll(ctx context.Context) ([]*event.Event, error)
	SearchByName(ctx context.Context, name string) ([]*event.Event, error)
	ListByCategory(ctx context.Context, category string) ([]*event.Event, error)
	SearchByVenue(ctx context.Context, venue string) ([]*event.Event, error)
	ListUpcoming(ctx context.Context) ([]*event.Event, error)
	ListAvailable(ctx context.Context) ([]*event.Event, error)
}

type eventQueriesImpl struct {
	repo  shared.EventRepository
	clock clock.Clock
}

func NewEventQueries(repo shared.EventRepository, clock clock.Clock) EventQueries {
	return &eventQueriesImpl{repo: repo, clock: clock}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	ev, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrEventNotFound, "event %s", id)
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return ev, nil
}

func (q *eventQueriesImpl) ListAll(ctx context.Context) ([]*event.Event, error) {
	return markList(q.repo.FindAll(ctx))
}

func (q *eventQueriesImpl) SearchByName(ctx context.Context, name string) ([]*event.Event, error) {
	return markList(q.repo.SearchByName(ctx, name))
}

func (q *eventQueriesImpl) ListByCategory(ctx context.Context, category string) ([]*event.Event, error) {
	return markList(q.repo.FindByCategory(ctx, event.NewCategory(category)))
}

func (q *eventQueriesImpl) SearchByVenue(ctx context.Context, venue string) ([]*event.Event, error) {
	return markList(q.repo.SearchByVenue(ctx, venue))
}

func (q *eventQueriesImpl) ListUpcoming(ctx context.Context) ([]*event.Event, error) {
	now := q.clock.Now()
	return markList(q.repo.FindBetween(ctx, now, now.AddDate(0, UpcomingWindowMonths, 0)))
}

func (q *eventQueriesImpl) ListAvailable(ctx context.Context) ([]*event.Event, error) {
	return markList(q.repo.FindAvailable(ctx))
}

func markList(evs []*event.Event, err error) ([]*event.Event, error) {
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return evs, nil
}
