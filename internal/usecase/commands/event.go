package commands

import (
	"context"

	"ticket-booking/internal/domain/event"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventCommands interface {
	CreateEvent(ctx context.Context, p event.NewEventParams) (*event.Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, p event.NewEventParams) (*event.Event, error)
	// ImportEvents creates all events or none.
	ImportEvents(ctx context.Context, params []event.NewEventParams) ([]*event.Event, error)
}

type eventUseCaseImpl struct {
	events shared.EventRepository
	uow    shared.UnitOfWork
}

func NewEventUseCase(events shared.EventRepository, uow shared.UnitOfWork) EventCommands {
	return &eventUseCaseImpl{events: events, uow: uow}
}

func (u *eventUseCaseImpl) CreateEvent(ctx context.Context, p event.NewEventParams) (*event.Event, error) {
	ev, err := event.NewEvent(p)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if err := u.events.Create(ctx, ev); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "create event"), errs.ErrPersistenceFailure)
	}
	return ev, nil
}

func (u *eventUseCaseImpl) UpdateEvent(ctx context.Context, id uuid.UUID, p event.NewEventParams) (*event.Event, error) {
	current, err := u.events.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrEventNotFound, "event %s", id)
		}
		return nil, errs.Mark(errs.Wrap(err, "find event"), errs.ErrPersistenceFailure)
	}

	revised, err := current.Revise(p)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if err := u.events.Update(ctx, revised); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrEventNotFound, "event %s", id)
		}
		return nil, errs.Mark(errs.Wrap(err, "update event"), errs.ErrPersistenceFailure)
	}
	return revised, nil
}

func (u *eventUseCaseImpl) ImportEvents(ctx context.Context, params []event.NewEventParams) ([]*event.Event, error) {
	evs := make([]*event.Event, 0, len(params))
	for i, p := range params {
		ev, err := event.NewEvent(p)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "event #%d (%s)", i+1, p.Name), errs.ErrValidation)
		}
		evs = append(evs, ev)
	}

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, ev := range evs {
			if err := tx.Events().Create(ctx, ev); err != nil {
				return errs.Wrapf(err, "create event %s", ev.Name())
			}
		}
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return evs, nil
}
