package commands

import (
	"context"
	"log/slog"

	"ticket-booking/internal/pkg/errs"
)

// compensation records the undo action of every forward step that succeeded so a
// later failure can roll them back in reverse order.
type compensation struct {
	operation string
	undos     []undoStep
}

type undoStep struct {
	name string
	fn   func(ctx context.Context) error
}

func newCompensation(operation string) *compensation {
	return &compensation{operation: operation}
}

// step runs do and, when it succeeds, registers undo. A nil undo marks a step
// that needs no rollback.
func (c *compensation) step(ctx context.Context, name string, do, undo func(ctx context.Context) error) error {
	if err := do(ctx); err != nil {
		return err
	}
	if undo != nil {
		c.undos = append(c.undos, undoStep{name: name, fn: undo})
	}
	return nil
}

// abort undoes completed steps and returns cause. Undo runs on a context detached
// from the caller's cancellation. Undo failures are logged and attached to cause.
func (c *compensation) abort(ctx context.Context, cause error) error {
	ctx = context.WithoutCancel(ctx)

	result := cause
	for i := len(c.undos) - 1; i >= 0; i-- {
		u := c.undos[i]
		if err := u.fn(ctx); err != nil {
			slog.Error("compensation step failed",
				"operation", c.operation,
				"step", u.name,
				"cause", cause.Error(),
				"error", err.Error())
			result = errs.Combine(result, errs.Wrapf(err, "undo %s", u.name))
			continue
		}
		slog.Warn("compensation step applied",
			"operation", c.operation,
			"step", u.name,
			"cause", cause.Error())
	}
	c.undos = nil
	return result
}
