package infra

import (
	"log/slog"

	"ticket-booking/internal/pkg/errs"
)

// RepositoryErrorKind is how storage adapters tell use cases what went wrong
// without leaking driver types. Memory and Postgres backends report the same kinds.
type RepositoryErrorKind string

const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	// conditional write matched no row in the expected state
	KindConflict RepositoryErrorKind = "CONFLICT"
)

type RepositoryError struct {
	Kind  RepositoryErrorKind
	msg   string
	cause error
}

func (e RepositoryError) Error() string {
	s := string(e.Kind) + ": " + e.msg
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

func (e RepositoryError) Unwrap() error {
	return e.cause
}

// WrapRepoErr logs an unexpected driver failure once, at the adapter, and wraps it with a stack.
func WrapRepoErr(logger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	attrs := []any{slog.String("kind", string(kind))}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		err = errs.Wrap(err, msg)
	}
	logger.Error("Repository error: "+msg, attrs...)

	return RepositoryError{Kind: kind, msg: msg, cause: err}
}

// NewRepoErr builds an unlogged error for outcomes callers translate, such as
// missing rows or lost conditional updates.
func NewRepoErr(kind RepositoryErrorKind, msg string) error {
	return RepositoryError{Kind: kind, msg: msg}
}

// KindOf reports the kind of the first RepositoryError in err's chain.
func KindOf(err error) (RepositoryErrorKind, bool) {
	var e RepositoryError
	if errs.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
