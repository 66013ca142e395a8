package repository

import (
	"context"
	"errors"
	"log/slog"

	"ticket-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx, so the same
// repository works inside and outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrCheckViolation      = "23514"
	pgErrInvalidText         = "22P02"
)

// wrapPgErr classifies a driver error into a RepositoryError kind.
func wrapPgErr(logger *slog.Logger, msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.NewRepoErr(infra.KindNotFound, msg)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrUniqueViolation:
			return infra.NewRepoErr(infra.KindDuplicateKey, msg+": "+pgErr.ConstraintName)
		case pgErrForeignKeyViolation:
			return infra.NewRepoErr(infra.KindForeignKeyViolated, msg+": "+pgErr.ConstraintName)
		case pgErrInvalidText:
			return infra.NewRepoErr(infra.KindNotFound, msg)
		}
	}
	return infra.WrapRepoErr(logger, infra.KindDBFailure, msg, err)
}
