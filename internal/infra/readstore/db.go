// Package readstore holds the query-side Postgres projections. Read
// stores join across tables freely and return view models, never
// domain entities.
package readstore

import (
	"context"
	"log/slog"

	"stayhub/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func wrapErr(msg string, err error) error {
	kind := infra.ClassifyPgErr(err)
	if kind == infra.KindDBFailure {
		return infra.WrapRepoErr(slog.Default(), kind, msg, err)
	}
	return infra.NewRepoErr(kind, msg, err)
}
