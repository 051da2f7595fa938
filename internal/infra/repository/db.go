// Package repository holds the write-side Postgres repositories. Each
// repository speaks raw SQL through the minimal DB interface so the
// unit of work can hand it a transaction and integration tests can
// hand it a rolled-back one.
package repository

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

// wrapErr classifies the pg error into a repository kind. Expected
// kinds (not found, conflicts) pass through quietly; genuine database
// failures are logged here because this is the last place the raw
// error is visible.
func wrapErr(msg string, err error) error {
	kind := infra.ClassifyPgErr(err)
	if kind == infra.KindDBFailure {
		return infra.WrapRepoErr(slog.Default(), kind, msg, err)
	}
	return infra.NewRepoErr(kind, msg, err)
}
