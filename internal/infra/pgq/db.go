// Package pgq holds the hand-written SQL of the booking store. Method shapes follow
// the sqlc convention so repositories can depend on narrow query interfaces.
package pgq

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

const lockDate = `SELECT pg_advisory_xact_lock(hashtext('lanes:' || $1::text))`

// LockDate serializes writers of one date until the surrounding transaction ends.
func (q *Queries) LockDate(ctx context.Context, db DBTX, date string) error {
	_, err := db.Exec(ctx, lockDate, date)
	return err
}
