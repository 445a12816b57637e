package pgconv

import (
	"errors"
	"time"

	"lane-booking/internal/domain/schedule"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// DateToPg maps a calendar key onto the DATE column representation.
func DateToPg(d schedule.Date) time.Time {
	return d.Time()
}

// DateFromPg drops whatever zone pgx attached to a DATE value.
func DateFromPg(t time.Time) schedule.Date {
	return schedule.NewDate(t.Year(), t.Month(), t.Day())
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func IsUniqueViolation(err error) bool {
	return hasCode(err, pgErrCodeUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return hasCode(err, pgErrCodeForeignKeyViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
