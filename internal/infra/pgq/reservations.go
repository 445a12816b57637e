package pgq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationColumns = `id, client_id, client_name, date, start_hour, duration, lane_count, total_cents,
	status, payment_status, event_type, people_count, observations, guests, guest_phones, created_at, updated_at`

func scanReservation(row pgx.Row) (Reservation, error) {
	var r Reservation
	err := row.Scan(
		&r.ID,
		&r.ClientID,
		&r.ClientName,
		&r.Date,
		&r.StartHour,
		&r.Duration,
		&r.LaneCount,
		&r.TotalCents,
		&r.Status,
		&r.PaymentStatus,
		&r.EventType,
		&r.PeopleCount,
		&r.Observations,
		&r.Guests,
		&r.GuestPhones,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

func collectReservations(rows pgx.Rows, err error) ([]Reservation, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Reservation
	for rows.Next() {
		r, scanErr := scanReservation(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const createReservation = `INSERT INTO reservations (` + reservationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg Reservation) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID,
		arg.ClientID,
		arg.ClientName,
		arg.Date,
		arg.StartHour,
		arg.Duration,
		arg.LaneCount,
		arg.TotalCents,
		arg.Status,
		arg.PaymentStatus,
		arg.EventType,
		arg.PeopleCount,
		arg.Observations,
		arg.Guests,
		arg.GuestPhones,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateReservationState = `UPDATE reservations
SET status = $2, payment_status = $3, observations = $4, updated_at = $5
WHERE id = $1`

type UpdateReservationStateParams struct {
	ID            uuid.UUID
	Status        string
	PaymentStatus string
	Observations  string
	UpdatedAt     time.Time
}

func (q *Queries) UpdateReservationState(ctx context.Context, db DBTX, arg UpdateReservationStateParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReservationState, arg.ID, arg.Status, arg.PaymentStatus, arg.Observations, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getReservationByID = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByID, id))
}

const getReservationByIDForUpdate = getReservationByID + ` FOR UPDATE`

func (q *Queries) GetReservationByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByIDForUpdate, id))
}

const listReservationsByDate = `SELECT ` + reservationColumns + ` FROM reservations
WHERE date = $1
ORDER BY created_at, id`

func (q *Queries) ListReservationsByDate(ctx context.Context, db DBTX, date time.Time) ([]Reservation, error) {
	return collectReservations(db.Query(ctx, listReservationsByDate, date))
}

const listReservationsByDateRange = `SELECT ` + reservationColumns + ` FROM reservations
WHERE date BETWEEN $1 AND $2
ORDER BY date, created_at, id`

func (q *Queries) ListReservationsByDateRange(ctx context.Context, db DBTX, from, to time.Time) ([]Reservation, error) {
	return collectReservations(db.Query(ctx, listReservationsByDateRange, from, to))
}

const listReservationsForClient = `SELECT ` + reservationColumns + ` FROM reservations
WHERE client_id = $1 OR ($2 <> '' AND $2 = ANY(guest_phones))
ORDER BY date DESC, created_at DESC`

func (q *Queries) ListReservationsForClient(ctx context.Context, db DBTX, clientID uuid.UUID, phoneDigits string) ([]Reservation, error) {
	return collectReservations(db.Query(ctx, listReservationsForClient, clientID, phoneDigits))
}
