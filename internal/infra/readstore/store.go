package readstore

import (
	"context"
	"time"

	"lane-booking/internal/domain/client"
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/domain/settings"
	"lane-booking/internal/infra"
	"lane-booking/internal/infra/pgq"
	"lane-booking/internal/infra/repository"
	"lane-booking/internal/infra/repository/converter"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReadQueries interface {
	repository.SettingsQueries
	GetReservationByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Reservation, error)
	ListReservationsByDate(ctx context.Context, db pgq.DBTX, date time.Time) ([]pgq.Reservation, error)
	ListReservationsByDateRange(ctx context.Context, db pgq.DBTX, from, to time.Time) ([]pgq.Reservation, error)
	ListReservationsForClient(ctx context.Context, db pgq.DBTX, clientID uuid.UUID, phoneDigits string) ([]pgq.Reservation, error)
	GetClientByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Client, error)
	ListClients(ctx context.Context, db pgq.DBTX) ([]pgq.Client, error)
}

// Store serves lock-free reads straight from the pool.
type Store struct {
	queries ReadQueries
	db      pgq.DBTX
}

func NewStore(queries ReadQueries, db pgq.DBTX) *Store {
	return &Store{
		queries: queries,
		db:      db,
	}
}

func (s *Store) Settings(ctx context.Context) (*settings.Settings, error) {
	return repository.LoadSettings(ctx, s.queries, s.db)
}

func (s *Store) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := s.queries.GetReservationByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("reservation not found", err, infra.KindNotFound), errs.ErrReservationNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	res, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (s *Store) ReservationsByDate(ctx context.Context, date schedule.Date) ([]*reservation.Reservation, error) {
	rows, err := s.queries.ListReservationsByDate(ctx, s.db, pgconv.DateToPg(date))
	return s.toReservations(rows, err, "failed to list reservations by date")
}

func (s *Store) ReservationsByDateRange(ctx context.Context, from, to schedule.Date) ([]*reservation.Reservation, error) {
	rows, err := s.queries.ListReservationsByDateRange(ctx, s.db, pgconv.DateToPg(from), pgconv.DateToPg(to))
	return s.toReservations(rows, err, "failed to list reservations by date range")
}

func (s *Store) ReservationsForClient(ctx context.Context, clientID uuid.UUID, normalizedPhone string) ([]*reservation.Reservation, error) {
	rows, err := s.queries.ListReservationsForClient(ctx, s.db, clientID, normalizedPhone)
	return s.toReservations(rows, err, "failed to list client reservations")
}

func (s *Store) toReservations(rows []pgq.Reservation, err error, msg string) ([]*reservation.Reservation, error) {
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	out, err := converter.ReservationsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservations", err, infra.KindDBFailure)
	}
	return out, nil
}

func (s *Store) ClientByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	row, err := s.queries.GetClientByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("client not found", err, infra.KindNotFound), errs.ErrClientNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by ID", err)
	}
	return converter.ClientToDomain(row), nil
}

func (s *Store) Clients(ctx context.Context) ([]*client.Client, error) {
	rows, err := s.queries.ListClients(ctx, s.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	out := make([]*client.Client, len(rows))
	for i, row := range rows {
		out[i] = converter.ClientToDomain(row)
	}
	return out, nil
}
