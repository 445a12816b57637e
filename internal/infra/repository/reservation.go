package repository

import (
	"context"
	"time"

	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/infra"
	"lane-booking/internal/infra/pgq"
	"lane-booking/internal/infra/repository/converter"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db pgq.DBTX, arg pgq.Reservation) error
	UpdateReservationState(ctx context.Context, db pgq.DBTX, arg pgq.UpdateReservationStateParams) (int64, error)
	GetReservationByIDForUpdate(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Reservation, error)
	ListReservationsByDate(ctx context.Context, db pgq.DBTX, date time.Time) ([]pgq.Reservation, error)
}

// ReservationRepository is bound to one transaction.
type ReservationRepository struct {
	queries ReservationWriteQueries
	db      pgq.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db pgq.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) ListByDate(ctx context.Context, date schedule.Date) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByDate(ctx, r.db, pgconv.DateToPg(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by date", err)
	}
	out, err := converter.ReservationsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservations", err, infra.KindDBFailure)
	}
	return out, nil
}

// FindByID locks the row until the transaction ends.
func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByIDForUpdate(ctx, r.db, id)
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

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	params, err := converter.ReservationToInfra(res)
	if err != nil {
		return infra.WrapRepoErr("failed to encode reservation", err, infra.KindDBFailure)
	}
	if err = r.queries.CreateReservation(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservationState(ctx, r.db, pgq.UpdateReservationStateParams{
		ID:            res.ID(),
		Status:        res.Status().String(),
		PaymentStatus: res.PaymentStatus().String(),
		Observations:  res.Observations(),
		UpdatedAt:     res.UpdatedAt(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if affected == 0 {
		return errs.Mark(infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound), errs.ErrReservationNotFound)
	}
	return nil
}
