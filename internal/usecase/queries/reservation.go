package queries

//go:generate mockgen -source=reservation.go -destination=../../testutil/mock/queries/reservation_mock.go -package=queriesmock

import (
	"context"
	"sort"

	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByDate(ctx context.Context, date schedule.Date) ([]*ReservationView, error)
	ListByDateRange(ctx context.Context, from, to schedule.Date) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reads shared.Reads
}

func NewReservationQueries(reads shared.Reads) ReservationQueries {
	return &reservationQueriesImpl{reads: reads}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	r, err := q.reads.ReservationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewReservationView(r), nil
}

func (q *reservationQueriesImpl) ListByDate(ctx context.Context, date schedule.Date) ([]*ReservationView, error) {
	rows, err := q.reads.ReservationsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	sortByDateAndTime(rows)
	return NewReservationViews(rows), nil
}

func (q *reservationQueriesImpl) ListByDateRange(ctx context.Context, from, to schedule.Date) ([]*ReservationView, error) {
	rows, err := q.reads.ReservationsByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sortByDateAndTime(rows)
	return NewReservationViews(rows), nil
}

// sortByDateAndTime orders rows chronologically; after-midnight hours of a day sort last.
func sortByDateAndTime(rows []*reservation.Reservation) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.Date().Equal(b.Date()) {
			return a.Date().Before(b.Date())
		}
		return sortableHour(a.StartHour()) < sortableHour(b.StartHour())
	})
}

// sortableHour places early-morning starts after the evening ones of the same business day.
func sortableHour(h int) int {
	if h < earlyMorningCutoff {
		return h + schedule.HoursPerDay
	}
	return h
}

const earlyMorningCutoff = 6
