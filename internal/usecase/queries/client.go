package queries

//go:generate mockgen -source=client.go -destination=../../testutil/mock/queries/client_mock.go -package=queriesmock

import (
	"context"
	"sort"

	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClientQueries interface {
	List(ctx context.Context) ([]*ClientView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ClientView, error)
	History(ctx context.Context, id uuid.UUID) (*ClientHistoryView, error)
}

type clientQueriesImpl struct {
	reads shared.Reads
}

func NewClientQueries(reads shared.Reads) ClientQueries {
	return &clientQueriesImpl{reads: reads}
}

func (q *clientQueriesImpl) List(ctx context.Context) ([]*ClientView, error) {
	clients, err := q.reads.Clients(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].LastContactAt().After(clients[j].LastContactAt())
	})
	views := make([]*ClientView, len(clients))
	for i, c := range clients {
		views[i] = NewClientView(c)
	}
	return views, nil
}

func (q *clientQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ClientView, error) {
	c, err := q.reads.ClientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewClientView(c), nil
}

// History lists bookings the client owns or attends as a guest, newest date first.
func (q *clientQueriesImpl) History(ctx context.Context, id uuid.UUID) (*ClientHistoryView, error) {
	c, err := q.reads.ClientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := q.reads.ReservationsForClient(ctx, c.ID(), c.NormalizedPhone())
	if err != nil {
		return nil, err
	}

	sortByDateAndTime(rows)
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	view := &ClientHistoryView{
		Client:       NewClientView(c),
		Reservations: NewReservationViews(rows),
	}
	for _, r := range rows {
		switch r.Status() {
		case reservation.StatusPending:
			view.Counts.Pending++
		case reservation.StatusConfirmed:
			view.Counts.Confirmed++
			view.LaneHours += r.LaneHours()
			if r.ClientID() == c.ID() {
				view.SpentCents += r.TotalValue().Cents()
			}
		case reservation.StatusCancelled:
			view.Counts.Cancelled++
		case reservation.StatusNoShow:
			view.Counts.NoShow++
		}
	}
	return view, nil
}
