//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"lane-booking/internal/domain/client"
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/domain/settings"
	"lane-booking/internal/infra/memstore"
	"lane-booking/internal/pkg/clock"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/testutil"
	"lane-booking/internal/usecase/queries"
	"lane-booking/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tuesday = schedule.MustParseDate("2025-01-07")
	friday  = schedule.MustParseDate("2025-01-10")
)

func newStore(t *testing.T, mutate func(*settings.Settings)) *memstore.Store {
	t.Helper()
	store := memstore.NewStore()
	cfg := settings.Default()
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().Save(ctx, cfg)
	}))
	return store
}

func insert(t *testing.T, store *memstore.Store, rows ...*reservation.Reservation) {
	t.Helper()
	require.NoError(t, store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		for _, r := range rows {
			if err := tx.Reservations().Create(ctx, r); err != nil {
				return err
			}
		}
		return nil
	}))
}

func row(t *testing.T, mutate func(*testutil.ReservationBuilder)) *reservation.Reservation {
	t.Helper()
	return testutil.NewReservationBuilder().With(mutate).Build(t)
}

func TestDayAvailability(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, nil)
	insert(t, store,
		row(t, func(b *testutil.ReservationBuilder) {
			b.Date, b.StartHour, b.Duration, b.LaneCount = friday, 23, 3, 3
			b.Status = reservation.StatusConfirmed
		}),
		row(t, func(b *testutil.ReservationBuilder) {
			b.Date, b.StartHour, b.LaneCount = friday, 0, 1
			b.Status = reservation.StatusNoShow
		}),
		row(t, func(b *testutil.ReservationBuilder) {
			b.Date, b.StartHour, b.LaneCount = friday, 18, 6
			b.Status = reservation.StatusCancelled
		}),
	)
	q := queries.NewBookingQueries(store.Reads(), clock.NewMockClock(testutil.FixedNow), time.UTC)

	view, err := q.DayAvailability(ctx, friday, 3)
	require.NoError(t, err)

	assert.True(t, view.IsOpen)
	assert.Equal(t, int64(16000), view.PricePerLaneHour)
	assert.Equal(t, "weekend", view.PriceCategory)
	require.Len(t, view.Slots, 8, "friday runs 18:00 to 2:00")

	byHour := map[int]queries.SlotView{}
	for _, s := range view.Slots {
		byHour[s.Hour] = s
	}
	assert.Equal(t, 6, byHour[18].Remaining, "cancelled rows release their lanes")
	assert.True(t, byHour[18].Available)
	assert.Equal(t, 3, byHour[23].Remaining)
	assert.True(t, byHour[23].Available)
	assert.Equal(t, 2, byHour[24].Remaining, "no-shows keep holding lanes")
	assert.False(t, byHour[24].Available)
	assert.Equal(t, "0:00", byHour[24].Label)
	assert.Equal(t, 3, byHour[25].Remaining)

	t.Run("lane count defaults to one", func(t *testing.T) {
		view, err := q.DayAvailability(ctx, friday, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, view.RequestedLanes)
	})

	t.Run("past dates have no slots", func(t *testing.T) {
		view, err := q.DayAvailability(ctx, schedule.MustParseDate("2025-01-03"), 1)
		require.NoError(t, err)
		assert.False(t, view.IsOpen)
		assert.Empty(t, view.Slots)
	})
}

func TestDayAvailability_SameDayCutoff(t *testing.T) {
	store := newStore(t, nil)
	now := time.Date(2025, 1, 6, 19, 30, 0, 0, time.UTC)
	q := queries.NewBookingQueries(store.Reads(), clock.NewMockClock(now), time.UTC)

	view, err := q.DayAvailability(context.Background(), schedule.DateOf(now), 1)
	require.NoError(t, err)

	for _, s := range view.Slots {
		past := s.Hour <= 19
		assert.Equal(t, past, s.IsPast, "hour %d", s.Hour)
		assert.Equal(t, !past, s.Available, "hour %d", s.Hour)
	}
}

func TestQuote(t *testing.T) {
	ctx := context.Background()
	q := queries.NewBookingQueries(newStore(t, nil).Reads(), clock.NewMockClock(testutil.FixedNow), time.UTC)

	t.Run("splits into blocks", func(t *testing.T) {
		view, err := q.Quote(ctx, tuesday, []int{22, 18, 19}, 2)
		require.NoError(t, err)

		want := &queries.QuoteView{
			Date:       "2025-01-07",
			LaneCount:  2,
			TotalHours: 3,
			TotalCents: 84000,
			Blocks: []queries.BlockQuote{
				{Start: 18, Label: "18:00", Duration: 2, ValueCents: 56000},
				{Start: 22, Label: "22:00", Duration: 1, ValueCents: 28000},
			},
		}
		if diff := cmp.Diff(want, view); diff != "" {
			t.Errorf("Quote() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("block across midnight", func(t *testing.T) {
		view, err := q.Quote(ctx, friday, []int{23, 24, 25}, 1)
		require.NoError(t, err)
		require.Len(t, view.Blocks, 1)
		assert.Equal(t, "23:00", view.Blocks[0].Label)
		assert.Equal(t, 3, view.Blocks[0].Duration)
		assert.Equal(t, int64(48000), view.TotalCents)
	})

	t.Run("rejects", func(t *testing.T) {
		_, err := q.Quote(ctx, tuesday, []int{12}, 1)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		_, err = q.Quote(ctx, tuesday, []int{18}, 7)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		_, err = q.Quote(ctx, tuesday, []int{48}, 1)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestCalendar(t *testing.T) {
	store := newStore(t, func(cfg *settings.Settings) {
		cfg.BusinessHours[time.Monday] = schedule.BusinessHours{IsOpen: false}
	})
	q := queries.NewBookingQueries(store.Reads(), clock.NewMockClock(testutil.FixedNow), time.UTC)

	days, err := q.Calendar(context.Background(), 2025, time.January)
	require.NoError(t, err)
	require.Len(t, days, 31)

	for _, d := range days {
		date := schedule.MustParseDate(d.Date)
		want := !date.Before(schedule.DateOf(testutil.FixedNow)) && date.Weekday() != time.Monday
		assert.Equal(t, want, d.Bookable, d.Date)
		assert.Equal(t, int(date.Weekday()), d.Weekday)
	}

	_, err = q.Calendar(context.Background(), 2025, time.Month(13))
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestSettings_NotConfigured(t *testing.T) {
	q := queries.NewBookingQueries(memstore.NewStore().Reads(), clock.NewMockClock(testutil.FixedNow), time.UTC)
	_, err := q.Settings(context.Background())
	assert.True(t, errs.Is(err, errs.ErrSettingsNotFound))
}

func TestReservationQueries_Ordering(t *testing.T) {
	store := newStore(t, nil)
	late := row(t, func(b *testutil.ReservationBuilder) { b.Date, b.StartHour = friday, 1 })
	evening := row(t, func(b *testutil.ReservationBuilder) { b.Date, b.StartHour = friday, 18 })
	night := row(t, func(b *testutil.ReservationBuilder) { b.Date, b.StartHour = friday, 23 })
	earlier := row(t, func(b *testutil.ReservationBuilder) { b.Date, b.StartHour = tuesday, 20 })
	insert(t, store, late, evening, night, earlier)
	q := queries.NewReservationQueries(store.Reads())

	ids := func(views []*queries.ReservationView) []string {
		out := make([]string, len(views))
		for i, v := range views {
			out[i] = v.ID.String()
		}
		return out
	}

	byDate, err := q.ListByDate(context.Background(), friday)
	require.NoError(t, err)
	assert.Equal(t, []string{evening.ID().String(), night.ID().String(), late.ID().String()}, ids(byDate))

	byRange, err := q.ListByDateRange(context.Background(), tuesday, friday)
	require.NoError(t, err)
	assert.Equal(t, []string{earlier.ID().String(), evening.ID().String(), night.ID().String(), late.ID().String()}, ids(byRange))

	_, err = q.GetByID(context.Background(), uuid.New())
	assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
}

func TestClientHistory(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, nil)

	ana := testutil.NewClientBuilder().Build()
	bruno := testutil.NewClientBuilder().With(func(b *testutil.ClientBuilder) {
		b.Name, b.Phone = "Bruno", "11955554444"
	}).Build()
	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Clients().Create(ctx, ana); err != nil {
			return err
		}
		return tx.Clients().Create(ctx, bruno)
	}))

	owned := row(t, func(b *testutil.ReservationBuilder) {
		b.ClientID, b.Date, b.Duration, b.LaneCount, b.TotalCents = ana.ID(), tuesday, 2, 2, 56000
		b.Status = reservation.StatusConfirmed
	})
	cancelled := row(t, func(b *testutil.ReservationBuilder) {
		b.ClientID, b.Date = ana.ID(), schedule.MustParseDate("2025-01-08")
		b.Status = reservation.StatusCancelled
	})
	asGuest := row(t, func(b *testutil.ReservationBuilder) {
		b.ClientID, b.ClientName, b.Date, b.TotalCents = bruno.ID(), "Bruno", friday, 16000
		b.Status = reservation.StatusConfirmed
		b.Details = reservation.Details{Guests: []reservation.Guest{reservation.NewGuest("Ana", "11 98888-7777", "")}}
	})
	unrelated := row(t, func(b *testutil.ReservationBuilder) {
		b.ClientID, b.Date = bruno.ID(), friday
	})
	insert(t, store, owned, cancelled, asGuest, unrelated)

	view, err := queries.NewClientQueries(store.Reads()).History(ctx, ana.ID())
	require.NoError(t, err)

	require.Len(t, view.Reservations, 3)
	assert.Equal(t, asGuest.ID(), view.Reservations[0].ID, "newest first")
	assert.Equal(t, owned.ID(), view.Reservations[2].ID)
	assert.Equal(t, queries.HistoryCounts{Confirmed: 2, Cancelled: 1}, view.Counts)
	assert.Equal(t, 5, view.LaneHours)
	assert.Equal(t, int64(56000), view.SpentCents, "guest rows are paid by their owner")

	_, err = queries.NewClientQueries(store.Reads()).History(ctx, unrelated.ID())
	assert.True(t, errs.Is(err, errs.ErrClientNotFound))
}

func TestClientList_RecentContactFirst(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, nil)
	older := testutil.NewClientBuilder().Build()
	recent := client.ReconstructClient(client.ReconstructParams{
		ID:            uuid.New(),
		Name:          "Bruno",
		Phone:         "11955554444",
		FunnelStage:   client.StageNegotiation,
		CreatedAt:     testutil.FixedNow,
		LastContactAt: testutil.FixedNow.Add(time.Hour),
	})
	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Clients().Create(ctx, older); err != nil {
			return err
		}
		return tx.Clients().Create(ctx, recent)
	}))

	views, err := queries.NewClientQueries(store.Reads()).List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Bruno", views[0].Name)
	assert.Equal(t, "NEGOCIACAO", views[0].FunnelStage)
}
