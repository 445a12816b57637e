//go:build unit

package memstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"lane-booking/internal/domain/client"
	"lane-booking/internal/domain/money"
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/domain/settings"
	"lane-booking/internal/infra/memstore"
	"lane-booking/internal/pkg/clock"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/usecase/commands"
	"lane-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now     = time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	tuesday = schedule.MustParseDate("2025-01-07")
)

func seeded(t *testing.T, lanes int) *memstore.Store {
	t.Helper()
	store := memstore.NewStore()
	cfg := settings.Default()
	cfg.ActiveLanes = lanes
	require.NoError(t, store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().Save(ctx, cfg)
	}))
	return store
}

func newRow(t *testing.T, owner *client.Client, date schedule.Date, start, lanes int) *reservation.Reservation {
	t.Helper()
	r, err := reservation.NewReservation(reservation.NewParams{
		ClientID:   owner.ID(),
		ClientName: owner.Name(),
		Date:       date,
		Block:      reservation.Block{Start: schedule.Hour(start), Duration: 1},
		LaneCount:  lanes,
		TotalValue: money.New(14000),
	}, now)
	require.NoError(t, err)
	return r
}

func newClient(t *testing.T, phone string) *client.Client {
	t.Helper()
	c, err := client.NewClient("Ana", phone, "", now)
	require.NoError(t, err)
	return c
}

func TestWithin_StagedWritesApplyOnlyOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := seeded(t, 6)
	owner := newClient(t, "(11) 98888-7777")
	row := newRow(t, owner, tuesday, 18, 1)

	boom := errs.New("boom")
	err := store.WithinDate(ctx, tuesday, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Clients().Create(ctx, owner))
		require.NoError(t, tx.Reservations().Create(ctx, row))

		listed, lerr := tx.Reservations().ListByDate(ctx, tuesday)
		require.NoError(t, lerr)
		assert.Len(t, listed, 1, "staged rows are visible inside the unit of work")
		return boom
	})
	require.ErrorIs(t, err, boom)

	rows, err := store.ReservationsByDate(ctx, tuesday)
	require.NoError(t, err)
	assert.Empty(t, rows)
	_, err = store.ClientByID(ctx, owner.ID())
	assert.True(t, errs.Is(err, errs.ErrClientNotFound))

	require.NoError(t, store.WithinDate(ctx, tuesday, func(ctx context.Context, tx shared.Tx) error {
		if cerr := tx.Clients().Create(ctx, owner); cerr != nil {
			return cerr
		}
		return tx.Reservations().Create(ctx, row)
	}))

	rows, err = store.ReservationsByDate(ctx, tuesday)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, row.ID(), rows[0].ID())
}

func TestReads_ReturnCopies(t *testing.T) {
	ctx := context.Background()
	store := seeded(t, 6)
	owner := newClient(t, "11988887777")
	row := newRow(t, owner, tuesday, 18, 1)
	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Clients().Create(ctx, owner))
		return tx.Reservations().Create(ctx, row)
	}))

	got, err := store.ReservationByID(ctx, row.ID())
	require.NoError(t, err)
	require.NoError(t, got.Cancel(now))

	again, err := store.ReservationByID(ctx, row.ID())
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusPending, again.Status(), "mutating a read result never reaches the store")
}

func TestClients_DuplicatePhone(t *testing.T) {
	ctx := context.Background()
	store := seeded(t, 6)
	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Clients().Create(ctx, newClient(t, "(11) 98888-7777"))
	}))

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Clients().Create(ctx, newClient(t, "11 98888 7777"))
	})
	assert.True(t, errs.Is(err, errs.ErrClientExists))

	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, ferr := tx.Clients().FindByPhone(ctx, "11988887777")
		if ferr != nil {
			return ferr
		}
		assert.Equal(t, "Ana", c.Name())
		return nil
	})
	assert.NoError(t, err)
}

func TestReservationsForClient_MatchesOwnerAndGuestPhone(t *testing.T) {
	ctx := context.Background()
	store := seeded(t, 6)
	owner := newClient(t, "11988887777")
	guest := newClient(t, "11977776666")

	owned := newRow(t, owner, tuesday, 18, 1)
	invited, err := reservation.NewReservation(reservation.NewParams{
		ClientID:   owner.ID(),
		ClientName: owner.Name(),
		Date:       tuesday,
		Block:      reservation.Block{Start: 20, Duration: 1},
		LaneCount:  1,
		TotalValue: money.New(14000),
		Details:    reservation.Details{Guests: []reservation.Guest{reservation.NewGuest("Bia", "(11) 97777-6666", "")}},
	}, now)
	require.NoError(t, err)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Clients().Create(ctx, owner))
		require.NoError(t, tx.Clients().Create(ctx, guest))
		require.NoError(t, tx.Reservations().Create(ctx, owned))
		return tx.Reservations().Create(ctx, invited)
	}))

	forGuest, err := store.ReservationsForClient(ctx, guest.ID(), guest.NormalizedPhone())
	require.NoError(t, err)
	require.Len(t, forGuest, 1)
	assert.Equal(t, invited.ID(), forGuest[0].ID())

	forOwner, err := store.ReservationsForClient(ctx, owner.ID(), owner.NormalizedPhone())
	require.NoError(t, err)
	assert.Len(t, forOwner, 2)
}

func TestWithinDate_ContextCancelledWhileWaiting(t *testing.T) {
	store := seeded(t, 6)
	held := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = store.WithinDate(context.Background(), tuesday, func(context.Context, shared.Tx) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := store.WithinDate(ctx, tuesday, func(context.Context, shared.Tx) error { return nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	other := store.WithinDate(context.Background(), tuesday.AddDays(1), func(context.Context, shared.Tx) error { return nil })
	assert.NoError(t, other, "other dates are not blocked")
}

// Two 2-lane bookings race for hour 18 on a 2-lane house: exactly one commits.
func TestCreateBooking_ConcurrentCommitsAreAtomic(t *testing.T) {
	for round := 0; round < 20; round++ {
		store := seeded(t, 2)
		uc := commands.NewBookingUseCase(store, clock.NewMockClock(now), time.UTC, nil, nil, nil)

		var (
			wg        sync.WaitGroup
			start     = make(chan struct{})
			results   = make([]error, 2)
			committed = make([]*commands.CreateBookingResult, 2)
		)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				committed[i], results[i] = uc.CreateBooking(context.Background(), shared.Guest(), commands.CreateBookingRequest{
					Date:      tuesday,
					Hours:     []int{18},
					LaneCount: 2,
					Name:      fmt.Sprintf("Guest %d", i),
					Phone:     fmt.Sprintf("1190000000%d", i),
				})
			}(i)
		}
		close(start)
		wg.Wait()

		var ok, conflicts int
		for _, err := range results {
			switch {
			case err == nil:
				ok++
			case errs.Is(err, errs.ErrCapacityConflict):
				conflicts++
				var conflict *commands.CapacityConflictError
				require.ErrorAs(t, err, &conflict)
				assert.Equal(t, schedule.Hour(18), conflict.Hour)
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		require.Equal(t, 1, ok, "round %d", round)
		require.Equal(t, 1, conflicts, "round %d", round)

		rows, err := store.ReservationsByDate(context.Background(), tuesday)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 2, rows[0].LaneCount())
	}
}

// A two-block booking that conflicts on its second block leaves no row behind.
func TestCreateBooking_MultiBlockIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	store := seeded(t, 2)
	uc := commands.NewBookingUseCase(store, clock.NewMockClock(now), time.UTC, nil, nil, nil)

	_, err := uc.CreateBooking(ctx, shared.Guest(), commands.CreateBookingRequest{
		Date: tuesday, Hours: []int{22}, LaneCount: 2, Name: "First", Phone: "11911111111",
	})
	require.NoError(t, err)

	_, err = uc.CreateBooking(ctx, shared.Guest(), commands.CreateBookingRequest{
		Date: tuesday, Hours: []int{18, 19, 22}, LaneCount: 1, Name: "Second", Phone: "11922222222",
	})
	require.True(t, errs.Is(err, errs.ErrCapacityConflict))

	rows, err := store.ReservationsByDate(ctx, tuesday)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
