//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"lane-booking/internal/domain/money"
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)

func newParams() reservation.NewParams {
	return reservation.NewParams{
		ClientID:   uuid.New(),
		ClientName: "  Ana Souza ",
		Date:       schedule.MustParseDate("2025-01-07"),
		Block:      reservation.Block{Start: 18, Duration: 2},
		LaneCount:  2,
		TotalValue: money.New(56000),
		Details: reservation.Details{
			EventType: "Aniversário",
			Guests:    []reservation.Guest{{Name: "Bia", Phone: "+55 (21) 98888-7777"}, {}},
		},
	}
}

func newPending(t *testing.T) *reservation.Reservation {
	t.Helper()
	r, err := reservation.NewReservation(newParams(), fixedNow)
	require.NoError(t, err)
	return r
}

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		r := newPending(t)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, "Ana Souza", r.ClientName())
		assert.Equal(t, "18:00", r.Time())
		assert.Equal(t, 2, r.Duration())
		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.Equal(t, reservation.PaymentPending, r.PaymentStatus())
		assert.Len(t, r.Guests(), 1)
		assert.Equal(t, 4, r.LaneHours())
		assert.Equal(t, fixedNow, r.CreatedAt())
	})

	t.Run("after midnight start is stored as wall-clock hour", func(t *testing.T) {
		p := newParams()
		p.Block = reservation.Block{Start: 24, Duration: 1}
		r, err := reservation.NewReservation(p, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, 0, r.StartHour())
		assert.Equal(t, "0:00", r.Time())
	})

	tests := []struct {
		name   string
		mutate func(*reservation.NewParams)
		errIs  error
	}{
		{"missing client", func(p *reservation.NewParams) { p.ClientID = uuid.Nil }, reservation.ErrMissingClient},
		{"missing date", func(p *reservation.NewParams) { p.Date = schedule.Date{} }, reservation.ErrMissingDate},
		{"zero duration", func(p *reservation.NewParams) { p.Block.Duration = 0 }, reservation.ErrInvalidDuration},
		{"zero lanes", func(p *reservation.NewParams) { p.LaneCount = 0 }, reservation.ErrInvalidLaneCount},
		{"negative value", func(p *reservation.NewParams) { p.TotalValue = money.New(-1) }, reservation.ErrNegativeValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newParams()
			tt.mutate(&p)
			_, err := reservation.NewReservation(p, fixedNow)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestReservationLifecycle(t *testing.T) {
	later := fixedNow.Add(time.Hour)

	t.Run("confirm pending with payment pending", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Confirm(reservation.PaymentPending, later))
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.Equal(t, reservation.PaymentPending, r.PaymentStatus())
		assert.Equal(t, later, r.UpdatedAt())
	})

	t.Run("confirmed unpaid row can be marked paid", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Confirm(reservation.PaymentPending, later))
		require.NoError(t, r.Confirm(reservation.PaymentPaid, later))
		assert.Equal(t, reservation.PaymentPaid, r.PaymentStatus())
	})

	t.Run("paid row cannot be confirmed again", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Confirm(reservation.PaymentPaid, later))
		assert.ErrorIs(t, r.Confirm(reservation.PaymentPaid, later), reservation.ErrInvalidTransition)
	})

	t.Run("cancelled row frees capacity and is terminal", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Cancel(later))
		assert.False(t, r.HoldsCapacity())
		assert.ErrorIs(t, r.Confirm(reservation.PaymentPaid, later), reservation.ErrInvalidTransition)
		assert.ErrorIs(t, r.MarkNoShow(later), reservation.ErrInvalidTransition)
		assert.ErrorIs(t, r.Cancel(later), reservation.ErrInvalidTransition)
	})

	t.Run("no-show keeps holding capacity", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Confirm(reservation.PaymentPending, later))
		require.NoError(t, r.MarkNoShow(later))
		assert.True(t, r.HoldsCapacity())
		assert.ErrorIs(t, r.Cancel(later), reservation.ErrInvalidTransition)
	})

	t.Run("observations are appended", func(t *testing.T) {
		r := newPending(t)
		r.AppendObservation("[Pgto Presencial: PIX]", later)
		r.AppendObservation("  ", later)
		assert.Equal(t, "[Pgto Presencial: PIX]", r.Observations())
	})
}

func TestReservationPlacement(t *testing.T) {
	p := newParams()
	p.Block = reservation.Block{Start: 25, Duration: 1}
	r, err := reservation.NewReservation(p, fixedNow)
	require.NoError(t, err)

	friday := schedule.Window{Start: 18, End: 26}
	assert.Equal(t, reservation.Block{Start: 25, Duration: 1}, r.Span(friday))

	assert.True(t, r.HasGuestPhone("21988887777"))
	assert.False(t, r.HasGuestPhone(""))

	clone := r.Clone()
	assert.Equal(t, r.ID(), clone.ID())
	require.NoError(t, clone.Cancel(fixedNow))
	assert.Equal(t, reservation.StatusPending, r.Status())
}
