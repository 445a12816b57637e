//go:build unit

package reservation_test

import (
	"testing"

	"lane-booking/internal/domain/money"
	"lane-booking/internal/domain/pricing"
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory(t *testing.T) {
	factory := reservation.NewFactory(
		clock.NewMockClock(fixedNow),
		pricing.NewResolver(money.New(14000), money.New(16000)),
	)
	friday := schedule.MustParseDate("2025-01-10")
	blocks := []reservation.Block{{Start: 18, Duration: 2}, {Start: 21, Duration: 1}}

	t.Run("quote", func(t *testing.T) {
		total, parts := factory.Quote(friday, blocks, 2)
		assert.Equal(t, money.New(96000), total)
		assert.Equal(t, []money.Money{money.New(64000), money.New(32000)}, parts)
	})

	t.Run("one pending row per block", func(t *testing.T) {
		clientID := uuid.New()
		rows, err := factory.CreateBookingRows(reservation.BookingSpec{
			ClientID:   clientID,
			ClientName: "Ana",
			Date:       friday,
			Blocks:     blocks,
			LaneCount:  2,
		})
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "18:00", rows[0].Time())
		assert.Equal(t, 2, rows[0].Duration())
		assert.Equal(t, "21:00", rows[1].Time())
		for _, r := range rows {
			assert.Equal(t, clientID, r.ClientID())
			assert.Equal(t, reservation.StatusPending, r.Status())
			assert.Equal(t, fixedNow, r.CreatedAt())
		}
		assert.Equal(t, money.New(96000), rows[0].TotalValue().Add(rows[1].TotalValue()))
	})

	t.Run("no blocks", func(t *testing.T) {
		_, err := factory.CreateBookingRows(reservation.BookingSpec{ClientID: uuid.New(), Date: friday, LaneCount: 1})
		assert.ErrorIs(t, err, reservation.ErrNoBlocks)
	})
}
