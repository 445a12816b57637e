//go:build unit

package reservation_test

import (
	"testing"

	"lane-booking/internal/domain/money"
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func hours(hs ...int) []schedule.Hour {
	out := make([]schedule.Hour, len(hs))
	for i, h := range hs {
		out[i] = schedule.Hour(h)
	}
	return out
}

func TestMergeToBlocks(t *testing.T) {
	tests := []struct {
		name     string
		selected []schedule.Hour
		want     []reservation.Block
	}{
		{
			name:     "empty selection",
			selected: nil,
			want:     []reservation.Block{},
		},
		{
			name:     "single hour",
			selected: hours(18),
			want:     []reservation.Block{{Start: 18, Duration: 1}},
		},
		{
			name:     "unordered with gap",
			selected: hours(21, 18, 19),
			want:     []reservation.Block{{Start: 18, Duration: 2}, {Start: 21, Duration: 1}},
		},
		{
			name:     "duplicates count once",
			selected: hours(18, 18, 19),
			want:     []reservation.Block{{Start: 18, Duration: 2}},
		},
		{
			name:     "crosses midnight on the linear timeline",
			selected: hours(23, 24, 25),
			want:     []reservation.Block{{Start: 23, Duration: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reservation.MergeToBlocks(tt.selected)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MergeToBlocks mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("merge is idempotent over its own hours", func(t *testing.T) {
		first := reservation.MergeToBlocks(hours(20, 18, 19, 22, 23))
		var flat []schedule.Hour
		for _, b := range first {
			flat = append(flat, b.Hours()...)
		}
		assert.Equal(t, first, reservation.MergeToBlocks(flat))
		assert.Equal(t, 5, reservation.TotalHours(first))
	})
}

func TestDistributeValue(t *testing.T) {
	t.Run("proportional to duration", func(t *testing.T) {
		blocks := []reservation.Block{{Start: 18, Duration: 2}, {Start: 21, Duration: 1}}
		parts := reservation.DistributeValue(money.New(42000), blocks)
		assert.Equal(t, []money.Money{money.New(28000), money.New(14000)}, parts)
	})

	t.Run("leftover cents go to the earliest blocks", func(t *testing.T) {
		blocks := []reservation.Block{{Start: 18, Duration: 1}, {Start: 20, Duration: 1}, {Start: 22, Duration: 1}}
		parts := reservation.DistributeValue(money.New(100), blocks)
		assert.Equal(t, []money.Money{money.New(34), money.New(33), money.New(33)}, parts)
		assert.Equal(t, money.New(100), money.Sum(parts))
	})

	t.Run("no blocks", func(t *testing.T) {
		assert.Empty(t, reservation.DistributeValue(money.New(100), nil))
	})
}
