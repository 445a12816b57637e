package reservation

import (
	"sort"

	"lane-booking/internal/domain/money"
	"lane-booking/internal/domain/schedule"
)

// Block is a contiguous run of selected hours billed as one reservation row.
type Block struct {
	Start    schedule.Hour
	Duration int
}

func (b Block) End() schedule.Hour {
	return b.Start + schedule.Hour(b.Duration)
}

func (b Block) Contains(h schedule.Hour) bool {
	return h >= b.Start && h < b.End()
}

func (b Block) Hours() []schedule.Hour {
	hours := make([]schedule.Hour, 0, b.Duration)
	for h := b.Start; h < b.End(); h++ {
		hours = append(hours, h)
	}
	return hours
}

// MergeToBlocks coalesces selected hours into ascending blocks of consecutive hours.
// Duplicates count once.
func MergeToBlocks(selected []schedule.Hour) []Block {
	if len(selected) == 0 {
		return []Block{}
	}

	hours := make([]schedule.Hour, len(selected))
	copy(hours, selected)
	sort.Slice(hours, func(i, j int) bool { return hours[i] < hours[j] })

	blocks := make([]Block, 0, len(hours))
	current := Block{Start: hours[0], Duration: 1}
	prev := hours[0]
	for _, h := range hours[1:] {
		switch {
		case h == prev:
			continue
		case h == prev+1:
			current.Duration++
		default:
			blocks = append(blocks, current)
			current = Block{Start: h, Duration: 1}
		}
		prev = h
	}
	return append(blocks, current)
}

func TotalHours(blocks []Block) int {
	total := 0
	for _, b := range blocks {
		total += b.Duration
	}
	return total
}

// DistributeValue splits total across blocks in proportion to their durations.
// Leftover cents go one by one to the earliest blocks, so the parts always sum to total.
func DistributeValue(total money.Money, blocks []Block) []money.Money {
	parts := make([]money.Money, len(blocks))
	hours := int64(TotalHours(blocks))
	if hours == 0 {
		return parts
	}

	var assigned int64
	for i, b := range blocks {
		share := total.Cents() * int64(b.Duration) / hours
		parts[i] = money.New(share)
		assigned += share
	}

	remainder := total.Cents() - assigned
	step := int64(1)
	if remainder < 0 {
		step = -1
		remainder = -remainder
	}
	for i := 0; remainder > 0; i = (i + 1) % len(parts) {
		parts[i] = parts[i].Add(money.New(step))
		remainder--
	}
	return parts
}
