package reservation

import (
	"errors"

	"lane-booking/internal/domain/money"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrNoBlocks = errors.New("booking requires at least one hour")

type PriceCalculator interface {
	QuoteTotal(d schedule.Date, laneCount, hours int) money.Money
}

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

type BookingSpec struct {
	ClientID   uuid.UUID
	ClientName string
	Date       schedule.Date
	Blocks     []Block
	LaneCount  int
	Details    Details
}

// Quote prices the whole booking and splits the total across its blocks.
func (f *Factory) Quote(date schedule.Date, blocks []Block, laneCount int) (money.Money, []money.Money) {
	total := f.PriceCalculator.QuoteTotal(date, laneCount, TotalHours(blocks))
	return total, DistributeValue(total, blocks)
}

// CreateBookingRows builds one PENDING reservation per block, all for the same client.
func (f *Factory) CreateBookingRows(spec BookingSpec) ([]*Reservation, error) {
	if len(spec.Blocks) == 0 {
		return nil, ErrNoBlocks
	}

	_, values := f.Quote(spec.Date, spec.Blocks, spec.LaneCount)
	now := f.Clock.Now()

	rows := make([]*Reservation, 0, len(spec.Blocks))
	for i, block := range spec.Blocks {
		row, err := NewReservation(NewParams{
			ClientID:   spec.ClientID,
			ClientName: spec.ClientName,
			Date:       spec.Date,
			Block:      block,
			LaneCount:  spec.LaneCount,
			TotalValue: values[i],
			Details:    spec.Details,
		}, now)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
