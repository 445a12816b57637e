package pricing

import (
	"time"

	"lane-booking/internal/domain/money"
	"lane-booking/internal/domain/schedule"
)

type Category string

const (
	CategoryWeekday Category = "weekday"
	CategoryWeekend Category = "weekend"
)

// Resolver prices one lane for one hour by the calendar category of the date.
type Resolver struct {
	weekdayRate money.Money
	weekendRate money.Money
}

func NewResolver(weekdayRate, weekendRate money.Money) *Resolver {
	return &Resolver{
		weekdayRate: weekdayRate,
		weekendRate: weekendRate,
	}
}

// CategoryFor treats Friday, Saturday and Sunday as weekend.
func CategoryFor(d schedule.Date) Category {
	switch d.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return CategoryWeekend
	default:
		return CategoryWeekday
	}
}

func (r *Resolver) PriceForDate(d schedule.Date) money.Money {
	if CategoryFor(d) == CategoryWeekend {
		return r.weekendRate
	}
	return r.weekdayRate
}

// QuoteTotal is the price of laneCount lanes held for hours lane-hours on d.
func (r *Resolver) QuoteTotal(d schedule.Date, laneCount, hours int) money.Money {
	return r.PriceForDate(d).Mul(int64(laneCount) * int64(hours))
}
