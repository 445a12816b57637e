package queries

//go:generate mockgen -source=booking.go -destination=../../testutil/mock/queries/booking_mock.go -package=queriesmock

import (
	"context"
	"time"

	"lane-booking/internal/domain/pricing"
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/pkg/clock"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/usecase/shared"
)

type BookingQueries interface {
	Settings(ctx context.Context) (*SettingsView, error)
	DayAvailability(ctx context.Context, date schedule.Date, laneCount int) (*DayAvailabilityView, error)
	Quote(ctx context.Context, date schedule.Date, hours []int, laneCount int) (*QuoteView, error)
	Calendar(ctx context.Context, year int, month time.Month) ([]CalendarDayView, error)
}

type bookingQueriesImpl struct {
	reads    shared.Reads
	clock    clock.Clock
	location *time.Location
}

func NewBookingQueries(reads shared.Reads, clk clock.Clock, location *time.Location) BookingQueries {
	return &bookingQueriesImpl{reads: reads, clock: clk, location: location}
}

func (q *bookingQueriesImpl) Settings(ctx context.Context) (*SettingsView, error) {
	s, err := q.reads.Settings(ctx)
	if err != nil {
		return nil, err
	}
	return NewSettingsView(s), nil
}

// DayAvailability never locks; the grid may be stale by the time a booking is committed.
func (q *bookingQueriesImpl) DayAvailability(ctx context.Context, date schedule.Date, laneCount int) (*DayAvailabilityView, error) {
	cfg, err := q.reads.Settings(ctx)
	if err != nil {
		return nil, err
	}
	if laneCount <= 0 {
		laneCount = 1
	}

	calendar := cfg.Calendar(q.clock, q.location)
	view := &DayAvailabilityView{
		Date:             date.String(),
		IsOpen:           calendar.IsOpen(date),
		ActiveLanes:      cfg.ActiveLanes,
		PricePerLaneHour: cfg.PricingResolver().PriceForDate(date).Cents(),
		PriceCategory:    string(pricing.CategoryFor(date)),
		RequestedLanes:   laneCount,
		Slots:            []SlotView{},
	}
	if !view.IsOpen {
		return view, nil
	}

	existing, err := q.reads.ReservationsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	for _, s := range cfg.AvailabilityCalculator(calendar).DaySlots(date, laneCount, existing) {
		view.Slots = append(view.Slots, SlotView{
			Hour:      s.Hour.Int(),
			Label:     s.Label,
			Available: s.Available,
			Remaining: s.Remaining,
			IsPast:    s.IsPast,
		})
	}
	return view, nil
}

func (q *bookingQueriesImpl) Quote(ctx context.Context, date schedule.Date, hours []int, laneCount int) (*QuoteView, error) {
	cfg, err := q.reads.Settings(ctx)
	if err != nil {
		return nil, err
	}
	if laneCount < 1 || laneCount > cfg.ActiveLanes {
		return nil, errs.Mark(errs.Newf("lane count must be between 1 and %d", cfg.ActiveLanes), errs.ErrValidation)
	}

	window := cfg.Calendar(q.clock, q.location).TimelineFor(date)
	selected := make([]schedule.Hour, 0, len(hours))
	for _, raw := range hours {
		h, herr := schedule.NewHour(raw)
		if herr != nil || !window.Contains(h) {
			return nil, errs.Mark(errs.Newf("hour %d is outside business hours", raw), errs.ErrValidation)
		}
		selected = append(selected, h)
	}

	blocks := reservation.MergeToBlocks(selected)
	factory := reservation.NewFactory(q.clock, cfg.PricingResolver())
	total, values := factory.Quote(date, blocks, laneCount)

	view := &QuoteView{
		Date:       date.String(),
		LaneCount:  laneCount,
		TotalHours: reservation.TotalHours(blocks),
		TotalCents: total.Cents(),
		Blocks:     make([]BlockQuote, len(blocks)),
	}
	for i, b := range blocks {
		view.Blocks[i] = BlockQuote{
			Start:      b.Start.Int(),
			Label:      b.Start.Label(),
			Duration:   b.Duration,
			ValueCents: values[i].Cents(),
		}
	}
	return view, nil
}

func (q *bookingQueriesImpl) Calendar(ctx context.Context, year int, month time.Month) ([]CalendarDayView, error) {
	if month < time.January || month > time.December {
		return nil, errs.Mark(errs.Newf("invalid month %d", month), errs.ErrValidation)
	}
	cfg, err := q.reads.Settings(ctx)
	if err != nil {
		return nil, err
	}
	days := cfg.Calendar(q.clock, q.location).MonthDays(year, month)
	views := make([]CalendarDayView, len(days))
	for i, d := range days {
		views[i] = CalendarDayView{
			Date:     d.Date.String(),
			Weekday:  int(d.Date.Weekday()),
			Bookable: d.Bookable,
		}
	}
	return views, nil
}
