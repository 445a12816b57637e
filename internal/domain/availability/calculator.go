package availability

import (
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"
)

type Result struct {
	Available bool
	Remaining int
}

type Slot struct {
	Hour      schedule.Hour
	Label     string
	Available bool
	Remaining int
	IsPast    bool
}

// Calculator derives remaining lane capacity per hour from a snapshot of reservations.
// It never mutates its inputs and is safe for concurrent use.
type Calculator struct {
	activeLanes int
	calendar    *schedule.Calendar
}

func NewCalculator(activeLanes int, calendar *schedule.Calendar) *Calculator {
	return &Calculator{
		activeLanes: activeLanes,
		calendar:    calendar,
	}
}

func (c *Calculator) ActiveLanes() int {
	return c.activeLanes
}

// Occupied sums the lanes of every non-cancelled reservation of date whose span contains hour.
func (c *Calculator) Occupied(date schedule.Date, hour schedule.Hour, existing []*reservation.Reservation) int {
	timeline := c.calendar.TimelineFor(date)
	occupied := 0
	for _, r := range existing {
		if !r.Date().Equal(date) || !r.HoldsCapacity() {
			continue
		}
		if r.Span(timeline).Contains(hour) {
			occupied += r.LaneCount()
		}
	}
	return occupied
}

func (c *Calculator) HourAvailability(
	date schedule.Date,
	hour schedule.Hour,
	requestedLaneCount int,
	existing []*reservation.Reservation,
) Result {
	remaining := c.activeLanes - c.Occupied(date, hour, existing)
	available := remaining >= requestedLaneCount
	if c.calendar.IsPastHour(date, hour) {
		available = false
	}
	return Result{Available: available, Remaining: remaining}
}

// DaySlots renders the slot grid of date. Closed and past dates have no slots.
func (c *Calculator) DaySlots(date schedule.Date, requestedLaneCount int, existing []*reservation.Reservation) []Slot {
	window := c.calendar.Window(date)
	slots := make([]Slot, 0, window.Len())
	for _, h := range window.Hours() {
		res := c.HourAvailability(date, h, requestedLaneCount, existing)
		slots = append(slots, Slot{
			Hour:      h,
			Label:     h.Label(),
			Available: res.Available,
			Remaining: res.Remaining,
			IsPast:    c.calendar.IsPastHour(date, h),
		})
	}
	return slots
}

type Conflict struct {
	Hour      schedule.Hour
	Occupied  int
	Requested int
}

// CheckCapacity verifies every hour of every block against the fresh snapshot and
// returns the first hour that would overflow.
func (c *Calculator) CheckCapacity(
	date schedule.Date,
	blocks []reservation.Block,
	requestedLaneCount int,
	existing []*reservation.Reservation,
) (Conflict, bool) {
	for _, block := range blocks {
		for _, h := range block.Hours() {
			occupied := c.Occupied(date, h, existing)
			if occupied+requestedLaneCount > c.activeLanes {
				return Conflict{Hour: h, Occupied: occupied, Requested: requestedLaneCount}, true
			}
		}
	}
	return Conflict{}, false
}
