package schedule

import (
	"time"

	"lane-booking/internal/pkg/clock"
)

type Calendar struct {
	hours    WeeklyHours
	clock    clock.Clock
	location *time.Location
}

func NewCalendar(hours WeeklyHours, clk clock.Clock, loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{hours: hours, clock: clk, location: loc}
}

func (c *Calendar) now() time.Time {
	return c.clock.Now().In(c.location)
}

func (c *Calendar) Today() Date {
	return DateOf(c.now())
}

func (c *Calendar) CurrentHour() int {
	return c.now().Hour()
}

func (c *Calendar) IsToday(d Date) bool {
	return d.Equal(c.Today())
}

func (c *Calendar) IsPastDate(d Date) bool {
	return d.Before(c.Today())
}

// IsOpen reports whether d can be booked at all: not in the past and open on its weekday.
func (c *Calendar) IsOpen(d Date) bool {
	if c.IsPastDate(d) {
		return false
	}
	return c.hours.For(d.Weekday()).IsOpen
}

// HoursFor returns the normalized opening range of d's weekday regardless of the open flag.
func (c *Calendar) HoursFor(d Date) (Hour, Hour) {
	w := c.hours.For(d.Weekday()).Window()
	return w.Start, w.End
}

// Window is the bookable window of d; empty when d is closed or past.
func (c *Calendar) Window(d Date) Window {
	if !c.IsOpen(d) {
		return Window{}
	}
	return c.hours.For(d.Weekday()).Window()
}

// TimelineFor is used to place stored reservations on d's timeline even when d is no longer bookable.
func (c *Calendar) TimelineFor(d Date) Window {
	return c.hours.For(d.Weekday()).Window()
}

// IsPastHour applies the same-day cut-off: the current hour is already closed.
func (c *Calendar) IsPastHour(d Date, h Hour) bool {
	if !c.IsToday(d) {
		return c.IsPastDate(d)
	}
	return h.Int() <= c.CurrentHour()
}

type DayStatus struct {
	Date     Date
	Bookable bool
}

func (c *Calendar) MonthDays(year int, month time.Month) []DayStatus {
	first := NewDate(year, month, 1)
	days := make([]DayStatus, 0, 31)
	for d := first; d.Month() == month; d = d.AddDays(1) {
		days = append(days, DayStatus{Date: d, Bookable: c.IsOpen(d)})
	}
	return days
}
