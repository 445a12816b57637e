package schedule

import (
	"errors"
	"time"
)

var ErrInvalidBusinessHours = errors.New("business hours must be within 0-23")

// BusinessHours is the opening configuration of one weekday.
// End 0 means midnight; End < Start means the day closes after midnight.
type BusinessHours struct {
	IsOpen bool `json:"isOpen" yaml:"isOpen"`
	Start  int  `json:"start" yaml:"start"`
	End    int  `json:"end" yaml:"end"`
}

func (b BusinessHours) Validate() error {
	if b.Start < 0 || b.Start >= HoursPerDay || b.End < 0 || b.End >= HoursPerDay {
		return ErrInvalidBusinessHours
	}
	return nil
}

// Window normalizes the configured range onto the linear timeline.
func (b BusinessHours) Window() Window {
	end := b.End
	if end == 0 {
		end = HoursPerDay
	}
	if end < b.Start {
		end += HoursPerDay
	}
	return Window{Start: Hour(b.Start), End: Hour(end)}
}

// WeeklyHours is indexed by time.Weekday (0 = Sunday).
type WeeklyHours [7]BusinessHours

func (w WeeklyHours) For(day time.Weekday) BusinessHours {
	return w[day]
}

func (w WeeklyHours) Validate() error {
	for _, b := range w {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func DefaultWeeklyHours() WeeklyHours {
	var w WeeklyHours
	for i := range w {
		w[i] = BusinessHours{IsOpen: true, Start: 18, End: 0}
	}
	w[time.Sunday] = BusinessHours{IsOpen: true, Start: 16, End: 0}
	w[time.Friday] = BusinessHours{IsOpen: true, Start: 18, End: 2}
	w[time.Saturday] = BusinessHours{IsOpen: true, Start: 16, End: 2}
	return w
}
