package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const HoursPerDay = 24

var ErrInvalidHour = errors.New("invalid hour")

// Hour is a position on the linear timeline of one business day.
// 0-23 belong to the calendar date itself, 24-47 are the hours after midnight
// that still belong to the same business day.
type Hour int

func NewHour(h int) (Hour, error) {
	if h < 0 || h >= 2*HoursPerDay {
		return 0, ErrInvalidHour
	}
	return Hour(h), nil
}

func (h Hour) Int() int {
	return int(h)
}

// Display is the wall-clock hour used for storage and labels.
func (h Hour) Display() int {
	return int(h) % HoursPerDay
}

func (h Hour) AfterMidnight() bool {
	return int(h) >= HoursPerDay
}

func (h Hour) Label() string {
	return FormatHourLabel(h.Display())
}

func (h Hour) Next() Hour {
	return h + 1
}

func FormatHourLabel(displayHour int) string {
	return fmt.Sprintf("%d:00", displayHour)
}

// ParseHourLabel accepts "H:00", "HH:00" or a bare "H".
func ParseHourLabel(s string) (int, error) {
	s = strings.TrimSpace(s)
	head, tail, found := strings.Cut(s, ":")
	if found && tail != "00" {
		return 0, ErrInvalidHour
	}
	h, err := strconv.Atoi(head)
	if err != nil || h < 0 || h >= HoursPerDay {
		return 0, ErrInvalidHour
	}
	return h, nil
}

// Window is the half-open range [Start, End) of bookable hours of one business day.
type Window struct {
	Start Hour
	End   Hour
}

func (w Window) IsEmpty() bool {
	return w.End <= w.Start
}

func (w Window) Contains(h Hour) bool {
	return h >= w.Start && h < w.End
}

func (w Window) Len() int {
	if w.IsEmpty() {
		return 0
	}
	return int(w.End - w.Start)
}

func (w Window) Hours() []Hour {
	hours := make([]Hour, 0, w.Len())
	for h := w.Start; h < w.End; h++ {
		hours = append(hours, h)
	}
	return hours
}

// Linearize maps a stored wall-clock hour back onto the window's timeline:
// hours before the opening hour that fall inside the post-midnight tail move past 24.
func (w Window) Linearize(displayHour int) Hour {
	if displayHour < int(w.Start) && displayHour+HoursPerDay < int(w.End) {
		return Hour(displayHour + HoursPerDay)
	}
	return Hour(displayHour)
}
