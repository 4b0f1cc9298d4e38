package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWeekday is returned when a stored weekday number is outside
// the ISO 1..7 range.
var ErrInvalidWeekday = errors.New("weekday out of range, expected 1 (Monday) to 7 (Sunday)")

// The persistent store keeps weekdays as ISO numbers (1=Monday..7=Sunday).
// In memory, time.Weekday (0=Sunday..6=Saturday) is the only representation;
// these two functions are the sole conversion points.

// WeekdayFromISO converts a stored ISO weekday number to time.Weekday.
func WeekdayFromISO(n int) (time.Weekday, error) {
	if n < 1 || n > 7 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidWeekday, n)
	}
	if n == 7 {
		return time.Sunday, nil
	}
	return time.Weekday(n), nil
}

// ISOFromWeekday converts a time.Weekday to its stored ISO number.
func ISOFromWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// WeekdaySet is a membership set over the seven weekdays.
type WeekdaySet map[time.Weekday]struct{}

// NewWeekdaySet builds a set from the given weekdays.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	set := make(WeekdaySet, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

// Contains reports whether d is in the set.
func (s WeekdaySet) Contains(d time.Weekday) bool {
	_, ok := s[d]
	return ok
}

// Weekdays returns the members in Sunday-first order.
func (s WeekdaySet) Weekdays() []time.Weekday {
	days := make([]time.Weekday, 0, len(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// IsEligible reports whether the date falls on one of the working weekdays.
func IsEligible(date time.Time, working WeekdaySet) bool {
	return working.Contains(date.Weekday())
}
