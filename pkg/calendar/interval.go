package calendar

import (
	"errors"
	"time"
)

// DefaultStepMinutes is the slot width used when no step is configured.
const DefaultStepMinutes = 30

// TimeLayout is the HH:MM wire format for schedule times.
const TimeLayout = "15:04"

var (
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrInvalidStep       = errors.New("step must be a positive number of minutes")
)

// ParseClock parses an HH:MM label. Seconds from a time column
// ("09:00:00") are tolerated and dropped.
func ParseClock(s string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidTimeFormat
	}
	return t, nil
}

// ExpandInterval generates successive HH:MM labels from start,
// stepMinutes apart. A label is emitted only when the whole step fits
// before end, so the end time itself is never a bookable starting point
// and a window narrower than one step yields an empty slice.
func ExpandInterval(start, end string, stepMinutes int) ([]string, error) {
	if stepMinutes <= 0 {
		return nil, ErrInvalidStep
	}

	from, err := ParseClock(start)
	if err != nil {
		return nil, err
	}
	to, err := ParseClock(end)
	if err != nil {
		return nil, err
	}

	labels := []string{}
	step := time.Duration(stepMinutes) * time.Minute
	for t := from; !t.Add(step).After(to); t = t.Add(step) {
		labels = append(labels, t.Format(TimeLayout))
	}
	return labels, nil
}
