package entity

import (
	"testing"
	"time"
)

func TestWorkScheduleEntryMatchesDate(t *testing.T) {
	monday := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		weekday int
		date    time.Time
		want    bool
	}{
		{"monday entry on a monday", 1, monday, true},
		{"monday entry on a sunday", 1, sunday, false},
		{"sunday stored as 7", 7, sunday, true},
		{"corrupt weekday matches nothing", 0, monday, false},
		{"corrupt weekday matches nothing high", 8, sunday, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := WorkScheduleEntry{Weekday: c.weekday}
			if got := e.MatchesDate(c.date); got != c.want {
				t.Errorf("MatchesDate = %v, want %v", got, c.want)
			}
		})
	}
}
