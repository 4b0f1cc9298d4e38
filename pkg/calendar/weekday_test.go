package calendar

import (
	"testing"
	"time"
)

func TestWeekdayFromISO(t *testing.T) {
	cases := []struct {
		iso     int
		want    time.Weekday
		wantErr bool
	}{
		{1, time.Monday, false},
		{2, time.Tuesday, false},
		{3, time.Wednesday, false},
		{4, time.Thursday, false},
		{5, time.Friday, false},
		{6, time.Saturday, false},
		{7, time.Sunday, false},
		{0, 0, true},
		{8, 0, true},
		{-1, 0, true},
	}

	for _, c := range cases {
		got, err := WeekdayFromISO(c.iso)
		if c.wantErr {
			if err == nil {
				t.Errorf("WeekdayFromISO(%d): expected error, got %v", c.iso, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("WeekdayFromISO(%d): unexpected error %v", c.iso, err)
			continue
		}
		if got != c.want {
			t.Errorf("WeekdayFromISO(%d) = %v, want %v", c.iso, got, c.want)
		}
	}
}

func TestISOFromWeekdayRoundTrip(t *testing.T) {
	for iso := 1; iso <= 7; iso++ {
		d, err := WeekdayFromISO(iso)
		if err != nil {
			t.Fatalf("WeekdayFromISO(%d): %v", iso, err)
		}
		if back := ISOFromWeekday(d); back != iso {
			t.Errorf("ISOFromWeekday(%v) = %d, want %d", d, back, iso)
		}
	}
}

func TestIsEligibleFullWeek(t *testing.T) {
	// 2025-06-01 is a Sunday; walk a full 7-day cycle against a set that
	// includes Sunday, so the Saturday->Sunday wraparound is covered.
	working := NewWeekdaySet(time.Sunday, time.Tuesday, time.Friday)
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		want := working.Contains(date.Weekday())
		if got := IsEligible(date, working); got != want {
			t.Errorf("IsEligible(%s) = %v, want %v", date.Format("2006-01-02 Mon"), got, want)
		}
	}
}

func TestIsEligibleEmptySet(t *testing.T) {
	empty := NewWeekdaySet()
	date := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		if IsEligible(date.AddDate(0, 0, i), empty) {
			t.Errorf("empty set must make every date ineligible, %s was eligible", date.AddDate(0, 0, i))
		}
	}
}

func TestWeekdaySetOrder(t *testing.T) {
	set := NewWeekdaySet(time.Friday, time.Sunday, time.Monday)
	got := set.Weekdays()
	want := []time.Weekday{time.Sunday, time.Monday, time.Friday}
	if len(got) != len(want) {
		t.Fatalf("Weekdays() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Weekdays() = %v, want %v", got, want)
		}
	}
}
