package calendar

import (
	"errors"
	"testing"
)

func TestExpandInterval(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		step  int
		want  []string
	}{
		{"full hour", "09:00", "10:00", 30, []string{"09:00", "09:30"}},
		{"window narrower than step", "09:00", "09:15", 30, []string{}},
		{"exact single step", "09:00", "09:30", 30, []string{"09:00"}},
		{"uneven tail dropped", "09:00", "10:10", 30, []string{"09:00", "09:30"}},
		{"start equals end", "09:00", "09:00", 30, []string{}},
		{"start after end", "10:00", "09:00", 30, []string{}},
		{"afternoon window 15m", "14:00", "15:00", 15, []string{"14:00", "14:15", "14:30", "14:45"}},
		{"seconds tolerated", "09:00:00", "10:00:00", 30, []string{"09:00", "09:30"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ExpandInterval(c.start, c.end, c.step)
			if err != nil {
				t.Fatalf("ExpandInterval(%q, %q, %d): %v", c.start, c.end, c.step, err)
			}
			if len(got) != len(c.want) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
			for i := range c.want {
				if got[i] != c.want[i] {
					t.Fatalf("got %v, want %v", got, c.want)
				}
			}
		})
	}
}

func TestExpandIntervalErrors(t *testing.T) {
	if _, err := ExpandInterval("9am", "10:00", 30); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("bad start time: got %v, want ErrInvalidTimeFormat", err)
	}
	if _, err := ExpandInterval("09:00", "later", 30); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("bad end time: got %v, want ErrInvalidTimeFormat", err)
	}
	if _, err := ExpandInterval("09:00", "10:00", 0); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("zero step: got %v, want ErrInvalidStep", err)
	}
	if _, err := ExpandInterval("09:00", "10:00", -15); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("negative step: got %v, want ErrInvalidStep", err)
	}
}
