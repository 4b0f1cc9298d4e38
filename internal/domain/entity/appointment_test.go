package entity

import "testing"

func TestCanCancel(t *testing.T) {
	cases := []struct {
		status AppointmentStatus
		want   bool
	}{
		{AppointmentStatusPending, true},
		{AppointmentStatusApproved, true},
		{AppointmentStatusCancelled, false},
		{AppointmentStatusCompleted, false},
		{AppointmentStatus("rejected"), false},
	}

	for _, c := range cases {
		a := AppointmentRequest{Status: c.status}
		if got := a.CanCancel(); got != c.want {
			t.Errorf("CanCancel with status %q = %v, want %v", c.status, got, c.want)
		}
	}
}
