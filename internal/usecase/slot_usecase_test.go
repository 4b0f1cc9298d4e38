package usecase

import (
	"context"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/clinisalud/portal-backend/internal/domain/entity"
)

func newSlotFixture(stepMinutes int) (SlotUsecase, uuid.UUID) {
	specialistID := uuid.New()

	specialistRepo := &fakeSpecialistRepo{specialists: map[uuid.UUID]*entity.Specialist{
		specialistID: {ID: specialistID},
	}}
	scheduleRepo := &fakeWorkScheduleRepo{entries: []entity.WorkScheduleEntry{
		{ID: 1, SpecialistID: specialistID, Weekday: 1, StartTime: "09:00", EndTime: "11:00"},
		{ID: 2, SpecialistID: specialistID, Weekday: 3, StartTime: "14:00", EndTime: "15:00"},
	}}

	return NewSlotUsecase(nil, testLogger(), specialistRepo, scheduleRepo, stepMinutes), specialistID
}

func TestListSlotsReturnsAllEntries(t *testing.T) {
	u, specialistID := newSlotFixture(30)

	resp, err := u.ListSlots(context.Background(), specialistID, "", false)
	if err != nil {
		t.Fatalf("ListSlots() error = %v", err)
	}

	if resp.Total != 2 {
		t.Fatalf("total = %d, want 2", resp.Total)
	}
	if resp.Slots[0].Times != nil {
		t.Errorf("times populated without expand: %v", resp.Slots[0].Times)
	}
}

func TestListSlotsNarrowsToDate(t *testing.T) {
	u, specialistID := newSlotFixture(30)

	// 2025-06-02 is a Monday; only entry 1 matches
	resp, err := u.ListSlots(context.Background(), specialistID, "2025-06-02", false)
	if err != nil {
		t.Fatalf("ListSlots() error = %v", err)
	}

	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1", resp.Total)
	}
	if resp.Slots[0].ID != 1 {
		t.Errorf("slot ID = %d, want 1", resp.Slots[0].ID)
	}
	if resp.Date != "2025-06-02" {
		t.Errorf("echoed date = %q, want 2025-06-02", resp.Date)
	}
}

func TestListSlotsExpandsIntervals(t *testing.T) {
	u, specialistID := newSlotFixture(30)

	resp, err := u.ListSlots(context.Background(), specialistID, "2025-06-02", true)
	if err != nil {
		t.Fatalf("ListSlots() error = %v", err)
	}

	want := []string{"09:00", "09:30", "10:00", "10:30"}
	if !reflect.DeepEqual(resp.Slots[0].Times, want) {
		t.Errorf("times = %v, want %v", resp.Slots[0].Times, want)
	}
}

func TestListSlotsHonoursConfiguredStep(t *testing.T) {
	u, specialistID := newSlotFixture(60)

	resp, err := u.ListSlots(context.Background(), specialistID, "2025-06-02", true)
	if err != nil {
		t.Fatalf("ListSlots() error = %v", err)
	}

	want := []string{"09:00", "10:00"}
	if !reflect.DeepEqual(resp.Slots[0].Times, want) {
		t.Errorf("times = %v, want %v", resp.Slots[0].Times, want)
	}
}

func TestListSlotsInvalidDate(t *testing.T) {
	u, specialistID := newSlotFixture(30)

	if _, err := u.ListSlots(context.Background(), specialistID, "02/06/2025", false); err != ErrInvalidDate {
		t.Fatalf("ListSlots() error = %v, want ErrInvalidDate", err)
	}
}

func TestListSlotsUnknownSpecialist(t *testing.T) {
	u, _ := newSlotFixture(30)

	if _, err := u.ListSlots(context.Background(), uuid.New(), "", false); err != ErrSpecialistNotFound {
		t.Fatalf("ListSlots() error = %v, want ErrSpecialistNotFound", err)
	}
}
