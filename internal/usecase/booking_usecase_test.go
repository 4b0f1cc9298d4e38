package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/clinisalud/portal-backend/internal/delivery/dto"
	"github.com/clinisalud/portal-backend/internal/delivery/http/middleware"
	"github.com/clinisalud/portal-backend/internal/domain/entity"
)

type bookingFixture struct {
	usecase      BookingUsecase
	appointments *fakeAppointmentRepo
	changes      *fakeStatusChangeRepo
	persons      *fakePersonRepo
	patientID    uuid.UUID
	specialistID uuid.UUID
}

// newBookingFixture wires a cardiology specialist who attends Mondays
// 09:00-12:00 (entry 1) and Wednesdays 14:00-18:00 (entry 2).
func newBookingFixture() *bookingFixture {
	patientID := uuid.New()
	specialistID := uuid.New()

	specialtyRepo := &fakeSpecialtyRepo{specialties: map[int]*entity.Specialty{
		1: {ID: 1, Name: "Cardiology"},
	}}
	specialistRepo := &fakeSpecialistRepo{specialists: map[uuid.UUID]*entity.Specialist{
		specialistID: {ID: specialistID, Person: entity.Person{ID: specialistID, FirstName: "Ana", LastName: "Gomez"}},
	}}
	scheduleRepo := &fakeWorkScheduleRepo{entries: []entity.WorkScheduleEntry{
		{ID: 1, SpecialistID: specialistID, Weekday: 1, StartTime: "09:00", EndTime: "12:00"},
		{ID: 2, SpecialistID: specialistID, Weekday: 3, StartTime: "14:00", EndTime: "18:00"},
	}}
	appointments := &fakeAppointmentRepo{}
	changes := &fakeStatusChangeRepo{}
	persons := &fakePersonRepo{persons: map[uuid.UUID]*entity.Person{
		patientID: {ID: patientID, FirstName: "Juan", LastName: "Perez"},
	}}

	u := NewBookingUsecase(nil, testLogger(), appointments, changes, scheduleRepo, specialtyRepo, specialistRepo, persons)

	return &bookingFixture{
		usecase:      u,
		appointments: appointments,
		changes:      changes,
		persons:      persons,
		patientID:    patientID,
		specialistID: specialistID,
	}
}

func (f *bookingFixture) patientContext() context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, f.patientID)
	return context.WithValue(ctx, middleware.RoleIDKey, entity.RoleIDPatient)
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	f := newBookingFixture()

	// 2025-06-02 is a Monday, matching entry 1
	resp, err := f.usecase.Submit(f.patientContext(), &dto.CreateAppointmentRequest{
		SpecialtyID:     1,
		SpecialistID:    f.specialistID,
		Date:            "2025-06-02",
		ScheduleEntryID: 1,
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if resp.Status != string(entity.AppointmentStatusPending) {
		t.Errorf("status = %q, want %q", resp.Status, entity.AppointmentStatusPending)
	}
	if resp.Time != "09:00" {
		t.Errorf("time = %q, want 09:00", resp.Time)
	}
	if resp.Date != "2025-06-02" {
		t.Errorf("date = %q, want 2025-06-02", resp.Date)
	}
	if resp.SpecialtyName != "Cardiology" {
		t.Errorf("specialty name = %q, want Cardiology", resp.SpecialtyName)
	}
	if resp.SpecialistName != "Ana Gomez" {
		t.Errorf("specialist name = %q, want Ana Gomez", resp.SpecialistName)
	}
	if f.appointments.createCalls != 1 {
		t.Errorf("create calls = %d, want 1", f.appointments.createCalls)
	}
}

func TestSubmitWithoutIdentityWritesNothing(t *testing.T) {
	f := newBookingFixture()

	_, err := f.usecase.Submit(context.Background(), &dto.CreateAppointmentRequest{
		SpecialtyID:     1,
		SpecialistID:    f.specialistID,
		Date:            "2025-06-02",
		ScheduleEntryID: 1,
	})
	if err != ErrNotAuthenticated {
		t.Fatalf("Submit() error = %v, want ErrNotAuthenticated", err)
	}
	if f.appointments.createCalls != 0 {
		t.Errorf("create calls = %d, want 0", f.appointments.createCalls)
	}
}

func TestSubmitRejectsNonPatientRole(t *testing.T) {
	f := newBookingFixture()

	ctx := context.WithValue(context.Background(), middleware.UserIDKey, f.patientID)
	ctx = context.WithValue(ctx, middleware.RoleIDKey, entity.RoleIDSpecialist)

	_, err := f.usecase.Submit(ctx, &dto.CreateAppointmentRequest{
		SpecialtyID:     1,
		SpecialistID:    f.specialistID,
		Date:            "2025-06-02",
		ScheduleEntryID: 1,
	})
	if err != ErrNotPatient {
		t.Fatalf("Submit() error = %v, want ErrNotPatient", err)
	}
}

func TestSubmitRejectsDateOffWorkingWeekday(t *testing.T) {
	f := newBookingFixture()

	// 2025-06-03 is a Tuesday, entry 1 covers Mondays
	_, err := f.usecase.Submit(f.patientContext(), &dto.CreateAppointmentRequest{
		SpecialtyID:     1,
		SpecialistID:    f.specialistID,
		Date:            "2025-06-03",
		ScheduleEntryID: 1,
	})
	if err != ErrDateNotAvailable {
		t.Fatalf("Submit() error = %v, want ErrDateNotAvailable", err)
	}
	if f.appointments.createCalls != 0 {
		t.Errorf("create calls = %d, want 0", f.appointments.createCalls)
	}
}

func TestSubmitRejectsUnknownSpecialist(t *testing.T) {
	f := newBookingFixture()

	_, err := f.usecase.Submit(f.patientContext(), &dto.CreateAppointmentRequest{
		SpecialtyID:     1,
		SpecialistID:    uuid.New(),
		Date:            "2025-06-02",
		ScheduleEntryID: 1,
	})
	if err != ErrSpecialistNotFound {
		t.Fatalf("Submit() error = %v, want ErrSpecialistNotFound", err)
	}
}

func TestSubmitRejectsForeignScheduleEntry(t *testing.T) {
	f := newBookingFixture()

	other := uuid.New()
	repo := &fakeSpecialistRepo{specialists: map[uuid.UUID]*entity.Specialist{
		f.specialistID: {ID: f.specialistID},
		other:          {ID: other, Person: entity.Person{ID: other, FirstName: "Luis", LastName: "Rey"}},
	}}
	scheduleRepo := &fakeWorkScheduleRepo{entries: []entity.WorkScheduleEntry{
		{ID: 1, SpecialistID: f.specialistID, Weekday: 1, StartTime: "09:00", EndTime: "12:00"},
	}}
	specialtyRepo := &fakeSpecialtyRepo{specialties: map[int]*entity.Specialty{1: {ID: 1, Name: "Cardiology"}}}
	u := NewBookingUsecase(nil, testLogger(), f.appointments, f.changes, scheduleRepo, specialtyRepo, repo, f.persons)

	// Entry 1 belongs to the first specialist
	_, err := u.Submit(f.patientContext(), &dto.CreateAppointmentRequest{
		SpecialtyID:     1,
		SpecialistID:    other,
		Date:            "2025-06-02",
		ScheduleEntryID: 1,
	})
	if err != ErrSlotMismatch {
		t.Fatalf("Submit() error = %v, want ErrSlotMismatch", err)
	}
	if f.appointments.createCalls != 0 {
		t.Errorf("create calls = %d, want 0", f.appointments.createCalls)
	}
}

func TestSubmitRejectsUnknownSpecialty(t *testing.T) {
	f := newBookingFixture()

	_, err := f.usecase.Submit(f.patientContext(), &dto.CreateAppointmentRequest{
		SpecialtyID:     99,
		SpecialistID:    f.specialistID,
		Date:            "2025-06-02",
		ScheduleEntryID: 1,
	})
	if err != ErrSpecialtyNotFound {
		t.Fatalf("Submit() error = %v, want ErrSpecialtyNotFound", err)
	}
}

func TestSubmitAllowsDuplicateSelections(t *testing.T) {
	f := newBookingFixture()

	req := &dto.CreateAppointmentRequest{
		SpecialtyID:     1,
		SpecialistID:    f.specialistID,
		Date:            "2025-06-02",
		ScheduleEntryID: 1,
	}

	if _, err := f.usecase.Submit(f.patientContext(), req); err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}
	if _, err := f.usecase.Submit(f.patientContext(), req); err != nil {
		t.Fatalf("second Submit() error = %v", err)
	}
	if f.appointments.createCalls != 2 {
		t.Errorf("create calls = %d, want 2", f.appointments.createCalls)
	}
}

func TestCancelPendingAppointment(t *testing.T) {
	f := newBookingFixture()
	ctx := f.patientContext()

	resp, err := f.usecase.Submit(ctx, &dto.CreateAppointmentRequest{
		SpecialtyID:     1,
		SpecialistID:    f.specialistID,
		Date:            "2025-06-02",
		ScheduleEntryID: 1,
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if err := f.usecase.Cancel(ctx, resp.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	stored := f.appointments.appointments[resp.ID]
	if stored.Status != entity.AppointmentStatusCancelled {
		t.Errorf("status = %q, want %q", stored.Status, entity.AppointmentStatusCancelled)
	}
	if len(f.changes.changes) != 1 {
		t.Fatalf("status change rows = %d, want 1", len(f.changes.changes))
	}
	if f.changes.changes[0].ChangedBy != f.patientID {
		t.Errorf("change recorded by %s, want %s", f.changes.changes[0].ChangedBy, f.patientID)
	}
}

func TestCancelIsNotRepeatable(t *testing.T) {
	f := newBookingFixture()
	ctx := f.patientContext()

	resp, err := f.usecase.Submit(ctx, &dto.CreateAppointmentRequest{
		SpecialtyID:     1,
		SpecialistID:    f.specialistID,
		Date:            "2025-06-02",
		ScheduleEntryID: 1,
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if err := f.usecase.Cancel(ctx, resp.ID); err != nil {
		t.Fatalf("first Cancel() error = %v", err)
	}
	if err := f.usecase.Cancel(ctx, resp.ID); err != ErrCannotCancel {
		t.Fatalf("second Cancel() error = %v, want ErrCannotCancel", err)
	}
}

func TestCancelRejectsCompletedAppointment(t *testing.T) {
	f := newBookingFixture()
	ctx := f.patientContext()

	id := uuid.New()
	f.appointments.appointments = map[uuid.UUID]*entity.AppointmentRequest{
		id: {
			ID:           id,
			PatientID:    f.patientID,
			SpecialistID: f.specialistID,
			SpecialtyID:  1,
			Status:       entity.AppointmentStatusCompleted,
		},
	}

	if err := f.usecase.Cancel(ctx, id); err != ErrCannotCancel {
		t.Fatalf("Cancel() error = %v, want ErrCannotCancel", err)
	}
}

func TestCancelRejectsForeignAppointment(t *testing.T) {
	f := newBookingFixture()

	id := uuid.New()
	f.appointments.appointments = map[uuid.UUID]*entity.AppointmentRequest{
		id: {
			ID:           id,
			PatientID:    uuid.New(),
			SpecialistID: f.specialistID,
			SpecialtyID:  1,
			Status:       entity.AppointmentStatusPending,
		},
	}

	if err := f.usecase.Cancel(f.patientContext(), id); err != ErrAppointmentNotOwned {
		t.Fatalf("Cancel() error = %v, want ErrAppointmentNotOwned", err)
	}
}

func TestHistoryResolvesWhoResolvedEach(t *testing.T) {
	f := newBookingFixture()
	ctx := f.patientContext()

	staffID := uuid.New()
	f.persons.persons[staffID] = &entity.Person{ID: staffID, FirstName: "Carla", LastName: "Diaz"}

	approved := uuid.New()
	pending := uuid.New()
	f.appointments.appointments = map[uuid.UUID]*entity.AppointmentRequest{
		approved: {
			ID:           approved,
			PatientID:    f.patientID,
			SpecialistID: f.specialistID,
			SpecialtyID:  1,
			Date:         time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			Status:       entity.AppointmentStatusApproved,
		},
		pending: {
			ID:           pending,
			PatientID:    f.patientID,
			SpecialistID: f.specialistID,
			SpecialtyID:  1,
			Date:         time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			Status:       entity.AppointmentStatusPending,
		},
	}
	f.changes.changes = []entity.StatusChange{
		{AppointmentID: approved, ChangedBy: staffID, NewStatus: entity.AppointmentStatusApproved},
	}

	history, err := f.usecase.History(ctx)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}

	if history.Total != 1 {
		t.Fatalf("history entries = %d, want 1 (pending excluded)", history.Total)
	}
	entry := history.Entries[0]
	if entry.ID != approved {
		t.Errorf("entry ID = %s, want %s", entry.ID, approved)
	}
	if entry.ConfirmedBy != "Carla Diaz" {
		t.Errorf("confirmed by = %q, want Carla Diaz", entry.ConfirmedBy)
	}
}

func TestHistoryKeepsLatestChangePerAppointment(t *testing.T) {
	f := newBookingFixture()
	ctx := f.patientContext()

	approver := uuid.New()
	canceller := uuid.New()
	f.persons.persons[approver] = &entity.Person{ID: approver, FirstName: "Carla", LastName: "Diaz"}
	f.persons.persons[canceller] = &entity.Person{ID: canceller, FirstName: "Juan", LastName: "Perez"}

	id := uuid.New()
	f.appointments.appointments = map[uuid.UUID]*entity.AppointmentRequest{
		id: {
			ID:           id,
			PatientID:    f.patientID,
			SpecialistID: f.specialistID,
			SpecialtyID:  1,
			Date:         time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			Status:       entity.AppointmentStatusCancelled,
		},
	}
	// Oldest first: approval then cancellation
	f.changes.changes = []entity.StatusChange{
		{AppointmentID: id, ChangedBy: approver, NewStatus: entity.AppointmentStatusApproved},
		{AppointmentID: id, ChangedBy: canceller, NewStatus: entity.AppointmentStatusCancelled},
	}

	history, err := f.usecase.History(ctx)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if history.Total != 1 {
		t.Fatalf("history entries = %d, want 1", history.Total)
	}
	if got := history.Entries[0].ConfirmedBy; got != "Juan Perez" {
		t.Errorf("confirmed by = %q, want Juan Perez (latest change wins)", got)
	}
}

func TestListMineReturnsOwnRequestsOnly(t *testing.T) {
	f := newBookingFixture()
	ctx := f.patientContext()

	mine := uuid.New()
	other := uuid.New()
	f.appointments.appointments = map[uuid.UUID]*entity.AppointmentRequest{
		mine: {
			ID:        mine,
			PatientID: f.patientID,
			Status:    entity.AppointmentStatusPending,
		},
		other: {
			ID:        other,
			PatientID: uuid.New(),
			Status:    entity.AppointmentStatusPending,
		},
	}

	list, err := f.usecase.ListMine(ctx)
	if err != nil {
		t.Fatalf("ListMine() error = %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("total = %d, want 1", list.Total)
	}
	if list.Appointments[0].ID != mine {
		t.Errorf("appointment ID = %s, want %s", list.Appointments[0].ID, mine)
	}
}
