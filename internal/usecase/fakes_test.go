package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/clinisalud/portal-backend/internal/domain/entity"
)

// In-memory repository fakes. Usecases pass their *gorm.DB handle
// through untouched, so a nil handle works here.

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeSpecialtyRepo struct {
	specialties map[int]*entity.Specialty
}

func (f *fakeSpecialtyRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Specialty, error) {
	out := make([]entity.Specialty, 0, len(f.specialties))
	for _, s := range f.specialties {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSpecialtyRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Specialty, error) {
	return f.specialties[id], nil
}

type fakeSpecialistRepo struct {
	specialists map[uuid.UUID]*entity.Specialist
}

func (f *fakeSpecialistRepo) FindAllActive(ctx context.Context, db *gorm.DB) ([]entity.Specialist, error) {
	out := make([]entity.Specialist, 0, len(f.specialists))
	for _, s := range f.specialists {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSpecialistRepo) FindBySpecialty(ctx context.Context, db *gorm.DB, specialtyID int) ([]entity.Specialist, error) {
	var out []entity.Specialist
	for _, s := range f.specialists {
		for _, sp := range s.Specialties {
			if sp.ID == specialtyID {
				out = append(out, *s)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeSpecialistRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Specialist, error) {
	return f.specialists[id], nil
}

type fakeWorkScheduleRepo struct {
	entries []entity.WorkScheduleEntry
}

func (f *fakeWorkScheduleRepo) FindBySpecialist(ctx context.Context, db *gorm.DB, specialistID uuid.UUID) ([]entity.WorkScheduleEntry, error) {
	var out []entity.WorkScheduleEntry
	for _, e := range f.entries {
		if e.SpecialistID == specialistID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeWorkScheduleRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.WorkScheduleEntry, error) {
	for i := range f.entries {
		if f.entries[i].ID == id {
			entry := f.entries[i]
			return &entry, nil
		}
	}
	return nil, nil
}

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.AppointmentRequest
	createCalls  int
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, db *gorm.DB, appointment *entity.AppointmentRequest) error {
	f.createCalls++
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	if f.appointments == nil {
		f.appointments = make(map[uuid.UUID]*entity.AppointmentRequest)
	}
	stored := *appointment
	f.appointments[appointment.ID] = &stored
	return nil
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.AppointmentRequest, error) {
	if a, ok := f.appointments[id]; ok {
		found := *a
		return &found, nil
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByPatient(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.AppointmentRequest, error) {
	var out []entity.AppointmentRequest
	for _, a := range f.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatusFrom(ctx context.Context, db *gorm.DB, id uuid.UUID, to entity.AppointmentStatus, from []entity.AppointmentStatus) (int64, error) {
	a, ok := f.appointments[id]
	if !ok {
		return 0, nil
	}
	for _, s := range from {
		if a.Status == s {
			a.Status = to
			return 1, nil
		}
	}
	return 0, nil
}

type fakeStatusChangeRepo struct {
	changes []entity.StatusChange
}

func (f *fakeStatusChangeRepo) Create(ctx context.Context, db *gorm.DB, change *entity.StatusChange) error {
	f.changes = append(f.changes, *change)
	return nil
}

func (f *fakeStatusChangeRepo) FindByAppointments(ctx context.Context, db *gorm.DB, appointmentIDs []uuid.UUID) ([]entity.StatusChange, error) {
	wanted := make(map[uuid.UUID]bool, len(appointmentIDs))
	for _, id := range appointmentIDs {
		wanted[id] = true
	}
	var out []entity.StatusChange
	for _, c := range f.changes {
		if wanted[c.AppointmentID] {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakePersonRepo struct {
	persons map[uuid.UUID]*entity.Person
}

func (f *fakePersonRepo) Create(ctx context.Context, db *gorm.DB, person *entity.Person) error {
	if f.persons == nil {
		f.persons = make(map[uuid.UUID]*entity.Person)
	}
	stored := *person
	f.persons[person.ID] = &stored
	return nil
}

func (f *fakePersonRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Person, error) {
	return f.persons[id], nil
}

func (f *fakePersonRepo) FindByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]entity.Person, error) {
	var out []entity.Person
	for _, id := range ids {
		if p, ok := f.persons[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePersonRepo) Update(ctx context.Context, db *gorm.DB, person *entity.Person) error {
	stored := *person
	f.persons[person.ID] = &stored
	return nil
}
