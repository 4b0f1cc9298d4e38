package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/clinisalud/portal-backend/internal/domain/entity"
)

func newDirectoryFixture() (DirectoryUsecase, map[string]uuid.UUID) {
	cardiology := entity.Specialty{ID: 1, Name: "Cardiology"}
	dermatology := entity.Specialty{ID: 2, Name: "Dermatology"}

	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	specialtyRepo := &fakeSpecialtyRepo{specialties: map[int]*entity.Specialty{
		1: &cardiology,
		2: &dermatology,
	}}
	specialistRepo := &fakeSpecialistRepo{specialists: map[uuid.UUID]*entity.Specialist{
		a: {ID: a, Person: entity.Person{ID: a, FirstName: "Ana", LastName: "Gomez"}, Specialties: []entity.Specialty{cardiology}},
		b: {ID: b, Person: entity.Person{ID: b, FirstName: "Luis", LastName: "Rey"}, Specialties: []entity.Specialty{cardiology}},
		c: {ID: c, Person: entity.Person{ID: c, FirstName: "Carla", LastName: "Diaz"}, Specialties: []entity.Specialty{dermatology}},
	}}

	ids := map[string]uuid.UUID{"a": a, "b": b, "c": c}
	return NewDirectoryUsecase(nil, testLogger(), specialtyRepo, specialistRepo), ids
}

func TestListSpecialistsFiltersBySpecialty(t *testing.T) {
	u, ids := newDirectoryFixture()

	specialtyID := 2
	resp, err := u.ListSpecialists(context.Background(), &specialtyID)
	if err != nil {
		t.Fatalf("ListSpecialists() error = %v", err)
	}

	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1", resp.Total)
	}
	if resp.Specialists[0].ID != ids["c"] {
		t.Errorf("specialist = %s, want %s", resp.Specialists[0].ID, ids["c"])
	}
	if resp.SpecialtyID == nil || *resp.SpecialtyID != 2 {
		t.Errorf("echoed specialty filter = %v, want 2", resp.SpecialtyID)
	}
}

func TestListSpecialistsWithoutFilter(t *testing.T) {
	u, _ := newDirectoryFixture()

	resp, err := u.ListSpecialists(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListSpecialists() error = %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("total = %d, want 3", resp.Total)
	}
	if resp.SpecialtyID != nil {
		t.Errorf("echoed specialty filter = %v, want nil", resp.SpecialtyID)
	}
}

func TestListSpecialistsUnknownSpecialty(t *testing.T) {
	u, _ := newDirectoryFixture()

	specialtyID := 99
	if _, err := u.ListSpecialists(context.Background(), &specialtyID); err != ErrSpecialtyNotFound {
		t.Fatalf("ListSpecialists() error = %v, want ErrSpecialtyNotFound", err)
	}
}

func TestGetSpecialistResolvesName(t *testing.T) {
	u, ids := newDirectoryFixture()

	resp, err := u.GetSpecialist(context.Background(), ids["a"])
	if err != nil {
		t.Fatalf("GetSpecialist() error = %v", err)
	}
	if resp.FullName != "Ana Gomez" {
		t.Errorf("full name = %q, want Ana Gomez", resp.FullName)
	}
}

func TestGetSpecialistNotFound(t *testing.T) {
	u, _ := newDirectoryFixture()

	if _, err := u.GetSpecialist(context.Background(), uuid.New()); err != ErrSpecialistNotFound {
		t.Fatalf("GetSpecialist() error = %v, want ErrSpecialistNotFound", err)
	}
}
