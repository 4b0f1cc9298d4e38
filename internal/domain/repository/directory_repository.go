package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinisalud/portal-backend/internal/domain/entity"
)

type SpecialtyRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Specialty, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Specialty, error)
}

type SpecialistRepository interface {
	// FindAllActive returns active specialists with their person and
	// specialty data preloaded.
	FindAllActive(ctx context.Context, db *gorm.DB) ([]entity.Specialist, error)
	// FindBySpecialty returns active specialists associated with the
	// given specialty.
	FindBySpecialty(ctx context.Context, db *gorm.DB, specialtyID int) ([]entity.Specialist, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Specialist, error)
}

type WorkScheduleRepository interface {
	// FindBySpecialist returns the specialist's schedule entries ordered
	// by weekday then start time.
	FindBySpecialist(ctx context.Context, db *gorm.DB, specialistID uuid.UUID) ([]entity.WorkScheduleEntry, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.WorkScheduleEntry, error)
}
