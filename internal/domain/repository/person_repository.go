package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinisalud/portal-backend/internal/domain/entity"
)

type PersonRepository interface {
	Create(ctx context.Context, db *gorm.DB, person *entity.Person) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Person, error)
	FindByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]entity.Person, error)
	Update(ctx context.Context, db *gorm.DB, person *entity.Person) error
}

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByPersonID(ctx context.Context, db *gorm.DB, personID uuid.UUID) (*entity.Patient, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
}
