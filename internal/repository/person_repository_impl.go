package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinisalud/portal-backend/internal/domain/entity"
	domainRepo "github.com/clinisalud/portal-backend/internal/domain/repository"
)

type personRepository struct{}

func NewPersonRepository() domainRepo.PersonRepository {
	return &personRepository{}
}

func (r *personRepository) Create(ctx context.Context, db *gorm.DB, person *entity.Person) error {
	return db.WithContext(ctx).Create(person).Error
}

func (r *personRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Person, error) {
	var person entity.Person
	err := db.WithContext(ctx).Where("id = ?", id).First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) FindByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]entity.Person, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var persons []entity.Person
	err := db.WithContext(ctx).Where("id IN ?", ids).Find(&persons).Error
	if err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *personRepository) Update(ctx context.Context, db *gorm.DB, person *entity.Person) error {
	return db.WithContext(ctx).Save(person).Error
}

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByPersonID(ctx context.Context, db *gorm.DB, personID uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("person_id = ?", personID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Omit("Person").Save(patient).Error
}
