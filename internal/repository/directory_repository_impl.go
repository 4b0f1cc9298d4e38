package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinisalud/portal-backend/internal/domain/entity"
	domainRepo "github.com/clinisalud/portal-backend/internal/domain/repository"
)

type specialtyRepository struct{}

func NewSpecialtyRepository() domainRepo.SpecialtyRepository {
	return &specialtyRepository{}
}

func (r *specialtyRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	err := db.WithContext(ctx).Order("name ASC").Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *specialtyRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Specialty, error) {
	var specialty entity.Specialty
	err := db.WithContext(ctx).Where("id = ?", id).First(&specialty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialty, nil
}

type specialistRepository struct{}

func NewSpecialistRepository() domainRepo.SpecialistRepository {
	return &specialistRepository{}
}

func (r *specialistRepository) FindAllActive(ctx context.Context, db *gorm.DB) ([]entity.Specialist, error) {
	var specialists []entity.Specialist
	err := db.WithContext(ctx).
		Preload("Person").
		Preload("Specialties").
		Preload("Schedule").
		Where("is_active = ?", true).
		Find(&specialists).Error
	if err != nil {
		return nil, err
	}
	return specialists, nil
}

func (r *specialistRepository) FindBySpecialty(ctx context.Context, db *gorm.DB, specialtyID int) ([]entity.Specialist, error) {
	var specialists []entity.Specialist
	err := db.WithContext(ctx).
		Joins("JOIN specialist_specialty ON specialist_specialty.specialist_id = specialists.id").
		Where("specialist_specialty.specialty_id = ?", specialtyID).
		Where("specialists.is_active = ?", true).
		Preload("Person").
		Find(&specialists).Error
	if err != nil {
		return nil, err
	}
	return specialists, nil
}

func (r *specialistRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Specialist, error) {
	var specialist entity.Specialist
	err := db.WithContext(ctx).
		Preload("Person").
		Preload("Specialties").
		Preload("Schedule", func(db *gorm.DB) *gorm.DB {
			return db.Order("weekday ASC, start_time ASC")
		}).
		Where("id = ?", id).
		First(&specialist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialist, nil
}

type workScheduleRepository struct{}

func NewWorkScheduleRepository() domainRepo.WorkScheduleRepository {
	return &workScheduleRepository{}
}

func (r *workScheduleRepository) FindBySpecialist(ctx context.Context, db *gorm.DB, specialistID uuid.UUID) ([]entity.WorkScheduleEntry, error) {
	var entries []entity.WorkScheduleEntry
	err := db.WithContext(ctx).
		Where("specialist_id = ?", specialistID).
		Order("weekday ASC, start_time ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *workScheduleRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.WorkScheduleEntry, error) {
	var entry entity.WorkScheduleEntry
	err := db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
