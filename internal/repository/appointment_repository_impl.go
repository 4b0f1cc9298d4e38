package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinisalud/portal-backend/internal/domain/entity"
	domainRepo "github.com/clinisalud/portal-backend/internal/domain/repository"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.AppointmentRequest) error {
	return db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.AppointmentRequest, error) {
	var appointment entity.AppointmentRequest
	err := db.WithContext(ctx).
		Preload("Specialty").
		Preload("Specialist.Person").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatient(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.AppointmentRequest, error) {
	var appointments []entity.AppointmentRequest
	err := db.WithContext(ctx).
		Preload("Specialty").
		Preload("Specialist.Person").
		Where("patient_id = ?", patientID).
		Order("created_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatusFrom is the guard against double transitions: the UPDATE
// only matches while the row is still in an allowed source state, so
// concurrent cancels resolve to exactly one winner.
func (r *appointmentRepository) UpdateStatusFrom(ctx context.Context, db *gorm.DB, id uuid.UUID, to entity.AppointmentStatus, from []entity.AppointmentStatus) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.AppointmentRequest{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

type statusChangeRepository struct{}

func NewStatusChangeRepository() domainRepo.StatusChangeRepository {
	return &statusChangeRepository{}
}

func (r *statusChangeRepository) Create(ctx context.Context, db *gorm.DB, change *entity.StatusChange) error {
	return db.WithContext(ctx).Create(change).Error
}

func (r *statusChangeRepository) FindByAppointments(ctx context.Context, db *gorm.DB, appointmentIDs []uuid.UUID) ([]entity.StatusChange, error) {
	if len(appointmentIDs) == 0 {
		return nil, nil
	}
	var changes []entity.StatusChange
	err := db.WithContext(ctx).
		Where("appointment_id IN ?", appointmentIDs).
		Order("changed_at ASC").
		Find(&changes).Error
	if err != nil {
		return nil, err
	}
	return changes, nil
}
