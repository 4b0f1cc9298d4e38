package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinisalud/portal-backend/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.AppointmentRequest) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.AppointmentRequest, error)
	// FindByPatient returns the patient's requests in insertion order
	// with specialty and specialist person data preloaded.
	FindByPatient(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.AppointmentRequest, error)
	// UpdateStatusFrom transitions the appointment to the target status
	// only while its current status is one of the allowed source states.
	// Returns affected rows: 0 means the guard rejected the transition.
	UpdateStatusFrom(ctx context.Context, db *gorm.DB, id uuid.UUID, to entity.AppointmentStatus, from []entity.AppointmentStatus) (int64, error)
}

type StatusChangeRepository interface {
	Create(ctx context.Context, db *gorm.DB, change *entity.StatusChange) error
	// FindByAppointments returns all transitions for the given
	// appointments ordered oldest first.
	FindByAppointments(ctx context.Context, db *gorm.DB, appointmentIDs []uuid.UUID) ([]entity.StatusChange, error)
}
