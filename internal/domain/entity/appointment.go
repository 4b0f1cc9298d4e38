package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the lifecycle tag of an appointment request.
// pending and cancelled are the transitions this service performs;
// approved and completed arrive from clinic staff tooling.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusApproved  AppointmentStatus = "approved"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// AppointmentRequest is a patient's request for a turno with a
// specialist. Date is a plain calendar date, Time the slot's starting
// time, Weekday the slot's stored ISO weekday at creation time.
type AppointmentRequest struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	SpecialistID uuid.UUID         `gorm:"type:uuid;not null;index" json:"specialist_id"`
	SpecialtyID  int               `gorm:"not null;index" json:"specialty_id"`
	Date         time.Time         `gorm:"type:date;not null" json:"date"`
	Time         string            `gorm:"type:time;not null" json:"time"`
	Weekday      int               `gorm:"not null" json:"weekday"`
	Status       AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Specialty  Specialty  `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
	Specialist Specialist `gorm:"foreignKey:SpecialistID" json:"specialist,omitempty"`
}

func (AppointmentRequest) TableName() string {
	return "appointment_requests"
}

// IsPending checks if the request is still awaiting review.
func (a *AppointmentRequest) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsCancelled checks if the request was cancelled.
func (a *AppointmentRequest) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// CanCancel reports whether the patient may still cancel: only early
// states qualify, anything past approved is final.
func (a *AppointmentRequest) CanCancel() bool {
	return a.Status == AppointmentStatusPending || a.Status == AppointmentStatusApproved
}
