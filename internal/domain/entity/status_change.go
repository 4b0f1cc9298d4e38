package entity

import (
	"time"

	"github.com/google/uuid"
)

// StatusChange records one status transition of an appointment request
// and who performed it. The history view resolves "confirmed by" from
// the most recent entry; clinic staff tooling writes entries for
// approvals and completions.
type StatusChange struct {
	ID            int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID uuid.UUID         `gorm:"type:uuid;not null;index" json:"appointment_id"`
	ChangedBy     uuid.UUID         `gorm:"type:uuid;not null" json:"changed_by"`
	NewStatus     AppointmentStatus `gorm:"type:varchar(20);not null" json:"new_status"`
	ChangedAt     time.Time         `gorm:"autoCreateTime;index" json:"changed_at"`

	// Relationships
	Appointment AppointmentRequest `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (StatusChange) TableName() string {
	return "status_change_log"
}
