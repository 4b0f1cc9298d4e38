package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Specialist represents a clinic specialist. Its ID equals the
// person row that carries the name.
type Specialist struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	LicenseNumber   string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	University      string          `gorm:"type:varchar(150)" json:"university,omitempty"`
	Title           string          `gorm:"type:varchar(150)" json:"title,omitempty"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultation_fee"`
	IsActive        *bool           `gorm:"not null;default:true;index" json:"is_active"`

	// Relationships
	Person      Person              `gorm:"foreignKey:ID;references:ID" json:"person,omitempty"`
	Specialties []Specialty         `gorm:"many2many:specialist_specialty;joinForeignKey:SpecialistID;joinReferences:SpecialtyID" json:"specialties,omitempty"`
	Schedule    []WorkScheduleEntry `gorm:"foreignKey:SpecialistID" json:"schedule,omitempty"`
}

func (Specialist) TableName() string {
	return "specialists"
}
