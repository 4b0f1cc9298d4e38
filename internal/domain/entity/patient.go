package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents patient-specific profile data keyed by person ID.
type Patient struct {
	PersonID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"person_id"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender      string    `gorm:"type:char(1);not null" json:"gender"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`

	// Relationships
	Person Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
