package entity

import (
	"time"

	"github.com/google/uuid"
)

// Person holds identity data shared by patients and specialists.
// Its ID equals the owning user's ID.
type Person struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName      string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string    `gorm:"type:varchar(100);not null" json:"last_name"`
	DocumentNumber string    `gorm:"type:varchar(20);uniqueIndex" json:"document_number,omitempty"`
	Phone          string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Person) TableName() string {
	return "persons"
}

// FullName returns "First Last" for display.
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}
