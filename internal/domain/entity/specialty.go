package entity

// Specialty is reference data maintained by clinic staff tooling.
// Read-only from this service's perspective.
type Specialty struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`

	// Relationships
	Specialists []Specialist `gorm:"many2many:specialist_specialty;joinForeignKey:SpecialtyID;joinReferences:SpecialistID" json:"specialists,omitempty"`
}

func (Specialty) TableName() string {
	return "specialties"
}
