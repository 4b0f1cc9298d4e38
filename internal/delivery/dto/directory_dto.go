package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SpecialtyResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"specialties"`
	Total       int                 `json:"total"`
}

type SpecialistResponse struct {
	ID              uuid.UUID           `json:"id"`
	FullName        string              `json:"full_name"`
	LicenseNumber   string              `json:"license_number,omitempty"`
	University      string              `json:"university,omitempty"`
	Title           string              `json:"title,omitempty"`
	ConsultationFee decimal.Decimal     `json:"consultation_fee"`
	Specialties     []SpecialtyResponse `json:"specialties,omitempty"`
	WorkWeekdays    []string            `json:"work_weekdays,omitempty"`
	Schedule        []ScheduleEntryResponse `json:"schedule,omitempty"`
}

type SpecialistListResponse struct {
	// SpecialtyID echoes the filter so clients can discard responses
	// that no longer match their current selection.
	SpecialtyID *int                 `json:"specialty_id,omitempty"`
	Specialists []SpecialistResponse `json:"specialists"`
	Total       int                  `json:"total"`
}
