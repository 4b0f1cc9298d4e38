package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	SpecialtyID     int       `json:"specialty_id" validate:"required,min=1"`
	SpecialistID    uuid.UUID `json:"specialist_id" validate:"required"`
	Date            string    `json:"date" validate:"required,datetime=2006-01-02"`
	ScheduleEntryID int       `json:"schedule_entry_id" validate:"required,min=1"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             uuid.UUID `json:"id"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Weekday        int       `json:"weekday"`
	Status         string    `json:"status"`
	SpecialtyID    int       `json:"specialty_id"`
	SpecialtyName  string    `json:"specialty_name,omitempty"`
	SpecialistID   uuid.UUID `json:"specialist_id"`
	SpecialistName string    `json:"specialist_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// HistoryEntryResponse is a past (non-pending) appointment together
// with who performed its most recent status change.
type HistoryEntryResponse struct {
	AppointmentResponse
	ConfirmedBy string `json:"confirmed_by,omitempty"`
}

type HistoryListResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
	Total   int                    `json:"total"`
}
