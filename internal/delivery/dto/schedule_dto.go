package dto

import (
	"github.com/google/uuid"

	"github.com/clinisalud/portal-backend/pkg/calendar"
)

type ScheduleEntryResponse struct {
	ID          int    `json:"id"`
	Weekday     int    `json:"weekday"`
	WeekdayName string `json:"weekday_name"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	// Times holds the expanded starting times when interval expansion
	// was requested.
	Times []string `json:"times,omitempty"`
}

// AvailabilityResponse carries one month of the specialist's calendar.
// SpecialistID, Year and Month echo the request key so a client can
// discard a response that resolved after the selection moved on.
type AvailabilityResponse struct {
	SpecialistID uuid.UUID     `json:"specialist_id"`
	Year         int           `json:"year"`
	Month        int           `json:"month"`
	WorkWeekdays []int         `json:"work_weekdays"`
	Grid         calendar.Grid `json:"grid"`
}

// SlotListResponse carries the bookable slot options for a specialist,
// optionally narrowed to the entries matching a chosen date.
type SlotListResponse struct {
	SpecialistID uuid.UUID               `json:"specialist_id"`
	Date         string                  `json:"date,omitempty"`
	Slots        []ScheduleEntryResponse `json:"slots"`
	Total        int                     `json:"total"`
}
