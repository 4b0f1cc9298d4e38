package converter

import (
	"github.com/clinisalud/portal-backend/internal/delivery/dto"
	"github.com/clinisalud/portal-backend/internal/domain/entity"
)

// ScheduleEntryToResponse converts a WorkScheduleEntry to its DTO.
// An entry with a corrupt stored weekday gets an empty weekday name.
func ScheduleEntryToResponse(entry *entity.WorkScheduleEntry) dto.ScheduleEntryResponse {
	response := dto.ScheduleEntryResponse{
		ID:        entry.ID,
		Weekday:   entry.Weekday,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
	}
	if d, err := entry.GoWeekday(); err == nil {
		response.WeekdayName = d.String()
	}
	return response
}

// ScheduleEntriesToResponses converts a slice of WorkScheduleEntry
func ScheduleEntriesToResponses(entries []entity.WorkScheduleEntry) []dto.ScheduleEntryResponse {
	responses := make([]dto.ScheduleEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ScheduleEntryToResponse(&entries[i])
	}
	return responses
}
