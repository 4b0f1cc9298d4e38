package converter

import (
	"github.com/clinisalud/portal-backend/internal/delivery/dto"
	"github.com/clinisalud/portal-backend/internal/domain/entity"
)

// SpecialtyToResponse converts a Specialty entity to its DTO
func SpecialtyToResponse(specialty *entity.Specialty) dto.SpecialtyResponse {
	return dto.SpecialtyResponse{
		ID:   specialty.ID,
		Name: specialty.Name,
	}
}

// SpecialtiesToResponses converts a slice of Specialty entities
func SpecialtiesToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, len(specialties))
	for i := range specialties {
		responses[i] = SpecialtyToResponse(&specialties[i])
	}
	return responses
}

// SpecialistToResponse converts a Specialist entity, resolving the
// person name, associated specialties and distinct work weekday names.
func SpecialistToResponse(specialist *entity.Specialist) dto.SpecialistResponse {
	response := dto.SpecialistResponse{
		ID:              specialist.ID,
		FullName:        specialist.Person.FullName(),
		LicenseNumber:   specialist.LicenseNumber,
		University:      specialist.University,
		Title:           specialist.Title,
		ConsultationFee: specialist.ConsultationFee,
	}

	if len(specialist.Specialties) > 0 {
		response.Specialties = SpecialtiesToResponses(specialist.Specialties)
	}

	if len(specialist.Schedule) > 0 {
		seen := make(map[string]bool)
		for i := range specialist.Schedule {
			entry := ScheduleEntryToResponse(&specialist.Schedule[i])
			response.Schedule = append(response.Schedule, entry)
			if entry.WeekdayName != "" && !seen[entry.WeekdayName] {
				seen[entry.WeekdayName] = true
				response.WorkWeekdays = append(response.WorkWeekdays, entry.WeekdayName)
			}
		}
	}

	return response
}

// SpecialistsToResponses converts a slice of Specialist entities
func SpecialistsToResponses(specialists []entity.Specialist) []dto.SpecialistResponse {
	responses := make([]dto.SpecialistResponse, len(specialists))
	for i := range specialists {
		responses[i] = SpecialistToResponse(&specialists[i])
	}
	return responses
}
