package converter

import (
	"github.com/clinisalud/portal-backend/internal/delivery/dto"
	"github.com/clinisalud/portal-backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// AppointmentToResponse converts an AppointmentRequest entity,
// resolving specialty and specialist names when preloaded.
func AppointmentToResponse(appointment *entity.AppointmentRequest) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:           appointment.ID,
		Date:         appointment.Date.Format(dateLayout),
		Time:         appointment.Time,
		Weekday:      appointment.Weekday,
		Status:       string(appointment.Status),
		SpecialtyID:  appointment.SpecialtyID,
		SpecialistID: appointment.SpecialistID,
		CreatedAt:    appointment.CreatedAt,
	}

	if appointment.Specialty.ID != 0 {
		response.SpecialtyName = appointment.Specialty.Name
	}
	if appointment.Specialist.Person.FirstName != "" || appointment.Specialist.Person.LastName != "" {
		response.SpecialistName = appointment.Specialist.Person.FullName()
	}

	return response
}

// AppointmentsToResponses converts a slice of AppointmentRequest entities
func AppointmentsToResponses(appointments []entity.AppointmentRequest) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		resp := AppointmentToResponse(&appointments[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
