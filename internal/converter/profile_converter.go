package converter

import (
	"github.com/clinisalud/portal-backend/internal/delivery/dto"
	"github.com/clinisalud/portal-backend/internal/domain/entity"
)

// ProfileToResponse assembles the profile view from the user, person
// and (optional) patient rows sharing one ID.
func ProfileToResponse(user *entity.User, person *entity.Person, patient *entity.Patient) *dto.ProfileResponse {
	response := &dto.ProfileResponse{
		ID:    user.ID,
		Email: user.Email,
	}

	if person != nil {
		response.FirstName = person.FirstName
		response.LastName = person.LastName
		response.DocumentNumber = person.DocumentNumber
		response.Phone = person.Phone
	}

	if patient != nil {
		response.DateOfBirth = patient.DateOfBirth.Format(dateLayout)
		response.Gender = patient.Gender
		response.Address = patient.Address
	}

	return response
}

// UserToResponse converts a User entity with its person and role data.
func UserToResponse(user *entity.User) *dto.UserResponse {
	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role.RoleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.Person != nil {
		response.FullName = user.Person.FullName()
	}
	return response
}
