package dto

import "github.com/google/uuid"

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	Address   string `json:"address" validate:"omitempty"`
}

type ProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DocumentNumber string    `json:"document_number,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	DateOfBirth    string    `json:"date_of_birth,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	Address        string    `json:"address,omitempty"`
}
