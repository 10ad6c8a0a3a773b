package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type DayHoursRequest struct {
	Start string `json:"start" validate:"omitempty,datetime=15:04"`
	End   string `json:"end" validate:"omitempty,datetime=15:04"`
}

type CreateDentistRequest struct {
	FirstName      string                     `json:"first_name" validate:"required,max=100"`
	LastName       string                     `json:"last_name" validate:"required,max=100"`
	Email          string                     `json:"email" validate:"required,email"`
	Phone          string                     `json:"phone" validate:"required,min=10,max=30"`
	Specialization string                     `json:"specialization" validate:"required,max=100"`
	LicenseNumber  string                     `json:"license_number" validate:"required,max=50"`
	WorkingHours   map[string]DayHoursRequest `json:"working_hours" validate:"omitempty,dive"`
}

// UpdateDentistRequest carries a full replacement of the dentist record.
type UpdateDentistRequest = CreateDentistRequest

// Response DTOs

type DentistResponse struct {
	ID             uuid.UUID                  `json:"id"`
	FirstName      string                     `json:"first_name"`
	LastName       string                     `json:"last_name"`
	Email          string                     `json:"email"`
	Phone          string                     `json:"phone"`
	Specialization string                     `json:"specialization"`
	LicenseNumber  string                     `json:"license_number"`
	WorkingHours   map[string]DayHoursRequest `json:"working_hours,omitempty"`
	IsActive       bool                       `json:"is_active"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

type DentistListResponse struct {
	Dentists []DentistResponse `json:"dentists"`
	Total    int               `json:"total"`
}
