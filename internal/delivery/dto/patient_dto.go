package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AddressRequest struct {
	Street     string `json:"street" validate:"required,max=100"`
	City       string `json:"city" validate:"required,max=50"`
	Province   string `json:"province" validate:"required,max=50"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}

type EmergencyContactRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Phone        string `json:"phone" validate:"required,min=10,max=30"`
	Relationship string `json:"relationship" validate:"required,max=50"`
}

type InsuranceRequest struct {
	Provider     string `json:"provider" validate:"omitempty,max=100"`
	PolicyNumber string `json:"policy_number" validate:"omitempty,max=50"`
}

type CreatePatientRequest struct {
	FirstName        string                  `json:"first_name" validate:"required,max=50"`
	LastName         string                  `json:"last_name" validate:"required,max=50"`
	Email            string                  `json:"email" validate:"required,email"`
	Phone            string                  `json:"phone" validate:"required,min=10,max=30"`
	DateOfBirth      string                  `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	Address          AddressRequest          `json:"address" validate:"required"`
	EmergencyContact EmergencyContactRequest `json:"emergency_contact" validate:"required"`
	MedicalHistory   []string                `json:"medical_history" validate:"omitempty,dive,max=200"`
	Allergies        []string                `json:"allergies" validate:"omitempty,dive,max=100"`
	Insurance        InsuranceRequest        `json:"insurance"`
}

// UpdatePatientRequest carries a full replacement of the patient record,
// mirroring the create payload.
type UpdatePatientRequest = CreatePatientRequest

// Response DTOs

type PatientResponse struct {
	ID               uuid.UUID               `json:"id"`
	FirstName        string                  `json:"first_name"`
	LastName         string                  `json:"last_name"`
	Email            string                  `json:"email"`
	Phone            string                  `json:"phone"`
	DateOfBirth      string                  `json:"date_of_birth"`
	Address          AddressRequest          `json:"address"`
	EmergencyContact EmergencyContactRequest `json:"emergency_contact"`
	MedicalHistory   []string                `json:"medical_history,omitempty"`
	Allergies        []string                `json:"allergies,omitempty"`
	Insurance        InsuranceRequest        `json:"insurance"`
	IsActive         bool                    `json:"is_active"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int64             `json:"total"`
}
