package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patient_id" validate:"required"`
	DentistID       uuid.UUID `json:"dentist_id" validate:"required"`
	ServiceID       uuid.UUID `json:"service_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
	AppointmentTime string    `json:"appointment_time" validate:"required,datetime=15:04"`
	Duration        int       `json:"duration"` // ignored: always taken from the service
	Reason          string    `json:"reason" validate:"required,min=1,max=500"`
	Notes           string    `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateAppointmentRequest struct {
	DentistID       uuid.UUID `json:"dentist_id" validate:"omitempty"`
	ServiceID       uuid.UUID `json:"service_id" validate:"omitempty"`
	AppointmentDate string    `json:"appointment_date" validate:"omitempty"` // Format: YYYY-MM-DD
	AppointmentTime string    `json:"appointment_time" validate:"omitempty,datetime=15:04"`
	Duration        *int      `json:"duration" validate:"omitempty,gte=15,lte=240"`
	Status          string    `json:"status" validate:"omitempty,oneof=scheduled completed cancelled no-show rescheduled"`
	Reason          string    `json:"reason" validate:"omitempty,max=500"`
	Notes           *string   `json:"notes" validate:"omitempty,max=1000"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID        `json:"id"`
	PatientID       uuid.UUID        `json:"patient_id"`
	DentistID       uuid.UUID        `json:"dentist_id"`
	ServiceID       uuid.UUID        `json:"service_id"`
	AppointmentDate string           `json:"appointment_date"`
	AppointmentTime string           `json:"appointment_time"`
	Duration        int              `json:"duration"`
	Status          string           `json:"status"`
	Reason          string           `json:"reason"`
	Notes           string           `json:"notes,omitempty"`
	Patient         *PatientResponse `json:"patient,omitempty"`
	Dentist         *DentistResponse `json:"dentist,omitempty"`
	Service         *ServiceResponse `json:"service,omitempty"`
	CreatedBy       *UserResponse    `json:"created_by,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
}

type AvailableSlotsResponse struct {
	DentistID      uuid.UUID `json:"dentist_id"`
	Date           string    `json:"date"`
	AvailableSlots []string  `json:"available_slots"`
}
