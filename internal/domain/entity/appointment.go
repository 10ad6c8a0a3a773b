package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "scheduled"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusNoShow      AppointmentStatus = "no-show"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

// ActiveStatuses are the statuses that still occupy a slot on the
// dentist's calendar. Completed, cancelled and no-show bookings free
// their slot.
var ActiveStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusRescheduled,
}

// IsValid reports whether the status is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusNoShow,
		AppointmentStatusRescheduled:
		return true
	}
	return false
}

// Appointment represents a booked visit for a patient with a dentist
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_patient_date" json:"patient_id"`
	DentistID       uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_dentist_date" json:"dentist_id"`
	ServiceID       uuid.UUID         `gorm:"type:uuid;not null" json:"service_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index:idx_appointments_dentist_date;index:idx_appointments_patient_date" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:varchar(5);not null" json:"appointment_time"`
	Duration        int               `gorm:"not null" json:"duration"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Reason          string            `gorm:"type:varchar(500);not null" json:"reason"`
	Notes           string            `gorm:"type:varchar(1000)" json:"notes,omitempty"`
	CreatedByID     uuid.UUID         `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Dentist   Dentist `gorm:"foreignKey:DentistID" json:"dentist,omitempty"`
	Service   Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	CreatedBy User    `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// OccupiesSlot reports whether the appointment still holds its time slot
func (a *Appointment) OccupiesSlot() bool {
	return a.Status == AppointmentStatusScheduled || a.Status == AppointmentStatusRescheduled
}

// IsCompleted checks if the appointment has been carried out
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if the appointment was cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsLocked reports whether the record may no longer be mutated or removed.
// Completed appointments are frozen as part of the patient's history.
func (a *Appointment) IsLocked() bool {
	return a.IsCompleted()
}
