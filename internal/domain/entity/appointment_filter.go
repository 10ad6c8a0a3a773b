package entity

import "github.com/google/uuid"

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	Status    AppointmentStatus // empty means any status
	DentistID uuid.UUID         // uuid.Nil means any dentist
	PatientID uuid.UUID         // uuid.Nil means any patient
	Date      string            // Format: YYYY-MM-DD, matches the full calendar day
}
