package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DentistID:       appointment.DentistID,
		ServiceID:       appointment.ServiceID,
		AppointmentDate: appointment.AppointmentDate.Format(dateLayout),
		AppointmentTime: appointment.AppointmentTime,
		Duration:        appointment.Duration,
		Status:          string(appointment.Status),
		Reason:          appointment.Reason,
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	// Include joined records when they were preloaded
	if appointment.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&appointment.Patient)
	}
	if appointment.Dentist.ID != uuid.Nil {
		response.Dentist = DentistToResponse(&appointment.Dentist)
	}
	if appointment.Service.ID != uuid.Nil {
		response.Service = ServiceToResponse(&appointment.Service)
	}
	if appointment.CreatedBy.ID != uuid.Nil {
		response.CreatedBy = UserToResponse(&appointment.CreatedBy)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		resp := AppointmentToResponse(&appointments[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
