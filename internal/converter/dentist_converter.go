package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// DentistToResponse converts a Dentist entity to DentistResponse DTO
func DentistToResponse(dentist *entity.Dentist) *dto.DentistResponse {
	if dentist == nil {
		return nil
	}

	return &dto.DentistResponse{
		ID:             dentist.ID,
		FirstName:      dentist.FirstName,
		LastName:       dentist.LastName,
		Email:          dentist.Email,
		Phone:          dentist.Phone,
		Specialization: dentist.Specialization,
		LicenseNumber:  dentist.LicenseNumber,
		WorkingHours:   weekScheduleToResponse(dentist.WorkingHours),
		IsActive:       dentist.IsActive,
		CreatedAt:      dentist.CreatedAt,
		UpdatedAt:      dentist.UpdatedAt,
	}
}

// DentistsToResponses converts a slice of Dentist entities to slice of DentistResponse DTOs
func DentistsToResponses(dentists []entity.Dentist) []dto.DentistResponse {
	responses := make([]dto.DentistResponse, len(dentists))
	for i := range dentists {
		responses[i] = *DentistToResponse(&dentists[i])
	}
	return responses
}

func weekScheduleToResponse(schedule entity.WeekSchedule) map[string]dto.DayHoursRequest {
	if len(schedule) == 0 {
		return nil
	}
	hours := make(map[string]dto.DayHoursRequest, len(schedule))
	for day, h := range schedule {
		hours[day] = dto.DayHoursRequest{Start: h.Start, End: h.End}
	}
	return hours
}
