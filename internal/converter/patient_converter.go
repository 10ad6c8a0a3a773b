package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		FirstName:   patient.FirstName,
		LastName:    patient.LastName,
		Email:       patient.Email,
		Phone:       patient.Phone,
		DateOfBirth: patient.DateOfBirth.Format(dateLayout),
		Address: dto.AddressRequest{
			Street:     patient.Address.Street,
			City:       patient.Address.City,
			Province:   patient.Address.Province,
			PostalCode: patient.Address.PostalCode,
		},
		EmergencyContact: dto.EmergencyContactRequest{
			Name:         patient.EmergencyContact.Name,
			Phone:        patient.EmergencyContact.Phone,
			Relationship: patient.EmergencyContact.Relationship,
		},
		MedicalHistory: patient.MedicalHistory,
		Allergies:      patient.Allergies,
		Insurance: dto.InsuranceRequest{
			Provider:     patient.Insurance.Provider,
			PolicyNumber: patient.Insurance.PolicyNumber,
		},
		IsActive:  patient.IsActive,
		CreatedAt: patient.CreatedAt,
		UpdatedAt: patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
