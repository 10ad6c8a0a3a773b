package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DentistHandler struct {
	dentistUsecase usecase.DentistUsecase
	validator      *validator.CustomValidator
}

func NewDentistHandler(dentistUsecase usecase.DentistUsecase, validator *validator.CustomValidator) *DentistHandler {
	return &DentistHandler{
		dentistUsecase: dentistUsecase,
		validator:      validator,
	}
}

func (h *DentistHandler) CreateDentist(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDentistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	dentist, err := h.dentistUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDentistEmailExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		case usecase.ErrLicenseNumberExists:
			response.Error(w, http.StatusConflict, "License number already exists", nil)
		case usecase.ErrInvalidWorkingHours:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrActorMissing:
			response.Unauthorized(w, "")
		default:
			response.InternalServerError(w, "Failed to create dentist")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Dentist created successfully", dentist)
}

func (h *DentistHandler) GetAllDentists(w http.ResponseWriter, r *http.Request) {
	dentists, err := h.dentistUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dentists")
		return
	}

	response.Success(w, http.StatusOK, "Dentists retrieved successfully", dentists)
}

func (h *DentistHandler) GetDentist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dentistID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid dentist ID", nil)
		return
	}

	dentist, err := h.dentistUsecase.GetByID(r.Context(), dentistID)
	if err != nil {
		if err == usecase.ErrDentistNotFound {
			response.NotFound(w, "Dentist not found")
			return
		}
		response.InternalServerError(w, "Failed to get dentist")
		return
	}

	response.Success(w, http.StatusOK, "Dentist retrieved successfully", dentist)
}

func (h *DentistHandler) UpdateDentist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dentistID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid dentist ID", nil)
		return
	}

	var req dto.UpdateDentistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	dentist, err := h.dentistUsecase.Update(r.Context(), dentistID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDentistNotFound:
			response.NotFound(w, "Dentist not found")
		case usecase.ErrDentistEmailExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		case usecase.ErrLicenseNumberExists:
			response.Error(w, http.StatusConflict, "License number already exists", nil)
		case usecase.ErrInvalidWorkingHours:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrActorMissing:
			response.Unauthorized(w, "")
		default:
			response.InternalServerError(w, "Failed to update dentist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dentist updated successfully", dentist)
}

func (h *DentistHandler) DeleteDentist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dentistID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid dentist ID", nil)
		return
	}

	if err := h.dentistUsecase.Delete(r.Context(), dentistID); err != nil {
		switch err {
		case usecase.ErrDentistNotFound:
			response.NotFound(w, "Dentist not found")
		case usecase.ErrDentistHasAppointments:
			response.Error(w, http.StatusConflict, err.Error(), nil)
		case usecase.ErrActorMissing:
			response.Unauthorized(w, "")
		default:
			response.InternalServerError(w, "Failed to delete dentist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dentist deleted successfully", nil)
}
