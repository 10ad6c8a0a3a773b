package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientEmailExists     = errors.New("a patient with this email already exists")
	ErrPatientHasAppointments = errors.New("patient has upcoming appointments and cannot be deleted")
	ErrInvalidDateOfBirth     = errors.New("invalid date of birth, use YYYY-MM-DD")
	ErrDateOfBirthInFuture    = errors.New("date of birth must be in the past")
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	List(ctx context.Context, page, limit int) ([]dto.PatientResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrActorMissing
	}

	patient, err := patientFromRequest(req)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrPatientEmailExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &actorID, entity.AuditActionPatientCreate,
		"patient", patient.ID.String(), patient); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context, page, limit int) ([]dto.PatientResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	patients, total, err := u.patientRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, 0, err
	}

	return converter.PatientsToResponses(patients), total, nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrActorMissing
	}

	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	oldValue := *patient

	updated, err := patientFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ID = patient.ID
	updated.IsActive = patient.IsActive
	updated.CreatedAt = patient.CreatedAt

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Update(tx, updated); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrPatientEmailExists
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &actorID, entity.AuditActionPatientUpdate,
		"patient", patient.ID.String(), oldValue, updated); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(updated), nil
}

// Delete removes a patient. Patients with scheduled or rescheduled
// appointments are kept to preserve calendar integrity.
func (u *patientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrActorMissing
	}

	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	active, err := u.appointmentRepo.CountActiveByPatient(db, id)
	if err != nil {
		u.log.Warnf("Failed to count active appointments: %+v", err)
		return err
	}
	if active > 0 {
		return ErrPatientHasAppointments
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, &actorID, entity.AuditActionPatientDelete,
		"patient", id.String(), patient); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func patientFromRequest(req *dto.CreatePatientRequest) (*entity.Patient, error) {
	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateOfBirth
	}
	if !dob.Before(time.Now()) {
		return nil, ErrDateOfBirthInFuture
	}

	return &entity.Patient{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       strings.ToLower(req.Email),
		Phone:       req.Phone,
		DateOfBirth: dob,
		Address: entity.Address{
			Street:     req.Address.Street,
			City:       req.Address.City,
			Province:   req.Address.Province,
			PostalCode: req.Address.PostalCode,
		},
		EmergencyContact: entity.EmergencyContact{
			Name:         req.EmergencyContact.Name,
			Phone:        req.EmergencyContact.Phone,
			Relationship: req.EmergencyContact.Relationship,
		},
		MedicalHistory: req.MedicalHistory,
		Allergies:      req.Allergies,
		Insurance: entity.Insurance{
			Provider:     req.Insurance.Provider,
			PolicyNumber: req.Insurance.PolicyNumber,
		},
		IsActive: true,
	}, nil
}
