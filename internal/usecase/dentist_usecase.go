package usecase

import (
	"context"
	"errors"
	"strings"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/internal/scheduling"
	"dental-clinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDentistEmailExists     = errors.New("a dentist with this email already exists")
	ErrLicenseNumberExists    = errors.New("a dentist with this license number already exists")
	ErrDentistHasAppointments = errors.New("dentist has upcoming appointments and cannot be deleted")
	ErrInvalidWorkingHours    = errors.New("working hours must be HH:MM ranges with start before end")
)

var weekdays = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

type DentistUsecase interface {
	Create(ctx context.Context, req *dto.CreateDentistRequest) (*dto.DentistResponse, error)
	List(ctx context.Context) ([]dto.DentistResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DentistResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDentistRequest) (*dto.DentistResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type dentistUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	dentistRepo     repository.DentistRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewDentistUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	dentistRepo repository.DentistRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) DentistUsecase {
	return &dentistUsecase{
		db:              db,
		log:             log,
		dentistRepo:     dentistRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *dentistUsecase) Create(ctx context.Context, req *dto.CreateDentistRequest) (*dto.DentistResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrActorMissing
	}

	schedule, err := normalizeWorkingHours(req.WorkingHours)
	if err != nil {
		return nil, err
	}

	dentist := &entity.Dentist{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          strings.ToLower(req.Email),
		Phone:          req.Phone,
		Specialization: req.Specialization,
		LicenseNumber:  req.LicenseNumber,
		WorkingHours:   schedule,
		IsActive:       true,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.dentistRepo.Create(tx, dentist); err != nil {
		if isDuplicateKeyError(err, "license") {
			return nil, ErrLicenseNumberExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDentistEmailExists
		}
		u.log.Warnf("Failed to create dentist: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &actorID, entity.AuditActionDentistCreate,
		"dentist", dentist.ID.String(), dentist); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DentistToResponse(dentist), nil
}

func (u *dentistUsecase) List(ctx context.Context) ([]dto.DentistResponse, error) {
	dentists, err := u.dentistRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find dentists: %+v", err)
		return nil, err
	}

	return converter.DentistsToResponses(dentists), nil
}

func (u *dentistUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DentistResponse, error) {
	dentist, err := u.dentistRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find dentist %s: %+v", id, err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	return converter.DentistToResponse(dentist), nil
}

func (u *dentistUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDentistRequest) (*dto.DentistResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrActorMissing
	}

	db := u.db.WithContext(ctx)

	dentist, err := u.dentistRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find dentist %s: %+v", id, err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}
	oldValue := *dentist

	schedule, err := normalizeWorkingHours(req.WorkingHours)
	if err != nil {
		return nil, err
	}

	dentist.FirstName = req.FirstName
	dentist.LastName = req.LastName
	dentist.Email = strings.ToLower(req.Email)
	dentist.Phone = req.Phone
	dentist.Specialization = req.Specialization
	dentist.LicenseNumber = req.LicenseNumber
	dentist.WorkingHours = schedule

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.dentistRepo.Update(tx, dentist); err != nil {
		if isDuplicateKeyError(err, "license") {
			return nil, ErrLicenseNumberExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDentistEmailExists
		}
		u.log.Warnf("Failed to update dentist: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &actorID, entity.AuditActionDentistUpdate,
		"dentist", dentist.ID.String(), oldValue, dentist); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DentistToResponse(dentist), nil
}

// Delete removes a dentist unless they still have non-terminal appointments.
func (u *dentistUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrActorMissing
	}

	db := u.db.WithContext(ctx)

	dentist, err := u.dentistRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find dentist %s: %+v", id, err)
		return err
	}
	if dentist == nil {
		return ErrDentistNotFound
	}

	active, err := u.appointmentRepo.CountActiveByDentist(db, id)
	if err != nil {
		u.log.Warnf("Failed to count active appointments: %+v", err)
		return err
	}
	if active > 0 {
		return ErrDentistHasAppointments
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.dentistRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete dentist: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, &actorID, entity.AuditActionDentistDelete,
		"dentist", id.String(), dentist); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// normalizeWorkingHours validates a weekly schedule and canonicalizes its
// times to zero-padded HH:MM. Days outside monday..sunday and half-open
// ranges are rejected.
func normalizeWorkingHours(hours map[string]dto.DayHoursRequest) (entity.WeekSchedule, error) {
	if len(hours) == 0 {
		return nil, nil
	}

	schedule := make(entity.WeekSchedule, len(hours))
	for day, h := range hours {
		key := strings.ToLower(day)
		if !weekdays[key] {
			return nil, ErrInvalidWorkingHours
		}
		if h.Start == "" && h.End == "" {
			continue
		}
		start, ok := scheduling.NormalizeTime(h.Start)
		if !ok {
			return nil, ErrInvalidWorkingHours
		}
		end, ok := scheduling.NormalizeTime(h.End)
		if !ok {
			return nil, ErrInvalidWorkingHours
		}
		if start >= end {
			return nil, ErrInvalidWorkingHours
		}
		schedule[key] = entity.DayHours{Start: start, End: end}
	}

	if len(schedule) == 0 {
		return nil, nil
	}
	return schedule, nil
}
