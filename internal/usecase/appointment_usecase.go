package usecase

import (
	"context"
	"errors"
	"time"

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
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDentistNotFound     = errors.New("dentist not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrSlotAlreadyBooked   = errors.New("this time slot is already booked for the selected dentist")
	ErrAppointmentLocked   = errors.New("completed appointments can no longer be modified")
	ErrAppointmentInPast   = errors.New("appointment must be scheduled for a future date and time")
	ErrInvalidDate         = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTime         = errors.New("invalid time format, use HH:MM")
	ErrActorMissing        = errors.New("user not found in context")
)

const dateLayout = "2006-01-02"

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, filter *entity.AppointmentFilter, page, limit int) ([]dto.AppointmentResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AvailableSlots(ctx context.Context, dentistID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	dentistRepo     repository.DentistRepository
	serviceRepo     repository.ServiceRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	dentistRepo repository.DentistRepository,
	serviceRepo repository.ServiceRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		dentistRepo:     dentistRepo,
		serviceRepo:     serviceRepo,
		auditService:    auditService,
	}
}

// Create books a new appointment.
//
// Flow:
// 1. Resolve patient, dentist and service
// 2. Reject slots that are not strictly in the future
// 3. Check the dentist's calendar for an exact slot collision
// 4. Persist with status scheduled, duration taken from the service
//
// The conflict check is read-then-write: two simultaneous requests for the
// same slot can both pass it. A unique constraint on
// (dentist_id, appointment_date, appointment_time) at the store would close
// the race; callers get the conflict as a store error in that case.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrActorMissing
	}

	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	dentist, err := u.dentistRepo.FindByID(db, req.DentistID)
	if err != nil {
		u.log.Warnf("Failed to find dentist %s: %+v", req.DentistID, err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	svc, err := u.serviceRepo.FindByID(db, req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", req.ServiceID, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	date, err := time.Parse(dateLayout, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	hhmm, ok := scheduling.NormalizeTime(req.AppointmentTime)
	if !ok {
		return nil, ErrInvalidTime
	}

	if err := ensureFuture(req.AppointmentDate, hhmm); err != nil {
		return nil, err
	}

	existing, err := u.appointmentRepo.FindActiveForDentistOn(db, req.DentistID, date)
	if err != nil {
		u.log.Warnf("Failed to load dentist calendar: %+v", err)
		return nil, err
	}
	if scheduling.HasConflict(existing, req.DentistID, date, hhmm, uuid.Nil) {
		return nil, ErrSlotAlreadyBooked
	}

	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		DentistID:       req.DentistID,
		ServiceID:       req.ServiceID,
		AppointmentDate: date,
		AppointmentTime: hhmm,
		Duration:        svc.Duration, // caller-supplied duration is ignored
		Status:          entity.AppointmentStatusScheduled,
		Reason:          req.Reason,
		Notes:           req.Notes,
		CreatedByID:     actorID,
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &actorID, entity.AuditActionAppointmentCreate,
		"appointment", appointment.ID.String(), appointment); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(db, appointment)
}

// List returns a page of appointments matching the filter, ordered by
// date then time ascending.
func (u *appointmentUsecase) List(ctx context.Context, filter *entity.AppointmentFilter, page, limit int) ([]dto.AppointmentResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := u.db.WithContext(ctx)

	appointments, err := u.appointmentRepo.FindMany(db, filter, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, 0, err
	}

	total, err := u.appointmentRepo.Count(db, filter)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, 0, err
	}

	return converter.AppointmentsToResponses(appointments), total, nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// Update applies a partial patch. Completed appointments are locked. When
// the patch moves the appointment (date, time or dentist), the new slot is
// re-checked for collisions, excluding the appointment itself.
func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrActorMissing
	}

	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsLocked() {
		return nil, ErrAppointmentLocked
	}

	oldValue := *appointment

	newDentistID := appointment.DentistID
	if req.DentistID != uuid.Nil {
		newDentistID = req.DentistID
	}
	newDate := appointment.AppointmentDate
	if req.AppointmentDate != "" {
		newDate, err = time.Parse(dateLayout, req.AppointmentDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
	}
	newTime := appointment.AppointmentTime
	if req.AppointmentTime != "" {
		newTime, ok = scheduling.NormalizeTime(req.AppointmentTime)
		if !ok {
			return nil, ErrInvalidTime
		}
	}

	rescheduled := req.AppointmentDate != "" || req.AppointmentTime != "" || req.DentistID != uuid.Nil
	if rescheduled {
		if req.DentistID != uuid.Nil && req.DentistID != appointment.DentistID {
			dentist, err := u.dentistRepo.FindByID(db, req.DentistID)
			if err != nil {
				return nil, err
			}
			if dentist == nil {
				return nil, ErrDentistNotFound
			}
		}

		existing, err := u.appointmentRepo.FindActiveForDentistOn(db, newDentistID, newDate)
		if err != nil {
			u.log.Warnf("Failed to load dentist calendar: %+v", err)
			return nil, err
		}
		if scheduling.HasConflict(existing, newDentistID, newDate, newTime, appointment.ID) {
			return nil, ErrSlotAlreadyBooked
		}
	}

	if req.ServiceID != uuid.Nil && req.ServiceID != appointment.ServiceID {
		svc, err := u.serviceRepo.FindByID(db, req.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc == nil {
			return nil, ErrServiceNotFound
		}
		appointment.ServiceID = req.ServiceID
	}

	appointment.DentistID = newDentistID
	appointment.AppointmentDate = newDate
	appointment.AppointmentTime = newTime
	if req.Duration != nil {
		appointment.Duration = *req.Duration
	}
	if req.Status != "" {
		appointment.Status = entity.AppointmentStatus(req.Status)
	}
	if req.Reason != "" {
		appointment.Reason = req.Reason
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &actorID, entity.AuditActionAppointmentUpdate,
		"appointment", appointment.ID.String(), &oldValue, appointment); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(db, appointment)
}

// Delete removes an appointment. Completed appointments are part of the
// patient's history and are never deleted.
func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrActorMissing
	}

	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.IsLocked() {
		return ErrAppointmentLocked
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}

	if err := u.auditService.LogDelete(tx, &actorID, entity.AuditActionAppointmentDelete,
		"appointment", id.String(), appointment); err != nil {
		return err
	}

	return tx.Commit().Error
}

// AvailableSlots returns the free 30-minute slots for a dentist on a date,
// derived from the dentist's working hours for that weekday minus the
// appointments still occupying their slot.
func (u *appointmentUsecase) AvailableSlots(ctx context.Context, dentistID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error) {
	db := u.db.WithContext(ctx)

	dentist, err := u.dentistRepo.FindByID(db, dentistID)
	if err != nil {
		u.log.Warnf("Failed to find dentist %s: %+v", dentistID, err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	existing, err := u.appointmentRepo.FindActiveForDentistOn(db, dentistID, day)
	if err != nil {
		u.log.Warnf("Failed to load dentist calendar: %+v", err)
		return nil, err
	}

	slots := scheduling.AvailableSlots(dentist.WorkingHours.ForDate(day), existing, day)

	return &dto.AvailableSlotsResponse{
		DentistID:      dentistID,
		Date:           date,
		AvailableSlots: slots,
	}, nil
}

func (u *appointmentUsecase) reload(db *gorm.DB, appointment *entity.Appointment) (*dto.AppointmentResponse, error) {
	full, err := u.appointmentRepo.FindByID(db, appointment.ID)
	if err != nil || full == nil {
		// Return the bare record if the joined reload fails
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(full), nil
}

// ensureFuture rejects date/time pairs at or before the current moment.
func ensureFuture(date, hhmm string) error {
	at, err := time.ParseInLocation(dateLayout+" 15:04", date+" "+hhmm, time.Local)
	if err != nil {
		return ErrInvalidDate
	}
	if !at.After(time.Now()) {
		return ErrAppointmentInPast
	}
	return nil
}
