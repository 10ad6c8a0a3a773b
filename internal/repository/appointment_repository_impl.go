package repository

import (
	"errors"
	"time"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Patient").
		Preload("Dentist").
		Preload("Service").
		Preload("CreatedBy").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func applyFilter(db *gorm.DB, filter *entity.AppointmentFilter) *gorm.DB {
	query := db.Model(&entity.Appointment{})
	if filter == nil {
		return query
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DentistID != uuid.Nil {
		query = query.Where("dentist_id = ?", filter.DentistID)
	}
	if filter.PatientID != uuid.Nil {
		query = query.Where("patient_id = ?", filter.PatientID)
	}
	if filter.Date != "" {
		query = query.Where("appointment_date = ?", filter.Date)
	}
	return query
}

func (r *appointmentRepository) FindMany(db *gorm.DB, filter *entity.AppointmentFilter, limit, offset int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := applyFilter(db, filter).
		Preload("Patient").
		Preload("Dentist").
		Preload("Service").
		Order("appointment_date ASC, appointment_time ASC").
		Limit(limit).
		Offset(offset).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Count(db *gorm.DB, filter *entity.AppointmentFilter) (int64, error) {
	var total int64
	err := applyFilter(db, filter).Count(&total).Error
	return total, err
}

// FindActiveForDentistOn returns the appointments still occupying a slot
// for one dentist on one calendar date.
func (r *appointmentRepository) FindActiveForDentistOn(db *gorm.DB, dentistID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Where("dentist_id = ? AND appointment_date = ? AND status IN ?",
			dentistID, date.Format("2006-01-02"), entity.ActiveStatuses).
		Order("appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	// Joined records may be loaded on the struct; persist columns only.
	return db.Omit(clause.Associations).Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Delete(&entity.Appointment{}, "id = ?", id).Error
}

func (r *appointmentRepository) CountActiveByDentist(db *gorm.DB, dentistID uuid.UUID) (int64, error) {
	var total int64
	err := db.Model(&entity.Appointment{}).
		Where("dentist_id = ? AND status IN ?", dentistID, entity.ActiveStatuses).
		Count(&total).Error
	return total, err
}

func (r *appointmentRepository) CountActiveByPatient(db *gorm.DB, patientID uuid.UUID) (int64, error) {
	var total int64
	err := db.Model(&entity.Appointment{}).
		Where("patient_id = ? AND status IN ?", patientID, entity.ActiveStatuses).
		Count(&total).Error
	return total, err
}

func (r *appointmentRepository) CountActiveByService(db *gorm.DB, serviceID uuid.UUID) (int64, error) {
	var total int64
	err := db.Model(&entity.Appointment{}).
		Where("service_id = ? AND status IN ?", serviceID, entity.ActiveStatuses).
		Count(&total).Error
	return total, err
}
