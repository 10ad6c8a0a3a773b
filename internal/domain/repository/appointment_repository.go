package repository

import (
	"time"

	"dental-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindMany(db *gorm.DB, filter *entity.AppointmentFilter, limit, offset int) ([]entity.Appointment, error)
	Count(db *gorm.DB, filter *entity.AppointmentFilter) (int64, error)
	FindActiveForDentistOn(db *gorm.DB, dentistID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uuid.UUID) error
	CountActiveByDentist(db *gorm.DB, dentistID uuid.UUID) (int64, error)
	CountActiveByPatient(db *gorm.DB, patientID uuid.UUID) (int64, error)
	CountActiveByService(db *gorm.DB, serviceID uuid.UUID) (int64, error)
}
