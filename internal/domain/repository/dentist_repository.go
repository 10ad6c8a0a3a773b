package repository

import (
	"dental-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DentistRepository interface {
	Create(db *gorm.DB, dentist *entity.Dentist) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Dentist, error)
	FindAll(db *gorm.DB) ([]entity.Dentist, error)
	Update(db *gorm.DB, dentist *entity.Dentist) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
