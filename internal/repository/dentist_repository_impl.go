package repository

import (
	"errors"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type dentistRepository struct{}

func NewDentistRepository() domainRepo.DentistRepository {
	return &dentistRepository{}
}

func (r *dentistRepository) Create(db *gorm.DB, dentist *entity.Dentist) error {
	return db.Create(dentist).Error
}

func (r *dentistRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Dentist, error) {
	var dentist entity.Dentist
	err := db.Where("id = ?", id).First(&dentist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dentist, nil
}

func (r *dentistRepository) FindAll(db *gorm.DB) ([]entity.Dentist, error) {
	var dentists []entity.Dentist
	err := db.Order("last_name ASC, first_name ASC").Find(&dentists).Error
	if err != nil {
		return nil, err
	}
	return dentists, nil
}

func (r *dentistRepository) Update(db *gorm.DB, dentist *entity.Dentist) error {
	return db.Save(dentist).Error
}

func (r *dentistRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Delete(&entity.Dentist{}, "id = ?", id).Error
}
