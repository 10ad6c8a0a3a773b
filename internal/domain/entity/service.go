package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceCategory classifies a dental service
type ServiceCategory string

const (
	CategoryPreventive  ServiceCategory = "Preventive"
	CategoryRestorative ServiceCategory = "Restorative"
	CategoryCosmetic    ServiceCategory = "Cosmetic"
	CategoryOther       ServiceCategory = "Other"
)

// Service represents a bookable dental treatment
type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Duration    int             `gorm:"not null" json:"duration"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    ServiceCategory `gorm:"type:varchar(20);not null;default:'Other';index" json:"category"`
	IsActive    bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Service) TableName() string {
	return "services"
}
