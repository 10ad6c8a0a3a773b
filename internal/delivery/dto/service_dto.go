package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateServiceRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=255"`
	Description string          `json:"description"`
	Duration    int             `json:"duration" validate:"required,gte=15,lte=240"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"omitempty,oneof=Preventive Restorative Cosmetic Other"`
}

// UpdateServiceRequest carries a full replacement of the service record.
type UpdateServiceRequest = CreateServiceRequest

// Response DTOs

type ServiceResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Duration    int             `json:"duration"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}
