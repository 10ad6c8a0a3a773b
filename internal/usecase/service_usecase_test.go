package usecase

import (
	"context"
	"testing"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func TestServiceCreateRequiresPositivePrice(t *testing.T) {
	u := NewServiceUsecase(nil, logrus.New(), nil, nil, nil)
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, uuid.New())

	tests := []struct {
		name  string
		price decimal.Decimal
	}{
		{"zero", decimal.Zero},
		{"negative", decimal.NewFromInt(-10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &dto.CreateServiceRequest{
				Name:     "Cleaning",
				Duration: 30,
				Price:    tt.price,
			}
			if _, err := u.Create(ctx, req); err != ErrNonPositivePrice {
				t.Errorf("expected ErrNonPositivePrice, got %v", err)
			}
		})
	}
}

func TestServiceUpdateRequiresPositivePrice(t *testing.T) {
	u := NewServiceUsecase(nil, logrus.New(), nil, nil, nil)
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, uuid.New())

	req := &dto.UpdateServiceRequest{
		Name:     "Cleaning",
		Duration: 30,
		Price:    decimal.Zero,
	}
	if _, err := u.Update(ctx, uuid.New(), req); err != ErrNonPositivePrice {
		t.Errorf("expected ErrNonPositivePrice, got %v", err)
	}
}
