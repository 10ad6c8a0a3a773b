package dto

import (
	"testing"

	"dental-clinic-api/pkg/validator"

	"github.com/shopspring/decimal"
)

func TestCreateServiceRequestDurationRange(t *testing.T) {
	v := validator.NewValidator()

	tests := []struct {
		name     string
		duration int
		wantErr  bool
	}{
		{"below minimum", 5, true},
		{"at minimum", 15, false},
		{"typical", 45, false},
		{"at maximum", 240, false},
		{"above maximum", 241, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateServiceRequest{
				Name:     "Cleaning",
				Duration: tt.duration,
				Price:    decimal.NewFromInt(50),
			}
			err := v.Validate(&req)
			if tt.wantErr && err == nil {
				t.Errorf("duration %d should fail validation", tt.duration)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("duration %d should pass validation, got %v", tt.duration, err)
			}
		})
	}
}
