package validator

import "testing"

type sampleRequest struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=3"`
	Time  string `validate:"omitempty,datetime=15:04"`
	Role  string `validate:"omitempty,oneof=admin receptionist"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	req := sampleRequest{
		Email: "front.desk@clinic.test",
		Name:  "Reception",
		Time:  "09:30",
		Role:  "admin",
	}
	if err := cv.Validate(&req); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	req := sampleRequest{
		Email: "not-an-email",
		Name:  "ab",
		Time:  "25:99",
		Role:  "janitor",
	}
	err := cv.Validate(&req)
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	errors := cv.FormatValidationErrors(err)

	if msg := errors["Email"]; msg != "Email must be a valid email address" {
		t.Errorf("unexpected Email message: %q", msg)
	}
	if msg := errors["Name"]; msg != "Name must be at least 3 characters" {
		t.Errorf("unexpected Name message: %q", msg)
	}
	if msg := errors["Time"]; msg != "Time must match the 15:04 format" {
		t.Errorf("unexpected Time message: %q", msg)
	}
	if msg := errors["Role"]; msg != "Role must be one of: admin receptionist" {
		t.Errorf("unexpected Role message: %q", msg)
	}
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	errors := cv.FormatValidationErrors(err)
	if msg := errors["Email"]; msg != "Email is required" {
		t.Errorf("unexpected Email message: %q", msg)
	}
}
