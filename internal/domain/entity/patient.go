package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a patient's mailing address
type Address struct {
	Street     string `gorm:"type:varchar(100)" json:"street,omitempty"`
	City       string `gorm:"type:varchar(50)" json:"city,omitempty"`
	Province   string `gorm:"type:varchar(50)" json:"province,omitempty"`
	PostalCode string `gorm:"type:varchar(10)" json:"postal_code,omitempty"`
}

// EmergencyContact is the person to reach when a patient cannot be
type EmergencyContact struct {
	Name         string `gorm:"type:varchar(100)" json:"name,omitempty"`
	Phone        string `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Relationship string `gorm:"type:varchar(50)" json:"relationship,omitempty"`
}

// Insurance holds a patient's coverage details
type Insurance struct {
	Provider     string `gorm:"type:varchar(100)" json:"provider,omitempty"`
	PolicyNumber string `gorm:"type:varchar(50)" json:"policy_number,omitempty"`
}

// Patient represents a clinic patient record
type Patient struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName        string           `gorm:"type:varchar(50);not null;index:idx_patients_name" json:"first_name"`
	LastName         string           `gorm:"type:varchar(50);not null;index:idx_patients_name" json:"last_name"`
	Email            string           `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone            string           `gorm:"type:varchar(30);not null" json:"phone"`
	DateOfBirth      time.Time        `gorm:"type:date;not null" json:"date_of_birth"`
	Address          Address          `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	EmergencyContact EmergencyContact `gorm:"embedded;embeddedPrefix:emergency_" json:"emergency_contact"`
	MedicalHistory   StringList       `gorm:"type:jsonb" json:"medical_history,omitempty"`
	Allergies        StringList       `gorm:"type:jsonb" json:"allergies,omitempty"`
	Insurance        Insurance        `gorm:"embedded;embeddedPrefix:insurance_" json:"insurance"`
	IsActive         bool             `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt        time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// FullName returns the patient's display name
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
