package entity

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DayHours is a working window for a single weekday.
// An empty Start or End means the dentist does not take bookings that day.
type DayHours struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// IsSet reports whether both ends of the window are present
func (h DayHours) IsSet() bool {
	return h.Start != "" && h.End != ""
}

// WeekSchedule maps lowercase weekday names (monday..sunday) to working hours.
// A missing key means the dentist does not work that day.
type WeekSchedule map[string]DayHours

// Value returns json value, implement driver.Valuer interface
func (w WeekSchedule) Value() (driver.Value, error) {
	if len(w) == 0 {
		return nil, nil
	}
	return json.Marshal(w)
}

// Scan scan value into jsonb, implements sql.Scanner interface
func (w *WeekSchedule) Scan(value interface{}) error {
	if value == nil {
		*w = nil
		return nil
	}
	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}

	result := map[string]DayHours{}
	err = json.Unmarshal(bytes, &result)
	*w = WeekSchedule(result)
	return err
}

// ForDate returns the working hours entry for the weekday of t,
// or nil when the dentist has no entry for that day.
func (w WeekSchedule) ForDate(t time.Time) *DayHours {
	day := strings.ToLower(t.Weekday().String())
	hours, ok := w[day]
	if !ok {
		return nil
	}
	return &hours
}

// Dentist represents a practicing dentist and their weekly availability
type Dentist struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName      string       `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string       `gorm:"type:varchar(100);not null" json:"last_name"`
	Email          string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone          string       `gorm:"type:varchar(30);not null" json:"phone"`
	Specialization string       `gorm:"type:varchar(100);not null;index" json:"specialization"`
	LicenseNumber  string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	WorkingHours   WeekSchedule `gorm:"type:jsonb" json:"working_hours,omitempty"`
	IsActive       bool         `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DentistID" json:"appointments,omitempty"`
}

func (Dentist) TableName() string {
	return "dentists"
}
