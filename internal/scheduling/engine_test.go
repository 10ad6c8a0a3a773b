package scheduling

import (
	"reflect"
	"testing"
	"time"

	"dental-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

// 2026-09-07 is a Monday.
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func appointment(dentistID uuid.UUID, date time.Time, hhmm string, status entity.AppointmentStatus) entity.Appointment {
	return entity.Appointment{
		ID:              uuid.New(),
		DentistID:       dentistID,
		AppointmentDate: date,
		AppointmentTime: hhmm,
		Status:          status,
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"09:30", "09:30", true},
		{"9:30", "09:30", true},
		{"23:59", "23:59", true},
		{"24:00", "", false},
		{"12:60", "", false},
		{"noon", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeTime(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NormalizeTime(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestHasConflictExactMatch(t *testing.T) {
	dentistID := uuid.New()
	existing := []entity.Appointment{
		appointment(dentistID, monday, "09:30", entity.AppointmentStatusScheduled),
	}

	if !HasConflict(existing, dentistID, monday, "09:30", uuid.Nil) {
		t.Error("expected conflict for same dentist, date and time")
	}
	if HasConflict(existing, dentistID, monday, "10:00", uuid.Nil) {
		t.Error("unexpected conflict for a different time")
	}
	if HasConflict(existing, dentistID, monday.AddDate(0, 0, 1), "09:30", uuid.Nil) {
		t.Error("unexpected conflict for a different date")
	}
	if HasConflict(existing, uuid.New(), monday, "09:30", uuid.Nil) {
		t.Error("unexpected conflict for a different dentist")
	}
}

func TestHasConflictIgnoresFreedSlots(t *testing.T) {
	dentistID := uuid.New()
	for _, status := range []entity.AppointmentStatus{
		entity.AppointmentStatusCompleted,
		entity.AppointmentStatusCancelled,
		entity.AppointmentStatusNoShow,
	} {
		existing := []entity.Appointment{
			appointment(dentistID, monday, "09:30", status),
		}
		if HasConflict(existing, dentistID, monday, "09:30", uuid.Nil) {
			t.Errorf("status %q should not occupy the slot", status)
		}
	}

	existing := []entity.Appointment{
		appointment(dentistID, monday, "09:30", entity.AppointmentStatusRescheduled),
	}
	if !HasConflict(existing, dentistID, monday, "09:30", uuid.Nil) {
		t.Error("rescheduled appointments still occupy their slot")
	}
}

func TestHasConflictExcludesSelf(t *testing.T) {
	dentistID := uuid.New()
	apt := appointment(dentistID, monday, "09:30", entity.AppointmentStatusScheduled)
	existing := []entity.Appointment{apt}

	if HasConflict(existing, dentistID, monday, "09:30", apt.ID) {
		t.Error("an appointment must not conflict with itself on reschedule")
	}
}

func TestHasConflictIgnoresOverlappingRanges(t *testing.T) {
	// A long appointment at 09:00 does not block 09:30; only exact start
	// times collide.
	dentistID := uuid.New()
	long := appointment(dentistID, monday, "09:00", entity.AppointmentStatusScheduled)
	long.Duration = 60
	existing := []entity.Appointment{long}

	if HasConflict(existing, dentistID, monday, "09:30", uuid.Nil) {
		t.Error("overlapping but non-identical times must not conflict")
	}
}

func TestAvailableSlotsFullWindow(t *testing.T) {
	hours := &entity.DayHours{Start: "09:00", End: "11:00"}

	got := AvailableSlots(hours, nil, monday)
	want := []string{"09:00", "09:30", "10:00", "10:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableSlots = %v, want %v", got, want)
	}
}

func TestAvailableSlotsExcludesBooked(t *testing.T) {
	dentistID := uuid.New()
	hours := &entity.DayHours{Start: "09:00", End: "11:00"}
	existing := []entity.Appointment{
		appointment(dentistID, monday, "09:30", entity.AppointmentStatusScheduled),
	}

	got := AvailableSlots(hours, existing, monday)
	want := []string{"09:00", "10:00", "10:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableSlots = %v, want %v", got, want)
	}
}

func TestAvailableSlotsFreedByTerminalStatus(t *testing.T) {
	dentistID := uuid.New()
	hours := &entity.DayHours{Start: "09:00", End: "10:00"}
	existing := []entity.Appointment{
		appointment(dentistID, monday, "09:30", entity.AppointmentStatusCancelled),
	}

	got := AvailableSlots(hours, existing, monday)
	want := []string{"09:00", "09:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableSlots = %v, want %v", got, want)
	}
}

func TestAvailableSlotsNoWorkingHours(t *testing.T) {
	cases := []*entity.DayHours{
		nil,
		{},
		{Start: "09:00"},
		{End: "17:00"},
	}
	for _, hours := range cases {
		if got := AvailableSlots(hours, nil, monday); len(got) != 0 {
			t.Errorf("AvailableSlots(%+v) = %v, want empty", hours, got)
		}
	}
}

func TestAvailableSlotsEndExclusive(t *testing.T) {
	hours := &entity.DayHours{Start: "16:30", End: "17:00"}

	got := AvailableSlots(hours, nil, monday)
	want := []string{"16:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableSlots = %v, want %v", got, want)
	}
}

func TestAvailableSlotsChronological(t *testing.T) {
	hours := &entity.DayHours{Start: "08:00", End: "12:00"}

	got := AvailableSlots(hours, nil, monday)
	if len(got) != 8 {
		t.Fatalf("expected 8 slots, got %d: %v", len(got), got)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("slots not ascending: %v", got)
		}
	}
}

func TestAvailableSlotsIgnoresOtherDates(t *testing.T) {
	dentistID := uuid.New()
	hours := &entity.DayHours{Start: "09:00", End: "10:00"}
	existing := []entity.Appointment{
		appointment(dentistID, monday.AddDate(0, 0, 7), "09:00", entity.AppointmentStatusScheduled),
	}

	got := AvailableSlots(hours, existing, monday)
	want := []string{"09:00", "09:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableSlots = %v, want %v", got, want)
	}
}
