package entity

import "testing"

func TestAppointmentStatusIsValid(t *testing.T) {
	valid := []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
		AppointmentStatusRescheduled,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	if AppointmentStatus("pending").IsValid() {
		t.Error("expected unknown status to be invalid")
	}
	if AppointmentStatus("").IsValid() {
		t.Error("expected empty status to be invalid")
	}
}

func TestAppointmentOccupiesSlot(t *testing.T) {
	tests := []struct {
		status   AppointmentStatus
		occupies bool
	}{
		{AppointmentStatusScheduled, true},
		{AppointmentStatusRescheduled, true},
		{AppointmentStatusCompleted, false},
		{AppointmentStatusCancelled, false},
		{AppointmentStatusNoShow, false},
	}

	for _, tt := range tests {
		a := &Appointment{Status: tt.status}
		if got := a.OccupiesSlot(); got != tt.occupies {
			t.Errorf("OccupiesSlot() with status %q = %v, want %v", tt.status, got, tt.occupies)
		}
	}
}

func TestAppointmentIsLocked(t *testing.T) {
	for _, status := range []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusRescheduled,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	} {
		a := &Appointment{Status: status}
		if a.IsLocked() {
			t.Errorf("appointment with status %q should not be locked", status)
		}
	}

	completed := &Appointment{Status: AppointmentStatusCompleted}
	if !completed.IsLocked() {
		t.Error("completed appointment should be locked")
	}
}
