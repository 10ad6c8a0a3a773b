// Package scheduling computes booking conflicts and free time slots for a
// dentist's calendar. It is pure computation over booking data and performs
// no persistence of its own.
package scheduling

import (
	"time"

	"dental-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

// SlotInterval is the grid appointments are offered on.
const SlotInterval = 30 * time.Minute

const (
	timeLayout = "15:04"
	dateLayout = "2006-01-02"
)

// NormalizeTime canonicalizes an HH:MM string ("9:30" -> "09:30") so that
// stored times compare by exact string equality. Returns false when the
// value is not a valid 24-hour time of day.
func NormalizeTime(hhmm string) (string, bool) {
	t, err := time.Parse(timeLayout, hhmm)
	if err != nil {
		return "", false
	}
	return t.Format(timeLayout), true
}

// HasConflict reports whether any appointment in existing, other than
// excludeID, holds the exact same (dentist, date, time) slot and still
// occupies it. Pass uuid.Nil as excludeID when creating a new appointment.
//
// Only exact time matches count: a 60-minute appointment overlapping a
// 30-minute one at a different start time is not detected.
func HasConflict(existing []entity.Appointment, dentistID uuid.UUID, date time.Time, hhmm string, excludeID uuid.UUID) bool {
	day := date.Format(dateLayout)
	for i := range existing {
		apt := &existing[i]
		if apt.ID == excludeID {
			continue
		}
		if !apt.OccupiesSlot() {
			continue
		}
		if apt.DentistID != dentistID {
			continue
		}
		if apt.AppointmentDate.Format(dateLayout) != day {
			continue
		}
		if apt.AppointmentTime == hhmm {
			return true
		}
	}
	return false
}

// AvailableSlots generates every 30-minute-aligned start time from the
// working window's start (inclusive) to its end (exclusive) that is not
// taken by an appointment still occupying its slot on that date. Slots are
// returned in chronological order. A nil or incomplete working window
// yields no slots.
//
// A slot counts as taken only on an exact time match; partial overlaps are
// not trimmed.
func AvailableSlots(hours *entity.DayHours, existing []entity.Appointment, date time.Time) []string {
	slots := []string{}
	if hours == nil || !hours.IsSet() {
		return slots
	}

	start, err := time.Parse(timeLayout, hours.Start)
	if err != nil {
		return slots
	}
	end, err := time.Parse(timeLayout, hours.End)
	if err != nil {
		return slots
	}

	booked := make(map[string]struct{}, len(existing))
	day := date.Format(dateLayout)
	for i := range existing {
		apt := &existing[i]
		if apt.OccupiesSlot() && apt.AppointmentDate.Format(dateLayout) == day {
			booked[apt.AppointmentTime] = struct{}{}
		}
	}

	for t := start; t.Before(end); t = t.Add(SlotInterval) {
		slot := t.Format(timeLayout)
		if _, taken := booked[slot]; !taken {
			slots = append(slots, slot)
		}
	}

	return slots
}
