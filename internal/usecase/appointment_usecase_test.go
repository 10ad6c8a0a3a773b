package usecase

import (
	"testing"
	"time"

	"dental-clinic-api/internal/delivery/dto"
)

func TestEnsureFuture(t *testing.T) {
	future := time.Now().AddDate(0, 0, 7)
	if err := ensureFuture(future.Format(dateLayout), "09:00"); err != nil {
		t.Errorf("expected future date to pass, got %v", err)
	}

	past := time.Now().AddDate(0, 0, -1)
	if err := ensureFuture(past.Format(dateLayout), "09:00"); err != ErrAppointmentInPast {
		t.Errorf("expected ErrAppointmentInPast, got %v", err)
	}

	today := time.Now().Format(dateLayout)
	if err := ensureFuture(today, "00:00"); err != ErrAppointmentInPast {
		t.Errorf("expected midnight today to be rejected, got %v", err)
	}

	if err := ensureFuture("not-a-date", "09:00"); err != ErrInvalidDate {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestNormalizeWorkingHours(t *testing.T) {
	t.Run("valid schedule", func(t *testing.T) {
		schedule, err := normalizeWorkingHours(map[string]dto.DayHoursRequest{
			"Monday": {Start: "9:00", End: "17:00"},
			"friday": {Start: "08:30", End: "12:00"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		monday, ok := schedule["monday"]
		if !ok {
			t.Fatal("expected monday entry keyed lowercase")
		}
		if monday.Start != "09:00" {
			t.Errorf("expected zero-padded start, got %q", monday.Start)
		}
	})

	t.Run("unknown day", func(t *testing.T) {
		_, err := normalizeWorkingHours(map[string]dto.DayHoursRequest{
			"payday": {Start: "09:00", End: "17:00"},
		})
		if err != ErrInvalidWorkingHours {
			t.Errorf("expected ErrInvalidWorkingHours, got %v", err)
		}
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := normalizeWorkingHours(map[string]dto.DayHoursRequest{
			"monday": {Start: "17:00", End: "09:00"},
		})
		if err != ErrInvalidWorkingHours {
			t.Errorf("expected ErrInvalidWorkingHours, got %v", err)
		}
	})

	t.Run("half-open range", func(t *testing.T) {
		_, err := normalizeWorkingHours(map[string]dto.DayHoursRequest{
			"monday": {Start: "09:00"},
		})
		if err != ErrInvalidWorkingHours {
			t.Errorf("expected ErrInvalidWorkingHours, got %v", err)
		}
	})

	t.Run("empty days dropped", func(t *testing.T) {
		schedule, err := normalizeWorkingHours(map[string]dto.DayHoursRequest{
			"monday": {},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if schedule != nil {
			t.Errorf("expected nil schedule, got %v", schedule)
		}
	})

	t.Run("nil input", func(t *testing.T) {
		schedule, err := normalizeWorkingHours(nil)
		if err != nil || schedule != nil {
			t.Errorf("expected nil, nil; got %v, %v", schedule, err)
		}
	})
}
