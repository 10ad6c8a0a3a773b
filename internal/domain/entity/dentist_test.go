package entity

import (
	"testing"
	"time"
)

func TestDayHoursIsSet(t *testing.T) {
	tests := []struct {
		hours DayHours
		want  bool
	}{
		{DayHours{Start: "09:00", End: "17:00"}, true},
		{DayHours{Start: "09:00"}, false},
		{DayHours{End: "17:00"}, false},
		{DayHours{}, false},
	}

	for _, tt := range tests {
		if got := tt.hours.IsSet(); got != tt.want {
			t.Errorf("IsSet() for %+v = %v, want %v", tt.hours, got, tt.want)
		}
	}
}

func TestWeekScheduleForDate(t *testing.T) {
	schedule := WeekSchedule{
		"monday": {Start: "09:00", End: "17:00"},
		"friday": {Start: "08:00", End: "12:00"},
	}

	// 2026-09-07 is a Monday
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	hours := schedule.ForDate(monday)
	if hours == nil {
		t.Fatal("expected hours for monday")
	}
	if hours.Start != "09:00" || hours.End != "17:00" {
		t.Errorf("unexpected hours for monday: %+v", hours)
	}

	// 2026-09-08 is a Tuesday, no entry
	tuesday := monday.AddDate(0, 0, 1)
	if schedule.ForDate(tuesday) != nil {
		t.Error("expected nil hours for a day without an entry")
	}
}

func TestWeekScheduleForDateNilSchedule(t *testing.T) {
	var schedule WeekSchedule
	if schedule.ForDate(time.Now()) != nil {
		t.Error("expected nil hours for nil schedule")
	}
}

func TestWeekScheduleValueScan(t *testing.T) {
	schedule := WeekSchedule{
		"monday": {Start: "09:00", End: "17:00"},
	}

	value, err := schedule.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var decoded WeekSchedule
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if decoded["monday"].Start != "09:00" || decoded["monday"].End != "17:00" {
		t.Errorf("round trip lost data: %+v", decoded)
	}

	var empty WeekSchedule
	v, err := empty.Value()
	if err != nil || v != nil {
		t.Errorf("empty schedule should store NULL, got %v, %v", v, err)
	}
	if err := decoded.Scan(nil); err != nil {
		t.Fatalf("Scan nil: %v", err)
	}
	if decoded != nil {
		t.Error("scanning NULL should clear the schedule")
	}
}
