package usecase_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/repository"
	"dental-clinic-api/internal/service"
	"dental-clinic-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB connects to the test database. Tests are skipped when no
// database is configured.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	_ = godotenv.Load("../../.env")

	host := os.Getenv("DB_HOST")
	if host == "" {
		t.Skip("DB_HOST not set")
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("db: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{}, &entity.Patient{}, &entity.Dentist{},
		&entity.Service{}, &entity.Appointment{}, &entity.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

type fixture struct {
	db           *gorm.DB
	appointments usecase.AppointmentUsecase
	ctx          context.Context
	patientID    uuid.UUID
	dentistID    uuid.UUID
	serviceID    uuid.UUID
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupDB(t)

	log := logrus.New()
	log.SetOutput(os.Stdout)

	appointmentRepo := repository.NewAppointmentRepository()
	patientRepo := repository.NewPatientRepository()
	dentistRepo := repository.NewDentistRepository()
	serviceRepo := repository.NewServiceRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	auditService := service.NewAuditService(log, auditLogRepo)

	appointments := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, dentistRepo, serviceRepo, auditService)

	tag := uuid.New().String()[:8]

	actor := &entity.User{
		Username: "staff-" + tag,
		Email:    fmt.Sprintf("staff-%s@clinic.test", tag),
		Password: "irrelevant",
		Role:     entity.RoleReceptionist,
		IsActive: true,
	}
	if err := db.Create(actor).Error; err != nil {
		t.Fatalf("create actor: %v", err)
	}

	patient := &entity.Patient{
		FirstName:   "Test",
		LastName:    "Patient",
		Email:       fmt.Sprintf("patient-%s@clinic.test", tag),
		Phone:       "08000000000",
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
	}
	if err := db.Create(patient).Error; err != nil {
		t.Fatalf("create patient: %v", err)
	}

	dentist := &entity.Dentist{
		FirstName:      "Test",
		LastName:       "Dentist",
		Email:          fmt.Sprintf("dentist-%s@clinic.test", tag),
		Phone:          "08000000001",
		Specialization: "General",
		LicenseNumber:  "LIC-" + tag,
		WorkingHours: entity.WeekSchedule{
			"monday": {Start: "09:00", End: "11:00"},
		},
		IsActive: true,
	}
	if err := db.Create(dentist).Error; err != nil {
		t.Fatalf("create dentist: %v", err)
	}

	svc := &entity.Service{
		Name:     "Cleaning " + tag,
		Duration: 45,
		Category: entity.CategoryPreventive,
		IsActive: true,
	}
	if err := db.Create(svc).Error; err != nil {
		t.Fatalf("create service: %v", err)
	}

	t.Cleanup(func() {
		db.Where("dentist_id = ?", dentist.ID).Delete(&entity.Appointment{})
		db.Where("user_id = ?", actor.ID).Delete(&entity.AuditLog{})
		db.Delete(svc)
		db.Delete(dentist)
		db.Delete(patient)
		db.Delete(actor)
	})

	ctx := context.WithValue(context.Background(), middleware.UserIDKey, actor.ID)

	return &fixture{
		db:           db,
		appointments: appointments,
		ctx:          ctx,
		patientID:    patient.ID,
		dentistID:    dentist.ID,
		serviceID:    svc.ID,
	}
}

// nextMonday returns the date string of the first Monday after today.
func nextMonday() string {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func TestAppointmentLifecycle(t *testing.T) {
	f := setupFixture(t)
	date := nextMonday()

	// Fresh calendar: 09:00-11:00 gives four half-hour slots
	slots, err := f.appointments.AvailableSlots(f.ctx, f.dentistID, date)
	if err != nil {
		t.Fatalf("available slots: %v", err)
	}
	want := []string{"09:00", "09:30", "10:00", "10:30"}
	if len(slots.AvailableSlots) != len(want) {
		t.Fatalf("expected %v, got %v", want, slots.AvailableSlots)
	}
	for i, s := range want {
		if slots.AvailableSlots[i] != s {
			t.Fatalf("expected %v, got %v", want, slots.AvailableSlots)
		}
	}

	created, err := f.appointments.Create(f.ctx, &dto.CreateAppointmentRequest{
		PatientID:       f.patientID,
		DentistID:       f.dentistID,
		ServiceID:       f.serviceID,
		AppointmentDate: date,
		AppointmentTime: "9:00", // unpadded on purpose
		Duration:        999,    // must be ignored
		Reason:          "Routine cleaning",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.AppointmentTime != "09:00" {
		t.Errorf("expected normalized time 09:00, got %q", created.AppointmentTime)
	}
	if created.Duration != 45 {
		t.Errorf("expected duration from service (45), got %d", created.Duration)
	}
	if created.Status != string(entity.AppointmentStatusScheduled) {
		t.Errorf("expected status scheduled, got %q", created.Status)
	}

	// Same dentist, same slot: conflict
	_, err = f.appointments.Create(f.ctx, &dto.CreateAppointmentRequest{
		PatientID:       f.patientID,
		DentistID:       f.dentistID,
		ServiceID:       f.serviceID,
		AppointmentDate: date,
		AppointmentTime: "09:00",
		Reason:          "Second booking",
	})
	if err != usecase.ErrSlotAlreadyBooked {
		t.Fatalf("expected ErrSlotAlreadyBooked, got %v", err)
	}

	// The booked slot disappears from availability
	slots, err = f.appointments.AvailableSlots(f.ctx, f.dentistID, date)
	if err != nil {
		t.Fatalf("available slots: %v", err)
	}
	for _, s := range slots.AvailableSlots {
		if s == "09:00" {
			t.Error("booked slot still listed as available")
		}
	}

	// Cancelling frees the slot
	_, err = f.appointments.Update(f.ctx, created.ID, &dto.UpdateAppointmentRequest{
		Status: string(entity.AppointmentStatusCancelled),
	})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	second, err := f.appointments.Create(f.ctx, &dto.CreateAppointmentRequest{
		PatientID:       f.patientID,
		DentistID:       f.dentistID,
		ServiceID:       f.serviceID,
		AppointmentDate: date,
		AppointmentTime: "09:00",
		Reason:          "Rebooked after cancellation",
	})
	if err != nil {
		t.Fatalf("create after cancel: %v", err)
	}

	// Completed appointments are frozen
	_, err = f.appointments.Update(f.ctx, second.ID, &dto.UpdateAppointmentRequest{
		Status: string(entity.AppointmentStatusCompleted),
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	_, err = f.appointments.Update(f.ctx, second.ID, &dto.UpdateAppointmentRequest{
		Reason: "Changed my mind",
	})
	if err != usecase.ErrAppointmentLocked {
		t.Errorf("expected ErrAppointmentLocked on update, got %v", err)
	}
	if err := f.appointments.Delete(f.ctx, second.ID); err != usecase.ErrAppointmentLocked {
		t.Errorf("expected ErrAppointmentLocked on delete, got %v", err)
	}
}

func TestAppointmentReschedulingChecksNewSlot(t *testing.T) {
	f := setupFixture(t)
	date := nextMonday()

	first, err := f.appointments.Create(f.ctx, &dto.CreateAppointmentRequest{
		PatientID:       f.patientID,
		DentistID:       f.dentistID,
		ServiceID:       f.serviceID,
		AppointmentDate: date,
		AppointmentTime: "09:00",
		Reason:          "First visit",
	})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}

	second, err := f.appointments.Create(f.ctx, &dto.CreateAppointmentRequest{
		PatientID:       f.patientID,
		DentistID:       f.dentistID,
		ServiceID:       f.serviceID,
		AppointmentDate: date,
		AppointmentTime: "10:00",
		Reason:          "Second visit",
	})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	// Moving onto an occupied slot fails
	_, err = f.appointments.Update(f.ctx, second.ID, &dto.UpdateAppointmentRequest{
		AppointmentTime: "09:00",
	})
	if err != usecase.ErrSlotAlreadyBooked {
		t.Errorf("expected ErrSlotAlreadyBooked, got %v", err)
	}

	// Re-submitting an appointment's own slot is not a conflict
	updated, err := f.appointments.Update(f.ctx, first.ID, &dto.UpdateAppointmentRequest{
		AppointmentTime: "09:00",
		Notes:           strPtr("arrived early last time"),
	})
	if err != nil {
		t.Fatalf("self-slot update: %v", err)
	}
	if updated.Notes != "arrived early last time" {
		t.Errorf("notes not applied: %q", updated.Notes)
	}
}

func TestAppointmentCreateRejectsPast(t *testing.T) {
	f := setupFixture(t)

	_, err := f.appointments.Create(f.ctx, &dto.CreateAppointmentRequest{
		PatientID:       f.patientID,
		DentistID:       f.dentistID,
		ServiceID:       f.serviceID,
		AppointmentDate: "2020-01-06",
		AppointmentTime: "09:00",
		Reason:          "Time travel",
	})
	if err != usecase.ErrAppointmentInPast {
		t.Errorf("expected ErrAppointmentInPast, got %v", err)
	}
}

func strPtr(s string) *string { return &s }
