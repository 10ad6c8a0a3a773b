package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// stubAppointmentUsecase lets each test pin the usecase outcome without a
// database behind it.
type stubAppointmentUsecase struct {
	createFn func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
	slotsFn  func(ctx context.Context, dentistID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error)
}

func (s *stubAppointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubAppointmentUsecase) List(ctx context.Context, filter *entity.AppointmentFilter, page, limit int) ([]dto.AppointmentResponse, int64, error) {
	return nil, 0, nil
}

func (s *stubAppointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return s.getFn(ctx, id)
}

func (s *stubAppointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func (s *stubAppointmentUsecase) AvailableSlots(ctx context.Context, dentistID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error) {
	return s.slotsFn(ctx, dentistID, date)
}

func validCreateBody() []byte {
	body, _ := json.Marshal(dto.CreateAppointmentRequest{
		PatientID:       uuid.New(),
		DentistID:       uuid.New(),
		ServiceID:       uuid.New(),
		AppointmentDate: "2030-01-07",
		AppointmentTime: "09:30",
		Reason:          "Routine cleaning",
	})
	return body
}

func TestCreateAppointmentSuccess(t *testing.T) {
	stub := &stubAppointmentUsecase{
		createFn: func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return &dto.AppointmentResponse{ID: uuid.New(), Status: "scheduled"}, nil
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(validCreateBody()))
	rec := httptest.NewRecorder()

	h.CreateAppointment(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp response.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Success {
		t.Error("expected success response")
	}
}

func TestCreateAppointmentSlotConflict(t *testing.T) {
	stub := &stubAppointmentUsecase{
		createFn: func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrSlotAlreadyBooked
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(validCreateBody()))
	rec := httptest.NewRecorder()

	h.CreateAppointment(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestCreateAppointmentPastDate(t *testing.T) {
	stub := &stubAppointmentUsecase{
		createFn: func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrAppointmentInPast
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(validCreateBody()))
	rec := httptest.NewRecorder()

	h.CreateAppointment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader([]byte("{")))
		rec := httptest.NewRecorder()

		h.CreateAppointment(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("bad time format", func(t *testing.T) {
		body, _ := json.Marshal(dto.CreateAppointmentRequest{
			PatientID:       uuid.New(),
			DentistID:       uuid.New(),
			ServiceID:       uuid.New(),
			AppointmentDate: "2030-01-07",
			AppointmentTime: "930",
			Reason:          "Routine cleaning",
		})
		req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.CreateAppointment(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestGetAppointmentNotFound(t *testing.T) {
	stub := &stubAppointmentUsecase{
		getFn: func(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrAppointmentNotFound
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	router := mux.NewRouter()
	router.HandleFunc("/appointments/{id}", h.GetAppointment).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/appointments/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestGetAppointmentInvalidID(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	router := mux.NewRouter()
	router.HandleFunc("/appointments/{id}", h.GetAppointment).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/appointments/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestDeleteAppointmentLocked(t *testing.T) {
	stub := &stubAppointmentUsecase{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			return usecase.ErrAppointmentLocked
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	router := mux.NewRouter()
	router.HandleFunc("/appointments/{id}", h.DeleteAppointment).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/appointments/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestGetAvailableSlots(t *testing.T) {
	dentistID := uuid.New()
	stub := &stubAppointmentUsecase{
		slotsFn: func(ctx context.Context, id uuid.UUID, date string) (*dto.AvailableSlotsResponse, error) {
			return &dto.AvailableSlotsResponse{
				DentistID:      id,
				Date:           date,
				AvailableSlots: []string{"09:00", "09:30"},
			}, nil
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet,
		"/appointments/available-slots?dentist_id="+dentistID.String()+"&date=2030-01-07", nil)
	rec := httptest.NewRecorder()

	h.GetAvailableSlots(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetAvailableSlotsMissingParams(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	t.Run("bad dentist id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/appointments/available-slots?dentist_id=nope&date=2030-01-07", nil)
		rec := httptest.NewRecorder()

		h.GetAvailableSlots(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("missing date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/appointments/available-slots?dentist_id="+uuid.New().String(), nil)
		rec := httptest.NewRecorder()

		h.GetAvailableSlots(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}
