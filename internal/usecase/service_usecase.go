package usecase

import (
	"context"
	"errors"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrServiceHasAppointments = errors.New("service has upcoming appointments and cannot be deleted")
	ErrNonPositivePrice       = errors.New("price must be positive")
)

type ServiceUsecase interface {
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	List(ctx context.Context) ([]dto.ServiceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	serviceRepo     repository.ServiceRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) ServiceUsecase {
	return &serviceUsecase{
		db:              db,
		log:             log,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *serviceUsecase) Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrActorMissing
	}

	if req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrNonPositivePrice
	}

	svc := &entity.Service{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Category:    serviceCategory(req.Category),
		IsActive:    true,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.serviceRepo.Create(tx, svc); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &actorID, entity.AuditActionServiceCreate,
		"service", svc.ID.String(), svc); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) List(ctx context.Context) ([]dto.ServiceResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find services: %+v", err)
		return nil, err
	}

	return converter.ServicesToResponses(services), nil
}

func (u *serviceUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error) {
	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	return converter.ServiceToResponse(svc), nil
}

// Update replaces a service definition. Duration changes only affect
// appointments booked afterwards; existing ones keep the duration they
// were created with.
func (u *serviceUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrActorMissing
	}

	if req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrNonPositivePrice
	}

	db := u.db.WithContext(ctx)

	svc, err := u.serviceRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	oldValue := *svc

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Duration = req.Duration
	svc.Price = req.Price
	svc.Category = serviceCategory(req.Category)

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.serviceRepo.Update(tx, svc); err != nil {
		u.log.Warnf("Failed to update service: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &actorID, entity.AuditActionServiceUpdate,
		"service", svc.ID.String(), oldValue, svc); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrActorMissing
	}

	db := u.db.WithContext(ctx)

	svc, err := u.serviceRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}

	active, err := u.appointmentRepo.CountActiveByService(db, id)
	if err != nil {
		u.log.Warnf("Failed to count active appointments: %+v", err)
		return err
	}
	if active > 0 {
		return ErrServiceHasAppointments
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.serviceRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete service: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, &actorID, entity.AuditActionServiceDelete,
		"service", id.String(), svc); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func serviceCategory(raw string) entity.ServiceCategory {
	if raw == "" {
		return entity.CategoryOther
	}
	return entity.ServiceCategory(raw)
}
