package catalog

import (
	"context"
	"errors"
	"fmt"

	barberRepo "github.com/chris030500/Barberia/internal/infra/storage/barber"
	"github.com/chris030500/Barberia/internal/service/catalog/models"
)

// Service read-only access to barberos and the servicio catalog
type Service struct {
	barberRepo  BarberRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService creates the catalog service.
func NewService(barberRepo BarberRepository, serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		barberRepo:  barberRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// GetBarber fetches one barbero with the services they offer.
func (s *Service) GetBarber(ctx context.Context, id int64) (*models.BarberResponse, *models.ServiceListResponse, error) {
	s.logger.Info("GetBarber: fetching barbero id=%d", id)

	barber, err := s.barberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("GetBarber: barbero id=%d not found", id)
			return nil, nil, ErrBarberNotFound
		}
		s.logger.Error("GetBarber: repository error for barbero id=%d: %v", id, err)
		return nil, nil, fmt.Errorf("%w: GetBarber - repository error: %v", ErrInternal, err)
	}

	services, err := s.barberRepo.ListServices(ctx, id)
	if err != nil {
		s.logger.Error("GetBarber: failed to list services for barbero id=%d: %v", id, err)
		return nil, nil, fmt.Errorf("%w: GetBarber - services error: %v", ErrInternal, err)
	}

	return models.FromDomainBarber(barber), models.FromDomainServiceList(services), nil
}

// ListBarbers lists barberos, optionally only the active ones.
func (s *Service) ListBarbers(ctx context.Context, onlyActive bool) (*models.BarberListResponse, error) {
	s.logger.Info("ListBarbers: onlyActive=%t", onlyActive)

	items, err := s.barberRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListBarbers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBarbers - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBarberList(items), nil
}

// ListServices lists the servicio catalog, optionally only the active ones.
func (s *Service) ListServices(ctx context.Context, onlyActive bool) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: onlyActive=%t", onlyActive)

	items, err := s.serviceRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(items), nil
}
