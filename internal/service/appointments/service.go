package appointments

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "github.com/chris030500/Barberia/internal/infra/storage/appointment"
	"github.com/chris030500/Barberia/internal/service/appointments/models"
)

// Service read and lifecycle operations over citas. Booking and rescheduling
// live in their own use cases; this service covers everything after that.
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService creates the appointments service.
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID fetches one cita.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching cita id=%d", id)

	cita, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: cita id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for cita id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(cita), nil
}

// List returns a page of citas matching the filter.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching citas, barber=%v, status=%v, from=%s, to=%s",
		req.BarberID, req.Status, req.From.Format("2006-01-02"), req.To.Format("2006-01-02"))

	if !req.To.After(req.From) {
		s.logger.Warn("List: invalid range from=%s to=%s", req.From, req.To)
		return nil, fmt.Errorf("%w: 'hasta' must be after 'desde'", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status=%v", req.Status)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	citas, total, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d citas", len(citas), total)
	return models.FromDomainAppointmentList(citas, total, filter.Page, filter.PageSize), nil
}

// ChangeStatus moves a cita through its state machine. Only scheduled citas
// move, and only into a terminal state; completed or cancelled ones never
// reopen. The read and the write share one transaction.
func (s *Service) ChangeStatus(ctx context.Context, id int64, req *models.ChangeStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("ChangeStatus: cita id=%d -> %s", id, req.Status)

	next, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("ChangeStatus: invalid status %q for cita id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	var resp *models.AppointmentResponse

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		cita, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("ChangeStatus: cita id=%d not found", id)
				return ErrAppointmentNotFound
			}
			s.logger.Error("ChangeStatus: repository error for cita id=%d: %v", id, err)
			return fmt.Errorf("%w: ChangeStatus - repository error: %v", ErrInternal, err)
		}

		if !cita.CanTransitionTo(next) {
			s.logger.Warn("ChangeStatus: transition %s -> %s rejected for cita id=%d", cita.Status, next, id)
			return fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidTransition, cita.Status, next)
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, next); err != nil {
			s.logger.Error("ChangeStatus: failed to update cita id=%d: %v", id, err)
			return fmt.Errorf("%w: ChangeStatus - update error: %v", ErrInternal, err)
		}

		cita.Status = next
		resp = models.FromDomainAppointment(cita)
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("ChangeStatus: cita id=%d is now %s", id, next)
	return resp, nil
}

// Delete removes a cita permanently. Cancelling is the normal path; deletion
// exists for operator cleanup.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing cita id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: cita id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for cita id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: cita id=%d removed", id)
	return nil
}
