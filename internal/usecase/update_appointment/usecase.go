package update_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "github.com/chris030500/Barberia/internal/infra/storage/appointment"
	catalogRepo "github.com/chris030500/Barberia/internal/infra/storage/catalog"

	"github.com/chris030500/Barberia/internal/domain"
)

// UseCase use case that edits or reschedules a scheduled cita
type UseCase struct {
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase creates the update use case.
func NewUseCase(
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute applies a partial update. When the interval moves, the overlap
// check runs again inside a serializable transaction with the cita itself
// excluded, so rescheduling onto its own current interval stays legal.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d", req.ID)

	// 1. Validate the request
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	var (
		result      *domain.Appointment
		durationMin int
	)

	// 2. Load, re-derive and persist inside one serializable transaction
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		cita, err := uc.appointmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: cita id=%d not found", req.ID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get cita id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// Closed citas are immutable
		if cita.IsClosed() {
			uc.logger.Warn("UpdateAppointment: cita id=%d is %s", req.ID, cita.Status)
			return ErrAppointmentClosed
		}

		service, err := uc.catalogRepo.GetByID(txCtx, cita.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Error("UpdateAppointment: cita id=%d references missing service id=%d", req.ID, cita.ServiceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get service id=%d: %v", cita.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		// 3. Merge the partial fields
		if req.ClientName != nil {
			cita.ClientName = *req.ClientName
		}
		if req.ClientPhoneE164 != nil {
			cita.ClientPhoneE164 = req.ClientPhoneE164
		}
		if req.Start != nil {
			cita.Start = *req.Start
		}
		if req.DurationOverrideMin != nil {
			cita.DurationOverrideMin = req.DurationOverrideMin
		}
		if req.PriceOverrideCentavos != nil {
			cita.PriceOverrideCentavos = req.PriceOverrideCentavos
		}
		if req.Notes != nil {
			cita.Notes = req.Notes
		}

		// 4. The end is always derived, never carried over blindly
		durationMin = domain.EffectiveDurationMin(cita.DurationOverrideMin, service.DurationMin)
		cita.End = cita.Start.Add(time.Duration(durationMin) * time.Minute)

		// 5. Re-check overlap when the interval could have moved
		if req.Start != nil || req.DurationOverrideMin != nil {
			overlapping, err := uc.appointmentRepo.CountOverlapping(txCtx, cita.BarberID, cita.Start, cita.End, &cita.ID)
			if err != nil {
				uc.logger.Error("UpdateAppointment: failed to count overlapping citas: %v", err)
				return fmt.Errorf("%w: failed to count overlapping appointments: %v", ErrInternal, err)
			}
			if overlapping > 0 {
				uc.logger.Warn("UpdateAppointment: interval %s - %s already taken for barber id=%d",
					cita.Start.Format(time.RFC3339), cita.End.Format(time.RFC3339), cita.BarberID)
				return ErrSlotConflict
			}
		}

		if err := uc.appointmentRepo.Update(txCtx, cita); err != nil {
			uc.logger.Error("UpdateAppointment: failed to update cita id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = cita
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated cita id=%d", result.ID)

	return toResponse(result, durationMin), nil
}
