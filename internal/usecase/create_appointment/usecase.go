package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	barberRepo "github.com/chris030500/Barberia/internal/infra/storage/barber"
	catalogRepo "github.com/chris030500/Barberia/internal/infra/storage/catalog"

	"github.com/chris030500/Barberia/internal/domain"
)

// UseCase use case that books a new cita
type UseCase struct {
	barberRepo      BarberRepository
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the booking use case.
func NewUseCase(
	barberRepo BarberRepository,
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		barberRepo:      barberRepo,
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute books a cita. Overlap is re-checked inside a serializable
// transaction, so two clients racing for the same interval cannot both win
// even if the slot looked free when they queried availability.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: barber=%d, service=%d, start=%s",
		req.BarberID, req.ServiceID, req.Start.Format(time.RFC3339))

	// 1. Validate the request
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Reject starts behind the clock
	now := uc.timeProvider.Now()
	if req.Start.Before(now) {
		uc.logger.Warn("CreateAppointment: start %s is in the past", req.Start.Format(time.RFC3339))
		return nil, ErrStartInPast
	}

	// 3. Check the barber exists
	if _, err := uc.barberRepo.GetByID(ctx, req.BarberID); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateAppointment: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 4. Resolve the service and derive the interval
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	durationMin := domain.EffectiveDurationMin(req.DurationOverrideMin, service.DurationMin)
	priceCentavos := domain.EffectivePriceCentavos(req.PriceOverrideCentavos, service.PriceCentavos)
	end := req.Start.Add(time.Duration(durationMin) * time.Minute)

	var result *domain.Appointment

	// 5. Re-validate and insert inside one serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.appointmentRepo.CountOverlapping(txCtx, req.BarberID, req.Start, end, nil)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to count overlapping citas: %v", err)
			return fmt.Errorf("%w: failed to count overlapping appointments: %v", ErrInternal, err)
		}

		if overlapping > 0 {
			uc.logger.Warn("CreateAppointment: interval %s - %s already taken for barber id=%d",
				req.Start.Format(time.RFC3339), end.Format(time.RFC3339), req.BarberID)
			return ErrSlotConflict
		}

		cita := &domain.Appointment{
			BarberID:              req.BarberID,
			ServiceID:             req.ServiceID,
			ClientName:            req.ClientName,
			ClientPhoneE164:       req.ClientPhoneE164,
			Start:                 req.Start,
			End:                   end,
			Status:                domain.StatusScheduled,
			DurationOverrideMin:   req.DurationOverrideMin,
			PriceOverrideCentavos: req.PriceOverrideCentavos,
			Notes:                 req.Notes,
			ServiceName:           service.Name,
		}

		created, err := uc.appointmentRepo.Create(txCtx, cita)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create cita: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created cita id=%d", result.ID)

	if result.ServiceName == "" {
		result.ServiceName = service.Name
	}
	return toResponse(result, durationMin, priceCentavos), nil
}
