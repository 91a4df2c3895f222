package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	barberRepo "github.com/chris030500/Barberia/internal/infra/storage/barber"
	catalogRepo "github.com/chris030500/Barberia/internal/infra/storage/catalog"

	"github.com/chris030500/Barberia/internal/domain"
)

// Settings agenda rules the engine applies on every request
type Settings struct {
	Location         *time.Location
	SlotSizeMin      int
	BufferBetweenMin int
	MinAdvanceMin    int
	MaxAdvanceDays   int
}

// UseCase use case that computes the bookable slots of a barber for one day
type UseCase struct {
	barberRepo      BarberRepository
	catalogRepo     CatalogRepository
	scheduleRepo    ScheduleRepository
	blockRepo       BlockRepository
	appointmentRepo AppointmentRepository
	settings        Settings
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the slot computation use case.
func NewUseCase(
	barberRepo BarberRepository,
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	blockRepo BlockRepository,
	appointmentRepo AppointmentRepository,
	settings Settings,
	logger Logger,
) *UseCase {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &UseCase{
		barberRepo:      barberRepo,
		catalogRepo:     catalogRepo,
		scheduleRepo:    scheduleRepo,
		blockRepo:       blockRepo,
		appointmentRepo: appointmentRepo,
		settings:        settings,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute computes the available slots. The pipeline is fixed: schedule
// windows, minus blocks, minus scheduled citas, advance clipping, buffer
// shrink, grid walk. Reordering the stages changes boundary results.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barber=%d, service=%d, date=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Validate the request
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Capture the clock once; both advance cutoffs derive from it
	now := uc.timeProvider.Now()

	// 3. Check the barber exists
	if _, err := uc.barberRepo.GetByID(ctx, req.BarberID); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 4. Resolve the service and the effective parameters
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	slotSizeMin := effectiveSlotSize(req.SlotSizeMin, uc.settings.SlotSizeMin)
	durationMin := effectiveDuration(req.DurationMin, service)

	// 5. Advance cutoffs
	minStart := now.Add(time.Duration(uc.settings.MinAdvanceMin) * time.Minute)
	maxStart := now.AddDate(0, 0, uc.settings.MaxAdvanceDays)

	// 6. The requested day as a local range [midnight, next midnight)
	loc := uc.settings.Location
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	// 7. Weekly schedule entries for that day of week
	entries, err := uc.scheduleRepo.GetActiveByBarberAndDay(ctx, req.BarberID, domain.DayOfWeekFor(dayStart))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule for barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	baseWindows, err := resolveBaseWindows(entries, dayStart, loc)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to resolve schedule windows: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve schedule windows: %v", ErrInternal, err)
	}

	// A day off is a normal empty answer, not an error
	if len(baseWindows) == 0 {
		uc.logger.Info("GetAvailableSlots: barber id=%d does not work on %s",
			req.BarberID, req.Date.Format(domain.DateFormat))
		return uc.buildResponse(req, slotSizeMin, durationMin, nil), nil
	}

	// 8. Exclusions: blocks and scheduled citas touching the day
	blocks, err := uc.blockRepo.ListInRange(ctx, req.BarberID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocks for barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	appointments, err := uc.appointmentRepo.GetScheduledInRange(ctx, req.BarberID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get citas for barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 9. Run the pipeline
	windows := domain.SubtractWindows(baseWindows, collectExclusionWindows(blocks, appointments))
	windows = applyAdvanceLimits(windows, minStart, maxStart)
	windows = applyBuffer(windows, uc.settings.BufferBetweenMin)
	slots := generateSlots(windows, loc, slotSizeMin, durationMin)

	uc.logger.Info("GetAvailableSlots: barber=%d, date=%s: %d slots from %d windows (%d blocks, %d citas)",
		req.BarberID, req.Date.Format(domain.DateFormat), len(slots), len(baseWindows), len(blocks), len(appointments))

	return uc.buildResponse(req, slotSizeMin, durationMin, slots), nil
}

func (uc *UseCase) buildResponse(req *Request, slotSizeMin, durationMin int, slots []domain.Slot) *Response {
	if slots == nil {
		slots = []domain.Slot{}
	}
	return &Response{
		BarberID:    req.BarberID,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		SlotSizeMin: slotSizeMin,
		DurationMin: durationMin,
		Slots:       slots,
	}
}
