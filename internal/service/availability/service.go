package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chris030500/Barberia/internal/domain"
	barberRepo "github.com/chris030500/Barberia/internal/infra/storage/barber"
	"github.com/chris030500/Barberia/internal/service/availability/models"
	slotsUC "github.com/chris030500/Barberia/internal/usecase/get_available_slots"
)

// upcomingLimit how many near-future bloqueos and citas the summary carries
const upcomingLimit = 5

// Service facade aggregating the barber profile, weekly horario, agenda
// metrics and the slot engine into a single overview per barber
type Service struct {
	slots           SlotsUseCase
	barberRepo      BarberRepository
	catalogRepo     CatalogRepository
	scheduleRepo    ScheduleRepository
	blockRepo       BlockRepository
	appointmentRepo AppointmentRepository
	horizonDays     int
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates the availability facade. horizonDays bounds both the
// next-available search and the upcoming lists, normally the same value that
// caps booking.
func NewService(
	slots SlotsUseCase,
	barberRepo BarberRepository,
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	blockRepo BlockRepository,
	appointmentRepo AppointmentRepository,
	horizonDays int,
	logger Logger,
) *Service {
	return &Service{
		slots:           slots,
		barberRepo:      barberRepo,
		catalogRepo:     catalogRepo,
		scheduleRepo:    scheduleRepo,
		blockRepo:       blockRepo,
		appointmentRepo: appointmentRepo,
		horizonDays:     horizonDays,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetSummary builds the overview: the barber with their services, the weekly
// horario, aggregate metrics, today's slots, the next bookable start within
// the horizon, and the next few bloqueos and citas.
func (s *Service) GetSummary(ctx context.Context, req *models.SummaryRequest) (*models.SummaryResponse, error) {
	s.logger.Info("GetSummary: barber=%d, service=%d", req.BarberID, req.ServiceID)

	if req.BarberID <= 0 {
		return nil, fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	barber, err := s.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("GetSummary: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("GetSummary: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: barber lookup: %v", ErrInternal, err)
	}

	services, err := s.barberRepo.ListServices(ctx, req.BarberID)
	if err != nil {
		s.logger.Error("GetSummary: failed to list services for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: barber services: %v", ErrInternal, err)
	}

	schedule, err := s.scheduleRepo.GetByBarber(ctx, req.BarberID)
	if err != nil {
		s.logger.Error("GetSummary: failed to get horario for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: schedule lookup: %v", ErrInternal, err)
	}

	serviceID, err := s.resolveServiceID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	date := req.Date
	if date.IsZero() {
		date = now
	}

	// Today's slots through the engine
	today, err := s.slots.Execute(ctx, &slotsUC.Request{
		BarberID:  req.BarberID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		s.logger.Error("GetSummary: slot engine failed for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: slot computation: %v", ErrInternal, err)
	}

	resp := &models.SummaryResponse{
		BarberID:  req.BarberID,
		ServiceID: serviceID,
		Date:      date,

		Barber:   models.FromDomainBarberProfile(barber, services),
		Schedule: models.FromDomainSchedule(schedule),

		WorksToday: worksOn(schedule, domain.DayOfWeekFor(date)),
		SlotsToday: len(today.Slots),
	}
	if len(today.Slots) > 0 {
		first := today.Slots[0].Start
		last := today.Slots[len(today.Slots)-1].Start
		resp.FirstSlot = &first
		resp.LastSlot = &last
		resp.NextAvailable = &first
	}

	// No free slot today: scan forward day by day until the horizon gives one
	if resp.NextAvailable == nil {
		next, err := s.findNextAvailable(ctx, req.BarberID, serviceID, date)
		if err != nil {
			return nil, err
		}
		resp.NextAvailable = next
	}

	// Upcoming lists are bounded by the same horizon that caps booking
	horizon := now.AddDate(0, 0, s.horizonDays)

	blocks, err := s.blockRepo.GetUpcoming(ctx, req.BarberID, now, upcomingLimit)
	if err != nil {
		s.logger.Error("GetSummary: failed to get upcoming bloqueos for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: upcoming blocks: %v", ErrInternal, err)
	}
	resp.UpcomingBlocks = models.FromDomainBlocks(withinBlockHorizon(blocks, horizon))

	citas, err := s.appointmentRepo.GetUpcoming(ctx, req.BarberID, now, upcomingLimit)
	if err != nil {
		s.logger.Error("GetSummary: failed to get upcoming citas for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: upcoming appointments: %v", ErrInternal, err)
	}
	resp.UpcomingAppointments = models.FromDomainAppointments(withinCitaHorizon(citas, horizon))

	resp.Metrics = buildMetrics(schedule, services, resp.UpcomingBlocks, resp.UpcomingAppointments)

	s.logger.Info("GetSummary: barber=%d: %d slots today, next=%v", req.BarberID, resp.SlotsToday, resp.NextAvailable)
	return resp, nil
}

// resolveServiceID keeps the explicit choice or falls back to the first
// active catalog service.
func (s *Service) resolveServiceID(ctx context.Context, serviceID int64) (int64, error) {
	if serviceID > 0 {
		return serviceID, nil
	}

	services, err := s.catalogRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("GetSummary: failed to list services: %v", err)
		return 0, fmt.Errorf("%w: service lookup: %v", ErrInternal, err)
	}
	if len(services) == 0 {
		s.logger.Warn("GetSummary: no active services to anchor the summary")
		return 0, ErrServiceNotFound
	}
	return services[0].ID, nil
}

func (s *Service) findNextAvailable(ctx context.Context, barberID, serviceID int64, from time.Time) (*time.Time, error) {
	for i := 1; i <= s.horizonDays; i++ {
		day := from.AddDate(0, 0, i)
		res, err := s.slots.Execute(ctx, &slotsUC.Request{
			BarberID:  barberID,
			ServiceID: serviceID,
			Date:      day,
		})
		if err != nil {
			s.logger.Error("GetSummary: slot engine failed while scanning %s: %v", day.Format("2006-01-02"), err)
			return nil, fmt.Errorf("%w: slot computation: %v", ErrInternal, err)
		}
		if len(res.Slots) > 0 {
			next := res.Slots[0].Start
			return &next, nil
		}
	}
	return nil, nil
}

// worksOn reports whether the horario has an active range on the given day,
// regardless of how booked the day already is.
func worksOn(schedule []*domain.WeeklyScheduleEntry, dayOfWeek int) bool {
	for _, e := range schedule {
		if e.Active && e.DayOfWeek == dayOfWeek {
			return true
		}
	}
	return false
}

func withinBlockHorizon(blocks []*domain.Block, horizon time.Time) []*domain.Block {
	out := make([]*domain.Block, 0, len(blocks))
	for _, b := range blocks {
		if b.Start.Before(horizon) {
			out = append(out, b)
		}
	}
	return out
}

func withinCitaHorizon(citas []*domain.Appointment, horizon time.Time) []*domain.Appointment {
	out := make([]*domain.Appointment, 0, len(citas))
	for _, c := range citas {
		if c.Start.Before(horizon) {
			out = append(out, c)
		}
	}
	return out
}

// buildMetrics aggregates the horario and the capped upcoming lists. Active
// days count distinct days of week with at least one active range; hours per
// week sums the active ranges.
func buildMetrics(
	schedule []*domain.WeeklyScheduleEntry,
	services []*domain.Service,
	blocks []*models.UpcomingBlock,
	citas []*models.UpcomingAppointment,
) *models.SummaryMetrics {
	activeDays := make(map[int]bool)
	totalMinutes := 0
	for _, e := range schedule {
		if !e.Active {
			continue
		}
		activeDays[e.DayOfWeek] = true
		from, errFrom := e.StartLocal.Minutes()
		to, errTo := e.EndLocal.Minutes()
		if errFrom == nil && errTo == nil && to > from {
			totalMinutes += to - from
		}
	}

	m := &models.SummaryMetrics{
		ActiveDays:     len(activeDays),
		HoursPerWeek:   float64(totalMinutes) / 60,
		UpcomingBlocks: len(blocks),
		UpcomingCitas:  len(citas),
		ActiveServices: len(services),
	}
	if len(citas) > 0 {
		m.NextCita = &citas[0].Start
	}
	if len(blocks) > 0 {
		m.NextBlock = &blocks[0].Start
	}
	return m
}
