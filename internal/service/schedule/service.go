package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/chris030500/Barberia/internal/domain"
	barberRepo "github.com/chris030500/Barberia/internal/infra/storage/barber"
	"github.com/chris030500/Barberia/internal/service/schedule/models"
)

// Service manages the weekly horario of barbers
type Service struct {
	scheduleRepo ScheduleRepository
	barberRepo   BarberRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService creates the schedule service.
func NewService(
	scheduleRepo ScheduleRepository,
	barberRepo BarberRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		barberRepo:   barberRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetByBarber returns the full weekly horario of a barber.
func (s *Service) GetByBarber(ctx context.Context, barberID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching horario for barber=%d", barberID)

	if err := s.checkBarber(ctx, barberID); err != nil {
		return nil, err
	}

	entries, err := s.scheduleRepo.GetByBarber(ctx, barberID)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: GetByBarber - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(barberID, entries), nil
}

// Replace swaps the barber's whole weekly horario for the submitted set in
// one transaction. An empty set clears the schedule, making every day a day
// off.
func (s *Service) Replace(ctx context.Context, barberID int64, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("ReplaceSchedule: barber=%d, %d entries", barberID, len(req.Entries))

	if err := s.checkBarber(ctx, barberID); err != nil {
		return nil, err
	}

	entries, err := s.parseEntries(barberID, req.Entries)
	if err != nil {
		s.logger.Warn("ReplaceSchedule: validation failed for barber=%d: %v", barberID, err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.scheduleRepo.Replace(txCtx, barberID, entries); err != nil {
			s.logger.Error("ReplaceSchedule: failed to replace horario for barber=%d: %v", barberID, err)
			return fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	stored, err := s.scheduleRepo.GetByBarber(ctx, barberID)
	if err != nil {
		s.logger.Error("ReplaceSchedule: failed to re-read horario for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: Replace - re-read error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceSchedule: barber=%d now has %d entries", barberID, len(stored))
	return models.FromDomainSchedule(barberID, stored), nil
}

func (s *Service) checkBarber(ctx context.Context, barberID int64) error {
	if barberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}
	if _, err := s.barberRepo.GetByID(ctx, barberID); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("Schedule: barber id=%d not found", barberID)
			return ErrBarberNotFound
		}
		s.logger.Error("Schedule: failed to get barber id=%d: %v", barberID, err)
		return fmt.Errorf("%w: barber lookup: %v", ErrInternal, err)
	}
	return nil
}

// parseEntries converts and validates the submitted set: well-formed times,
// positive ranges, known days, and no collisions between active entries of
// the same day.
func (s *Service) parseEntries(barberID int64, reqs []models.EntryRequest) ([]*domain.WeeklyScheduleEntry, error) {
	entries := make([]*domain.WeeklyScheduleEntry, 0, len(reqs))
	for i, r := range reqs {
		entry, err := r.ToDomainEntry(barberID)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidInput, i, err)
		}
		if !entry.IsValid() {
			return nil, fmt.Errorf("%w: entry %d: dow must be 0..6 and desde before hasta", ErrInvalidInput, i)
		}
		entries = append(entries, entry)
	}

	// Overlap check per day among active entries
	byDay := make(map[int][]*domain.WeeklyScheduleEntry)
	for _, e := range entries {
		if e.Active {
			byDay[e.DayOfWeek] = append(byDay[e.DayOfWeek], e)
		}
	}
	for dow, dayEntries := range byDay {
		sort.Slice(dayEntries, func(i, j int) bool {
			return dayEntries[i].StartLocal.IsBefore(dayEntries[j].StartLocal)
		})
		for i := 1; i < len(dayEntries); i++ {
			if dayEntries[i].StartLocal.IsBefore(dayEntries[i-1].EndLocal) {
				return nil, fmt.Errorf("%w: day %d: %s-%s collides with %s-%s",
					ErrEntriesOverlap, dow,
					dayEntries[i-1].StartLocal, dayEntries[i-1].EndLocal,
					dayEntries[i].StartLocal, dayEntries[i].EndLocal)
			}
		}
	}

	return entries, nil
}
