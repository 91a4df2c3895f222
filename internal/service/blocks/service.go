package blocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chris030500/Barberia/internal/domain"
	barberRepo "github.com/chris030500/Barberia/internal/infra/storage/barber"
	blockRepo "github.com/chris030500/Barberia/internal/infra/storage/block"
	"github.com/chris030500/Barberia/internal/service/blocks/models"
)

// Service manages bloqueos, the time-off intervals the slot engine subtracts
type Service struct {
	blockRepo       BlockRepository
	appointmentRepo AppointmentRepository
	barberRepo      BarberRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService creates the blocks service.
func NewService(
	blockRepo BlockRepository,
	appointmentRepo AppointmentRepository,
	barberRepo BarberRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		blockRepo:       blockRepo,
		appointmentRepo: appointmentRepo,
		barberRepo:      barberRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Create reserves a new bloqueo. The interval is validated against both other
// bloqueos and scheduled citas inside one serializable transaction; a block
// may never swallow an appointment the client already holds.
func (s *Service) Create(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("CreateBlock: barber=%d, start=%s, end=%s",
		req.BarberID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))

	if err := validateInterval(req.BarberID, req.Start, req.End, req.Reason); err != nil {
		s.logger.Warn("CreateBlock: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.barberRepo.GetByID(ctx, req.BarberID); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("CreateBlock: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("CreateBlock: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: Create - barber lookup: %v", ErrInternal, err)
	}

	var result *domain.Block

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.checkOverlaps(txCtx, req.BarberID, req.Start, req.End, nil); err != nil {
			return err
		}

		created, err := s.blockRepo.Create(txCtx, &domain.Block{
			BarberID: req.BarberID,
			Start:    req.Start,
			End:      req.End,
			Reason:   req.Reason,
		})
		if err != nil {
			s.logger.Error("CreateBlock: failed to create bloqueo: %v", err)
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("CreateBlock: successfully created bloqueo id=%d", result.ID)
	return models.FromDomainBlock(result), nil
}

// GetByID fetches one bloqueo.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BlockResponse, error) {
	s.logger.Info("GetBlock: fetching bloqueo id=%d", id)

	block, err := s.blockRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("GetBlock: bloqueo id=%d not found", id)
			return nil, ErrBlockNotFound
		}
		s.logger.Error("GetBlock: repository error for bloqueo id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlock(block), nil
}

// List returns the bloqueos of a barber overlapping a range.
func (s *Service) List(ctx context.Context, req *models.ListBlocksRequest) (*models.BlockListResponse, error) {
	s.logger.Info("ListBlocks: barber=%d, from=%s, to=%s",
		req.BarberID, req.From.Format("2006-01-02"), req.To.Format("2006-01-02"))

	if req.BarberID <= 0 {
		return nil, fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}
	if !req.To.After(req.From) {
		return nil, fmt.Errorf("%w: 'hasta' must be after 'desde'", ErrInvalidInput)
	}

	items, err := s.blockRepo.ListInRange(ctx, req.BarberID, req.From, req.To)
	if err != nil {
		s.logger.Error("ListBlocks: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBlocks: fetched %d bloqueos for barber=%d", len(items), req.BarberID)
	return models.FromDomainBlockList(items), nil
}

// Update moves or relabels a bloqueo. A moved interval goes through the same
// dual overlap validation as creation, with the bloqueo itself excluded.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("UpdateBlock: bloqueo id=%d", id)

	var result *domain.Block

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		block, err := s.blockRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, blockRepo.ErrBlockNotFound) {
				s.logger.Warn("UpdateBlock: bloqueo id=%d not found", id)
				return ErrBlockNotFound
			}
			s.logger.Error("UpdateBlock: repository error for bloqueo id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		if req.Start != nil {
			block.Start = *req.Start
		}
		if req.End != nil {
			block.End = *req.End
		}
		if req.Reason != nil {
			block.Reason = req.Reason
		}

		if err := validateInterval(block.BarberID, block.Start, block.End, block.Reason); err != nil {
			s.logger.Warn("UpdateBlock: validation failed: %v", err)
			return err
		}

		if req.Start != nil || req.End != nil {
			if err := s.checkOverlaps(txCtx, block.BarberID, block.Start, block.End, &block.ID); err != nil {
				return err
			}
		}

		if err := s.blockRepo.Update(txCtx, block); err != nil {
			s.logger.Error("UpdateBlock: failed to update bloqueo id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		result = block
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateBlock: successfully updated bloqueo id=%d", id)
	return models.FromDomainBlock(result), nil
}

// Delete removes a bloqueo, releasing its interval back to availability.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBlock: removing bloqueo id=%d", id)

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteBlock: bloqueo id=%d not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: repository error for bloqueo id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlock: bloqueo id=%d removed", id)
	return nil
}

// checkOverlaps rejects intervals colliding with other bloqueos or with
// scheduled citas. Runs inside the caller's transaction.
func (s *Service) checkOverlaps(ctx context.Context, barberID int64, start, end time.Time, excludeID *int64) error {
	overlappingBlocks, err := s.blockRepo.CountOverlapping(ctx, barberID, start, end, excludeID)
	if err != nil {
		s.logger.Error("checkOverlaps: failed to count bloqueos: %v", err)
		return fmt.Errorf("%w: overlap check - blocks: %v", ErrInternal, err)
	}
	if overlappingBlocks > 0 {
		s.logger.Warn("checkOverlaps: interval overlaps %d bloqueos for barber=%d", overlappingBlocks, barberID)
		return ErrBlockOverlap
	}

	overlappingCitas, err := s.appointmentRepo.CountOverlapping(ctx, barberID, start, end, nil)
	if err != nil {
		s.logger.Error("checkOverlaps: failed to count citas: %v", err)
		return fmt.Errorf("%w: overlap check - appointments: %v", ErrInternal, err)
	}
	if overlappingCitas > 0 {
		s.logger.Warn("checkOverlaps: interval overlaps %d scheduled citas for barber=%d", overlappingCitas, barberID)
		return fmt.Errorf("%w: %d scheduled", ErrAppointmentConflict, overlappingCitas)
	}

	return nil
}

func validateInterval(barberID int64, start, end time.Time, reason *string) error {
	if barberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: inicio and fin are required", ErrInvalidInput)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: fin must be after inicio", ErrInvalidInput)
	}
	if reason != nil && len(*reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: motivo must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	return nil
}
