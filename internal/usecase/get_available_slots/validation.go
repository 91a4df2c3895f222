package get_available_slots

import (
	"fmt"

	"github.com/chris030500/Barberia/internal/domain"
)

// validateRequest checks the request fields before any repository call.
func validateRequest(req *Request) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Overrides may be omitted (non-positive), but an explicit value has bounds.
	if req.SlotSizeMin > domain.MaxServiceDurationMin {
		return fmt.Errorf("%w: slotSizeMin must not exceed %d", ErrInvalidInput, domain.MaxServiceDurationMin)
	}

	if req.DurationMin > domain.MaxServiceDurationMin {
		return fmt.Errorf("%w: durationMin must not exceed %d", ErrInvalidInput, domain.MaxServiceDurationMin)
	}

	return nil
}

// effectiveSlotSize resolves the grid step: request override when positive,
// otherwise the configured default.
func effectiveSlotSize(requested, configured int) int {
	if requested > 0 {
		return requested
	}
	if configured > 0 {
		return configured
	}
	return domain.DefaultSlotSizeMin
}

// effectiveDuration resolves the service duration: request override when
// positive, then the catalog duration, then the defensive fallback.
func effectiveDuration(requested int, service *domain.Service) int {
	if requested > 0 {
		return requested
	}
	if service != nil && service.DurationMin > 0 {
		return service.DurationMin
	}
	return domain.FallbackDurationMin
}
