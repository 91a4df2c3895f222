package update_appointment

import (
	"fmt"
	"strings"

	"github.com/chris030500/Barberia/internal/domain"
)

// validateRequest checks the request fields before any repository call.
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.ClientName != nil {
		if strings.TrimSpace(*req.ClientName) == "" {
			return fmt.Errorf("%w: clientName must not be empty", ErrInvalidInput)
		}
		if len(*req.ClientName) > domain.MaxClientNameLength {
			return fmt.Errorf("%w: clientName must not exceed %d characters", ErrInvalidInput, domain.MaxClientNameLength)
		}
	}

	if req.Start != nil && req.Start.IsZero() {
		return fmt.Errorf("%w: start must not be zero", ErrInvalidInput)
	}

	if req.DurationOverrideMin != nil && *req.DurationOverrideMin <= 0 {
		return fmt.Errorf("%w: durationOverrideMin must be positive when set", ErrInvalidInput)
	}

	if req.DurationOverrideMin != nil && *req.DurationOverrideMin > domain.MaxServiceDurationMin {
		return fmt.Errorf("%w: durationOverrideMin must not exceed %d", ErrInvalidInput, domain.MaxServiceDurationMin)
	}

	if req.PriceOverrideCentavos != nil && *req.PriceOverrideCentavos < 0 {
		return fmt.Errorf("%w: priceOverrideCentavos must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
