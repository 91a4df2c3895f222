package create_appointment

import (
	"fmt"
	"strings"

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

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName must not exceed %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
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
