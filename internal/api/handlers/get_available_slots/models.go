package get_available_slots

import (
	"time"

	"github.com/chris030500/Barberia/internal/domain"
	getAvailableSlots "github.com/chris030500/Barberia/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	BarberID    int64           `json:"barberoId"`
	ServiceID   int64           `json:"servicioId"`
	Date        string          `json:"fecha"`
	SlotSizeMin int             `json:"slotSizeMin"`
	DurationMin int             `json:"duracionMin"`
	Slots       []AvailableSlot `json:"slots"`
}

// AvailableSlot one bookable interval
type AvailableSlot struct {
	Start time.Time `json:"inicio"`
	End   time.Time `json:"fin"`
}

// FromUseCaseResponse converts the use case answer into the HTTP response.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{Start: slot.Start, End: slot.End}
	}

	return &AvailableSlotsResponse{
		BarberID:    resp.BarberID,
		ServiceID:   resp.ServiceID,
		Date:        resp.Date.Format(domain.DateFormat),
		SlotSizeMin: resp.SlotSizeMin,
		DurationMin: resp.DurationMin,
		Slots:       slots,
	}
}

// ToUseCaseRequest builds the use case request from parsed parameters.
func ToUseCaseRequest(barberID, serviceID int64, dateStr string, slotSizeMin, durationMin int) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BarberID:    barberID,
		ServiceID:   serviceID,
		Date:        date,
		SlotSizeMin: slotSizeMin,
		DurationMin: durationMin,
	}, nil
}
