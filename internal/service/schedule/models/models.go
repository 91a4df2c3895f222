package models

import (
	"github.com/chris030500/Barberia/internal/domain"
	"github.com/chris030500/Barberia/pkg/types"
)

// EntryRequest one horario range submitted by the client
type EntryRequest struct {
	DayOfWeek int    `json:"dow"`
	Start     string `json:"desde"` // HH:MM
	End       string `json:"hasta"` // HH:MM
	Active    bool   `json:"activo"`
}

// ReplaceScheduleRequest full weekly horario. The submitted set replaces
// everything the barber had; an empty set clears the schedule.
type ReplaceScheduleRequest struct {
	Entries []EntryRequest `json:"horario"`
}

// EntryResponse one horario range in API form
type EntryResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dow"`
	Start     string `json:"desde"`
	End       string `json:"hasta"`
	Active    bool   `json:"activo"`
}

// ScheduleResponse the weekly horario of one barber, ordered by day and start
type ScheduleResponse struct {
	BarberID int64            `json:"barberoId"`
	Entries  []*EntryResponse `json:"horario"`
}

// ToDomainEntry parses and converts one submitted range.
func (r *EntryRequest) ToDomainEntry(barberID int64) (*domain.WeeklyScheduleEntry, error) {
	start, err := types.NewTimeStringFromString(r.Start)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(r.End)
	if err != nil {
		return nil, err
	}
	return &domain.WeeklyScheduleEntry{
		BarberID:   barberID,
		DayOfWeek:  r.DayOfWeek,
		StartLocal: start,
		EndLocal:   end,
		Active:     r.Active,
	}, nil
}

// FromDomainEntry converts a domain range to API form.
func FromDomainEntry(e *domain.WeeklyScheduleEntry) *EntryResponse {
	return &EntryResponse{
		ID:        e.ID,
		DayOfWeek: e.DayOfWeek,
		Start:     e.StartLocal.String(),
		End:       e.EndLocal.String(),
		Active:    e.Active,
	}
}

// FromDomainSchedule converts the weekly horario of one barber.
func FromDomainSchedule(barberID int64, entries []*domain.WeeklyScheduleEntry) *ScheduleResponse {
	out := make([]*EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromDomainEntry(e))
	}
	return &ScheduleResponse{BarberID: barberID, Entries: out}
}
