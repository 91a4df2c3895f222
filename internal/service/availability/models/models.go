package models

import (
	"time"

	"github.com/chris030500/Barberia/internal/domain"
)

// SummaryRequest availability overview query for one barber. ServiceID is
// optional; when zero the first active catalog service anchors the slot
// durations.
type SummaryRequest struct {
	BarberID  int64     `json:"barberoId"`
	ServiceID int64     `json:"servicioId,omitempty"`
	Date      time.Time `json:"fecha,omitempty"` // defaults to today
}

// BarberProfile the barber the summary describes, with the services they offer
type BarberProfile struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre"`
	PhoneE164   *string `json:"telefonoE164,omitempty"`
	Description *string `json:"descripcion,omitempty"`
	AvatarURL   *string `json:"avatarUrl,omitempty"`
	Active      bool    `json:"activo"`

	Services []*ServiceSummary `json:"servicios"`
}

// ServiceSummary a catalog service in summary form
type ServiceSummary struct {
	ID            int64  `json:"id"`
	Name          string `json:"nombre"`
	DurationMin   int    `json:"duracionMin"`
	PriceCentavos int    `json:"precioCentavos"`
}

// ScheduleEntry one weekly horario range in summary form
type ScheduleEntry struct {
	DayOfWeek int    `json:"dow"`
	Start     string `json:"desde"`
	End       string `json:"hasta"`
	Active    bool   `json:"activo"`
}

// SummaryMetrics aggregate agenda numbers for the barber. Days and hours
// count only active horario entries; the upcoming counts mirror the capped
// lists in the response.
type SummaryMetrics struct {
	ActiveDays     int        `json:"diasActivos"`
	HoursPerWeek   float64    `json:"horasSemana"`
	UpcomingBlocks int        `json:"bloquesProximos"`
	UpcomingCitas  int        `json:"citasProximas"`
	NextCita       *time.Time `json:"proximaCita,omitempty"`
	NextBlock      *time.Time `json:"proximoBloqueo,omitempty"`
	ActiveServices int        `json:"serviciosActivos"`
}

// UpcomingBlock a bloqueo in the near future
type UpcomingBlock struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"inicio"`
	End    time.Time `json:"fin"`
	Reason *string   `json:"motivo,omitempty"`
}

// UpcomingAppointment a scheduled cita in the near future
type UpcomingAppointment struct {
	ID          int64     `json:"id"`
	ClientName  string    `json:"clienteNombre"`
	ServiceName string    `json:"servicioNombre,omitempty"`
	Start       time.Time `json:"inicio"`
	End         time.Time `json:"fin"`
}

// SummaryResponse one-call availability overview for a barber: profile,
// weekly horario, aggregate metrics, today's slot numbers and the next few
// agenda items
type SummaryResponse struct {
	BarberID  int64     `json:"barberoId"`
	ServiceID int64     `json:"servicioId"`
	Date      time.Time `json:"fecha"`

	Barber   *BarberProfile   `json:"barbero"`
	Schedule []*ScheduleEntry `json:"horario"`
	Metrics  *SummaryMetrics  `json:"metrics"`

	WorksToday bool       `json:"trabajaHoy"`
	SlotsToday int        `json:"slotsHoy"`
	FirstSlot  *time.Time `json:"primerSlot,omitempty"`
	LastSlot   *time.Time `json:"ultimoSlot,omitempty"`

	// NextAvailable the first bookable start on or after Date within the
	// booking horizon; nil when the horizon holds nothing
	NextAvailable *time.Time `json:"proximoDisponible,omitempty"`

	UpcomingBlocks       []*UpcomingBlock       `json:"proximosBloqueos"`
	UpcomingAppointments []*UpcomingAppointment `json:"proximasCitas"`
}

// FromDomainBarberProfile converts the barber and their services.
func FromDomainBarberProfile(b *domain.Barber, services []*domain.Service) *BarberProfile {
	out := make([]*ServiceSummary, 0, len(services))
	for _, s := range services {
		out = append(out, &ServiceSummary{
			ID:            s.ID,
			Name:          s.Name,
			DurationMin:   s.DurationMin,
			PriceCentavos: s.PriceCentavos,
		})
	}
	return &BarberProfile{
		ID:          b.ID,
		Name:        b.Name,
		PhoneE164:   b.PhoneE164,
		Description: b.Description,
		AvatarURL:   b.AvatarURL,
		Active:      b.Active,
		Services:    out,
	}
}

// FromDomainSchedule converts the weekly horario.
func FromDomainSchedule(entries []*domain.WeeklyScheduleEntry) []*ScheduleEntry {
	out := make([]*ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, &ScheduleEntry{
			DayOfWeek: e.DayOfWeek,
			Start:     e.StartLocal.String(),
			End:       e.EndLocal.String(),
			Active:    e.Active,
		})
	}
	return out
}

// FromDomainBlocks converts upcoming bloqueos.
func FromDomainBlocks(items []*domain.Block) []*UpcomingBlock {
	out := make([]*UpcomingBlock, 0, len(items))
	for _, b := range items {
		out = append(out, &UpcomingBlock{ID: b.ID, Start: b.Start, End: b.End, Reason: b.Reason})
	}
	return out
}

// FromDomainAppointments converts upcoming citas.
func FromDomainAppointments(items []*domain.Appointment) []*UpcomingAppointment {
	out := make([]*UpcomingAppointment, 0, len(items))
	for _, a := range items {
		out = append(out, &UpcomingAppointment{
			ID:          a.ID,
			ClientName:  a.ClientName,
			ServiceName: a.ServiceName,
			Start:       a.Start,
			End:         a.End,
		})
	}
	return out
}
