package models

import (
	"time"

	"github.com/chris030500/Barberia/internal/domain"
)

// BarberResponse one barbero in API form
type BarberResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre"`
	PhoneE164   *string `json:"telefono,omitempty"`
	Description *string `json:"descripcion,omitempty"`
	AvatarURL   *string `json:"avatarUrl,omitempty"`
	Active      bool    `json:"activo"`

	CreatedAt time.Time `json:"creadoEn"`
}

// BarberListResponse listing of barberos
type BarberListResponse struct {
	Barbers []*BarberResponse `json:"barberos"`
	Total   int               `json:"total"`
}

// ServiceResponse one servicio in API form
type ServiceResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"nombre"`
	Description   *string `json:"descripcion,omitempty"`
	DurationMin   int     `json:"duracionMin"`
	PriceCentavos int     `json:"precioCentavos"`
	Active        bool    `json:"activo"`
}

// ServiceListResponse listing of servicios
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"servicios"`
	Total    int                `json:"total"`
}

// FromDomainBarber converts a domain barbero to API form.
func FromDomainBarber(b *domain.Barber) *BarberResponse {
	return &BarberResponse{
		ID:          b.ID,
		Name:        b.Name,
		PhoneE164:   b.PhoneE164,
		Description: b.Description,
		AvatarURL:   b.AvatarURL,
		Active:      b.Active,
		CreatedAt:   b.CreatedAt,
	}
}

// FromDomainBarberList converts a listing of barberos.
func FromDomainBarberList(items []*domain.Barber) *BarberListResponse {
	out := make([]*BarberResponse, 0, len(items))
	for _, b := range items {
		out = append(out, FromDomainBarber(b))
	}
	return &BarberListResponse{Barbers: out, Total: len(out)}
}

// FromDomainService converts a domain servicio to API form.
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		DurationMin:   s.DurationMin,
		PriceCentavos: s.PriceCentavos,
		Active:        s.Active,
	}
}

// FromDomainServiceList converts a listing of servicios.
func FromDomainServiceList(items []*domain.Service) *ServiceListResponse {
	out := make([]*ServiceResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromDomainService(s))
	}
	return &ServiceListResponse{Services: out, Total: len(out)}
}
