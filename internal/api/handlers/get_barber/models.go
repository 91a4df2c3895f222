package get_barber

import "github.com/chris030500/Barberia/internal/service/catalog/models"

// BarberDetailResponse barbero profile with the services they offer
type BarberDetailResponse struct {
	Barber   *models.BarberResponse      `json:"barbero"`
	Services *models.ServiceListResponse `json:"servicios"`
}
