package domain

import "time"

// Barber profile of a barbero offering services
type Barber struct {
	ID          int64
	Name        string
	PhoneE164   *string
	Description *string
	AvatarURL   *string
	Active      bool

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Service a catalog service (corte, barba, ...) with its default duration and
// price. The slot engine treats it as read-only input.
type Service struct {
	ID            int64
	Name          string
	Description   *string
	DurationMin   int
	PriceCentavos int
	Active        bool

	CreatedAt time.Time
	UpdatedAt *time.Time
}
