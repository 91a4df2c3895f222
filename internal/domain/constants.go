package domain

// Default agenda values, mirrored by the [agenda] config section
const (
	DefaultTimezone         = "America/Mexico_City"
	DefaultSlotSizeMin      = 15
	DefaultBufferBetweenMin = 5
	DefaultMinAdvanceMin    = 0
	DefaultMaxAdvanceDays   = 30

	// FallbackDurationMin applies when neither the request override nor the
	// service carries a positive duration
	FallbackDurationMin = 15
)

// Business validation bounds
const (
	MinServiceDurationMin = 5
	MaxServiceDurationMin = 480

	MaxClientNameLength = 200
	MaxNotesLength      = 1000
	MaxReasonLength     = 500

	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
