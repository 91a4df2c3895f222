package domain

import (
	"time"

	"github.com/chris030500/Barberia/pkg/types"
)

// WeeklyScheduleEntry one recurring availability range in a barber's weekly
// horario. DayOfWeek uses 0=Sunday .. 6=Saturday, matching time.Weekday.
// The barber's whole schedule is replaced atomically on update; there is no
// partial-update path.
type WeeklyScheduleEntry struct {
	ID         int64
	BarberID   int64
	DayOfWeek  int
	StartLocal types.TimeString
	EndLocal   types.TimeString
	Active     bool
}

// IsValid reports whether the entry has a valid day and a positive range.
func (e *WeeklyScheduleEntry) IsValid() bool {
	return e.DayOfWeek >= 0 && e.DayOfWeek <= 6 && e.StartLocal.IsBefore(e.EndLocal)
}

// WindowOn materializes the entry on a concrete calendar date in the given
// zone. Conversion goes through zoned wall-clock arithmetic so DST offset
// changes land correctly.
func (e *WeeklyScheduleEntry) WindowOn(date time.Time, loc *time.Location) (TimeWindow, error) {
	y, m, d := date.Date()
	start, err := e.StartLocal.AtDate(y, m, d, loc)
	if err != nil {
		return TimeWindow{}, err
	}
	end, err := e.EndLocal.AtDate(y, m, d, loc)
	if err != nil {
		return TimeWindow{}, err
	}
	return TimeWindow{Start: start, End: end}, nil
}

// DayOfWeekFor maps a calendar date to the 0=Sunday .. 6=Saturday convention.
// time.Weekday already numbers Sunday as 0, so this is a direct cast.
func DayOfWeekFor(date time.Time) int {
	return int(date.Weekday())
}
