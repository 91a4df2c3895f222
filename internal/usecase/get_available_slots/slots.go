package get_available_slots

import (
	"time"

	"github.com/chris030500/Barberia/internal/domain"
)

// resolveBaseWindows materializes the active weekly entries on the requested
// date. Entries that collapse to a non-positive range after conversion are
// dropped. An empty result means the barber does not work that day.
func resolveBaseWindows(entries []*domain.WeeklyScheduleEntry, date time.Time, loc *time.Location) ([]domain.TimeWindow, error) {
	windows := make([]domain.TimeWindow, 0, len(entries))
	for _, e := range entries {
		w, err := e.WindowOn(date, loc)
		if err != nil {
			return nil, err
		}
		if w.IsValid() {
			windows = append(windows, w)
		}
	}
	return windows, nil
}

// collectExclusionWindows converts blocks and scheduled citas into the
// intervals to subtract. No merging here; SubtractWindows handles overlaps.
func collectExclusionWindows(blocks []*domain.Block, appointments []*domain.Appointment) []domain.TimeWindow {
	exclusions := make([]domain.TimeWindow, 0, len(blocks)+len(appointments))
	for _, b := range blocks {
		exclusions = append(exclusions, b.Window())
	}
	for _, a := range appointments {
		exclusions = append(exclusions, a.Window())
	}
	return exclusions
}

// applyAdvanceLimits clips windows against the minimum-notice and
// maximum-horizon cutoffs. A window entirely at or before minStart, or
// entirely at or after maxStart, is dropped; the rest are clipped and kept
// only when a positive duration remains.
func applyAdvanceLimits(windows []domain.TimeWindow, minStart, maxStart time.Time) []domain.TimeWindow {
	out := make([]domain.TimeWindow, 0, len(windows))
	for _, w := range windows {
		if !w.End.After(minStart) {
			continue
		}
		if !w.Start.Before(maxStart) {
			continue
		}

		clipped := w
		if clipped.Start.Before(minStart) {
			clipped.Start = minStart
		}
		if clipped.End.After(maxStart) {
			clipped.End = maxStart
		}
		if clipped.IsValid() {
			out = append(out, clipped)
		}
	}
	return out
}

// applyBuffer shrinks every window by bufferMin from both ends, leaving
// preparation and cleanup time. Applied after the advance clipping; the
// order matters at window boundaries.
func applyBuffer(windows []domain.TimeWindow, bufferMin int) []domain.TimeWindow {
	if bufferMin <= 0 {
		return windows
	}

	buffer := time.Duration(bufferMin) * time.Minute
	out := make([]domain.TimeWindow, 0, len(windows))
	for _, w := range windows {
		shrunk := domain.TimeWindow{
			Start: w.Start.Add(buffer),
			End:   w.End.Add(-buffer),
		}
		if shrunk.IsValid() {
			out = append(out, shrunk)
		}
	}
	return out
}

// generateSlots walks each window on the slot-size grid, emitting every start
// whose full service duration fits before the window end. Windows are disjoint
// by construction, so slots never need deduplication across windows.
func generateSlots(windows []domain.TimeWindow, loc *time.Location, slotSizeMin, durationMin int) []domain.Slot {
	step := time.Duration(slotSizeMin) * time.Minute
	duration := time.Duration(durationMin) * time.Minute

	slots := make([]domain.Slot, 0)
	for _, w := range windows {
		cursor := alignToGrid(w.Start, loc, slotSizeMin)
		lastPossibleStart := w.End.Add(-duration)
		for !cursor.After(lastPossibleStart) {
			slots = append(slots, domain.Slot{Start: cursor, End: cursor.Add(duration)})
			cursor = cursor.Add(step)
		}
	}
	return slots
}

// alignToGrid rounds the instant up to the next multiple of minutes on the
// local wall clock. An instant already on the grid with zero seconds and
// nanoseconds is returned unchanged.
func alignToGrid(t time.Time, loc *time.Location, minutes int) time.Time {
	local := t.In(loc)
	mod := local.Minute() % minutes
	if mod == 0 && local.Second() == 0 && local.Nanosecond() == 0 {
		return t
	}

	truncated := local.Add(-time.Duration(local.Second())*time.Second - time.Duration(local.Nanosecond())*time.Nanosecond)
	return truncated.Add(time.Duration(minutes-mod) * time.Minute)
}
