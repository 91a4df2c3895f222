package domain

import "time"

// TimeWindow is a half-open interval [Start, End) of absolute time.
// Adjacent windows sharing a boundary instant do not overlap.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// IsValid reports whether the window has positive duration.
func (w TimeWindow) IsValid() bool {
	return w.Start.Before(w.End)
}

// Duration returns End - Start.
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Overlaps reports whether two half-open intervals truly intersect.
// Touching at a boundary (w.End == other.Start) is not an overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && w.End.After(other.Start)
}

// Contains reports whether the instant falls inside [Start, End).
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Subtract removes other from the window, returning the zero, one or two
// remaining pieces.
func (w TimeWindow) Subtract(other TimeWindow) []TimeWindow {
	if !w.Overlaps(other) {
		return []TimeWindow{w}
	}

	out := make([]TimeWindow, 0, 2)
	if other.Start.After(w.Start) {
		out = append(out, TimeWindow{Start: w.Start, End: other.Start})
	}
	if other.End.Before(w.End) {
		out = append(out, TimeWindow{Start: other.End, End: w.End})
	}
	return out
}

// SubtractWindows removes every exclusion from every base window, producing
// the disjoint remaining windows. Each exclusion is applied to the window set
// accumulated so far; degenerate results are discarded.
func SubtractWindows(base []TimeWindow, exclusions []TimeWindow) []TimeWindow {
	result := base
	for _, excl := range exclusions {
		next := make([]TimeWindow, 0, len(result))
		for _, w := range result {
			next = append(next, w.Subtract(excl)...)
		}
		result = next
	}

	out := make([]TimeWindow, 0, len(result))
	for _, w := range result {
		if w.IsValid() {
			out = append(out, w)
		}
	}
	return out
}
