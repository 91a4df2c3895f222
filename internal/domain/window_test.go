package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)
	return loc
}

func win(t *testing.T, loc *time.Location, startH, startM, endH, endM int) TimeWindow {
	t.Helper()
	day := time.Date(2026, time.September, 7, 0, 0, 0, 0, loc)
	return TimeWindow{
		Start: day.Add(time.Duration(startH)*time.Hour + time.Duration(startM)*time.Minute),
		End:   day.Add(time.Duration(endH)*time.Hour + time.Duration(endM)*time.Minute),
	}
}

func TestTimeWindow_Overlaps(t *testing.T) {
	loc := mustLoc(t)

	tests := []struct {
		name string
		a    TimeWindow
		b    TimeWindow
		want bool
	}{
		{
			name: "partial overlap",
			a:    win(t, loc, 9, 0, 11, 0),
			b:    win(t, loc, 10, 0, 12, 0),
			want: true,
		},
		{
			name: "contained",
			a:    win(t, loc, 9, 0, 19, 0),
			b:    win(t, loc, 12, 0, 13, 0),
			want: true,
		},
		{
			name: "touching boundaries are not overlap",
			a:    win(t, loc, 9, 0, 10, 0),
			b:    win(t, loc, 10, 0, 11, 0),
			want: false,
		},
		{
			name: "disjoint",
			a:    win(t, loc, 9, 0, 10, 0),
			b:    win(t, loc, 14, 0, 15, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeWindow_Subtract(t *testing.T) {
	loc := mustLoc(t)
	base := win(t, loc, 9, 0, 19, 0)

	t.Run("hole in the middle splits in two", func(t *testing.T) {
		pieces := base.Subtract(win(t, loc, 12, 0, 13, 0))
		require.Len(t, pieces, 2)
		assert.Equal(t, win(t, loc, 9, 0, 12, 0), pieces[0])
		assert.Equal(t, win(t, loc, 13, 0, 19, 0), pieces[1])
	})

	t.Run("trim at the start", func(t *testing.T) {
		pieces := base.Subtract(win(t, loc, 8, 0, 10, 30))
		require.Len(t, pieces, 1)
		assert.Equal(t, win(t, loc, 10, 30, 19, 0), pieces[0])
	})

	t.Run("trim at the end", func(t *testing.T) {
		pieces := base.Subtract(win(t, loc, 18, 0, 20, 0))
		require.Len(t, pieces, 1)
		assert.Equal(t, win(t, loc, 9, 0, 18, 0), pieces[0])
	})

	t.Run("full cover leaves nothing", func(t *testing.T) {
		pieces := base.Subtract(win(t, loc, 8, 0, 20, 0))
		assert.Empty(t, pieces)
	})

	t.Run("no overlap returns the window unchanged", func(t *testing.T) {
		pieces := base.Subtract(win(t, loc, 20, 0, 21, 0))
		require.Len(t, pieces, 1)
		assert.Equal(t, base, pieces[0])
	})

	t.Run("touching exclusion changes nothing", func(t *testing.T) {
		pieces := base.Subtract(win(t, loc, 19, 0, 20, 0))
		require.Len(t, pieces, 1)
		assert.Equal(t, base, pieces[0])
	})
}

func TestSubtractWindows(t *testing.T) {
	loc := mustLoc(t)

	t.Run("multiple exclusions fold over the base", func(t *testing.T) {
		base := []TimeWindow{win(t, loc, 9, 0, 19, 0)}
		exclusions := []TimeWindow{
			win(t, loc, 12, 0, 13, 0),
			win(t, loc, 16, 0, 16, 30),
		}

		got := SubtractWindows(base, exclusions)
		require.Len(t, got, 3)
		assert.Equal(t, win(t, loc, 9, 0, 12, 0), got[0])
		assert.Equal(t, win(t, loc, 13, 0, 16, 0), got[1])
		assert.Equal(t, win(t, loc, 16, 30, 19, 0), got[2])
	})

	t.Run("overlapping exclusions do not double-remove", func(t *testing.T) {
		base := []TimeWindow{win(t, loc, 9, 0, 14, 0)}
		exclusions := []TimeWindow{
			win(t, loc, 10, 0, 12, 0),
			win(t, loc, 11, 0, 13, 0),
		}

		got := SubtractWindows(base, exclusions)
		require.Len(t, got, 2)
		assert.Equal(t, win(t, loc, 9, 0, 10, 0), got[0])
		assert.Equal(t, win(t, loc, 13, 0, 14, 0), got[1])
	})

	t.Run("no exclusions returns the base", func(t *testing.T) {
		base := []TimeWindow{win(t, loc, 9, 0, 14, 0)}
		got := SubtractWindows(base, nil)
		assert.Equal(t, base, got)
	})
}

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"scheduled to completed", StatusScheduled, StatusCompleted, true},
		{"scheduled to scheduled", StatusScheduled, StatusScheduled, false},
		{"cancelled never reopens", StatusCancelled, StatusScheduled, false},
		{"cancelled to completed", StatusCancelled, StatusCompleted, false},
		{"completed to cancelled", StatusCompleted, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.want, a.CanTransitionTo(tt.to))
		})
	}
}

func TestEffectiveDurationMin(t *testing.T) {
	override := 45

	assert.Equal(t, 45, EffectiveDurationMin(&override, 30), "positive override wins")
	assert.Equal(t, 30, EffectiveDurationMin(nil, 30), "service duration applies without override")
	assert.Equal(t, FallbackDurationMin, EffectiveDurationMin(nil, 0), "fallback when nothing is set")

	zero := 0
	assert.Equal(t, 30, EffectiveDurationMin(&zero, 30), "non-positive override is ignored")
}
