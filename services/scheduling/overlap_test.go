package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b models.TimeWindow
		want bool
	}{
		{
			name: "contained window",
			a:    models.TimeWindow{DayOfWeek: 1, StartMinute: 600, EndMinute: 690},
			b:    models.TimeWindow{DayOfWeek: 1, StartMinute: 630, EndMinute: 660},
			want: true,
		},
		{
			name: "partial overlap at start",
			a:    models.TimeWindow{DayOfWeek: 3, StartMinute: 540, EndMinute: 600},
			b:    models.TimeWindow{DayOfWeek: 3, StartMinute: 570, EndMinute: 630},
			want: true,
		},
		{
			name: "touching boundary does not conflict",
			a:    models.TimeWindow{DayOfWeek: 1, StartMinute: 600, EndMinute: 660},
			b:    models.TimeWindow{DayOfWeek: 1, StartMinute: 660, EndMinute: 720},
			want: false,
		},
		{
			name: "same times on different days",
			a:    models.TimeWindow{DayOfWeek: 1, StartMinute: 600, EndMinute: 660},
			b:    models.TimeWindow{DayOfWeek: 2, StartMinute: 600, EndMinute: 660},
			want: false,
		},
		{
			name: "disjoint same day",
			a:    models.TimeWindow{DayOfWeek: 5, StartMinute: 480, EndMinute: 540},
			b:    models.TimeWindow{DayOfWeek: 5, StartMinute: 600, EndMinute: 660},
			want: false,
		},
		{
			name: "identical windows",
			a:    models.TimeWindow{DayOfWeek: 7, StartMinute: 480, EndMinute: 540},
			b:    models.TimeWindow{DayOfWeek: 7, StartMinute: 480, EndMinute: 540},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			// The test is symmetric in its arguments.
			assert.Equal(t, Overlaps(tt.a, tt.b), Overlaps(tt.b, tt.a))
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2025-03-03 is a Monday, 2025-03-09 a Sunday.
	monday := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, WeekdayOf(monday))
	assert.Equal(t, 7, WeekdayOf(sunday))
}

func TestWindowOf(t *testing.T) {
	start := time.Date(2025, 3, 5, 9, 30, 0, 0, time.UTC) // Wednesday
	end := time.Date(2025, 3, 5, 10, 45, 0, 0, time.UTC)

	w := WindowOf(start, end)
	assert.Equal(t, 3, w.DayOfWeek)
	assert.Equal(t, 9*60+30, w.StartMinute)
	assert.Equal(t, 10*60+45, w.EndMinute)
}

func TestWindowOfEndsAtMidnight(t *testing.T) {
	// Mon 23:00 to Tue 00:00 is a Monday window ending at minute 1440,
	// not an inverted one ending at 0.
	start := time.Date(2025, 3, 3, 23, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

	w := WindowOf(start, end)
	assert.Equal(t, 1, w.DayOfWeek)
	assert.Equal(t, 23*60, w.StartMinute)
	assert.Equal(t, 24*60, w.EndMinute)
	assert.NoError(t, w.Validate())
}

func TestWindowsOfSplitsAtMidnight(t *testing.T) {
	// Mon 23:00 to Tue 01:00 projects to one window per day; both sides
	// must be matchable, neither inverted.
	start := time.Date(2025, 3, 3, 23, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 4, 1, 0, 0, 0, time.UTC)

	windows := windowsOf(start, end)
	require.Len(t, windows, 2)
	assert.Equal(t, models.TimeWindow{DayOfWeek: 1, StartMinute: 23 * 60, EndMinute: 24 * 60}, windows[0])
	assert.Equal(t, models.TimeWindow{DayOfWeek: 2, StartMinute: 0, EndMinute: 60}, windows[1])
	for _, w := range windows {
		assert.NoError(t, w.Validate())
	}

	// A same-day interval stays a single window.
	windows = windowsOf(
		time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC),
	)
	require.Len(t, windows, 1)
	assert.Equal(t, 3, windows[0].DayOfWeek)
}

func TestSpansMidnight(t *testing.T) {
	mon23 := time.Date(2025, 3, 3, 23, 0, 0, 0, time.UTC)

	assert.True(t, SpansMidnight(mon23, time.Date(2025, 3, 4, 1, 0, 0, 0, time.UTC)))
	assert.False(t, SpansMidnight(mon23, time.Date(2025, 3, 3, 23, 30, 0, 0, time.UTC)))
	// Ending exactly at midnight still belongs to the start's day.
	assert.False(t, SpansMidnight(mon23, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)))
}

func TestTimeWindowValidate(t *testing.T) {
	assert.NoError(t, models.TimeWindow{DayOfWeek: 1, StartMinute: 0, EndMinute: 60}.Validate())
	assert.Error(t, models.TimeWindow{DayOfWeek: 0, StartMinute: 0, EndMinute: 60}.Validate())
	assert.Error(t, models.TimeWindow{DayOfWeek: 8, StartMinute: 0, EndMinute: 60}.Validate())
	assert.Error(t, models.TimeWindow{DayOfWeek: 1, StartMinute: 60, EndMinute: 60}.Validate())
	assert.Error(t, models.TimeWindow{DayOfWeek: 1, StartMinute: 90, EndMinute: 60}.Validate())
	assert.Error(t, models.TimeWindow{DayOfWeek: 1, StartMinute: 0, EndMinute: 1500}.Validate())
}
