package scheduling

import (
	"time"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
)

// Overlaps reports whether two weekly windows collide. Intervals are
// half-open: windows that merely touch at a boundary do not conflict.
func Overlaps(a, b models.TimeWindow) bool {
	return a.DayOfWeek == b.DayOfWeek &&
		a.StartMinute < b.EndMinute &&
		b.StartMinute < a.EndMinute
}

// WeekdayOf returns the ISO weekday of t (Mon=1 .. Sun=7). Go's time package
// numbers Sunday 0, so it is normalized to 7.
func WeekdayOf(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// WindowOf projects a concrete [start, end) interval onto its weekly window
// so absolute commitments can be compared against a recurrence pattern. An
// interval ending exactly at midnight belongs to the start's day, minute
// 1440. Intervals that cross midnight do not fit a single window; scans
// handle those through windowsOf.
func WindowOf(start, end time.Time) models.TimeWindow {
	endMinute := end.Hour()*60 + end.Minute()
	if endMinute == 0 {
		endMinute = 24 * 60
	}
	return models.TimeWindow{
		DayOfWeek:   WeekdayOf(start),
		StartMinute: start.Hour()*60 + start.Minute(),
		EndMinute:   endMinute,
	}
}

// windowsOf projects [start, end) onto one weekly window per calendar day it
// touches, so a commitment crossing midnight matches recurrence entries on
// both days instead of producing an inverted, unmatchable window.
func windowsOf(start, end time.Time) []models.TimeWindow {
	if !SpansMidnight(start, end) {
		return []models.TimeWindow{WindowOf(start, end)}
	}
	windows := []models.TimeWindow{{
		DayOfWeek:   WeekdayOf(start),
		StartMinute: start.Hour()*60 + start.Minute(),
		EndMinute:   24 * 60,
	}}
	day := start.AddDate(0, 0, 1)
	for {
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		if !dayStart.Before(end) {
			break
		}
		endMinute := 24 * 60
		if !SpansMidnight(dayStart, end) {
			endMinute = end.Hour()*60 + end.Minute()
		}
		windows = append(windows, models.TimeWindow{
			DayOfWeek:   WeekdayOf(dayStart),
			StartMinute: 0,
			EndMinute:   endMinute,
		})
		day = day.AddDate(0, 0, 1)
	}
	return windows
}

// SpansMidnight reports whether [start, end) crosses a calendar-day
// boundary. The weekly window model is one day deep: a commitment that
// spans midnight cannot be expressed as a single TimeWindow.
func SpansMidnight(start, end time.Time) bool {
	last := end.Add(-time.Nanosecond)
	return start.Year() != last.Year() || start.YearDay() != last.YearDay()
}

// intervalsOverlap is the absolute-time variant of the overlap test, used on
// the single-session edit path where both sides are concrete timestamps.
func intervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
