package models

import "fmt"

// TimeWindow is a weekly-recurring slot: an ISO weekday (Mon=1 .. Sun=7) plus
// a half-open [StartMinute, EndMinute) range of minutes from midnight.
// Recurrence is strictly weekly; there is no bi-weekly or monthly cadence.
type TimeWindow struct {
	DayOfWeek   int `bson:"dayOfWeek" json:"dayOfWeek"`
	StartMinute int `bson:"startMinute" json:"startMinute"` // e.g. 600 for 10:00
	EndMinute   int `bson:"endMinute" json:"endMinute"`     // e.g. 690 for 11:30
}

// Validate checks the structural invariants of the window.
func (w TimeWindow) Validate() error {
	if w.DayOfWeek < 1 || w.DayOfWeek > 7 {
		return fmt.Errorf("dayOfWeek must be between 1 and 7, got %d", w.DayOfWeek)
	}
	if w.StartMinute < 0 || w.EndMinute > 24*60 {
		return fmt.Errorf("window [%d, %d] outside the day", w.StartMinute, w.EndMinute)
	}
	if w.StartMinute >= w.EndMinute {
		return fmt.Errorf("window start %d must be before end %d", w.StartMinute, w.EndMinute)
	}
	return nil
}

// String renders the window as "Mon 10:00-11:30" for user-facing messages.
func (w TimeWindow) String() string {
	days := [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	day := "?"
	if w.DayOfWeek >= 1 && w.DayOfWeek <= 7 {
		day = days[w.DayOfWeek-1]
	}
	return fmt.Sprintf("%s %02d:%02d-%02d:%02d",
		day, w.StartMinute/60, w.StartMinute%60, w.EndMinute/60, w.EndMinute%60)
}

// RecurrenceEntry binds one weekly window to the room it occupies.
type RecurrenceEntry struct {
	Window TimeWindow `bson:"window" json:"window"`
	RoomID string     `bson:"roomId" json:"roomId"`
}
