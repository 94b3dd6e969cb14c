package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
)

func roomScanFixture() (*fakeStore, *DefaultConflictEngine) {
	store := newFakeStore()
	store.rooms["r101"] = models.Room{ID: "r101", Name: "Studio 1"}
	store.classes["yoga"] = models.ClassRef{ID: "yoga", Name: "Morning Yoga", TrainerIDs: []string{"t1"}}
	// Existing commitment: Monday 10:00-11:30 in r101 (2025-03-03 is a Monday).
	store.sessions = append(store.sessions, models.ClassSession{
		ID:        "s1",
		ClassID:   "yoga",
		RoomID:    "r101",
		StartTime: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 3, 11, 30, 0, 0, time.UTC),
	})
	return store, NewEngine(store)
}

func weeklyRange() (time.Time, time.Time) {
	return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
}

func TestScanRoomOverlappingRecurrence(t *testing.T) {
	store, engine := roomScanFixture()
	start, end := weeklyRange()

	recurrence := []models.RecurrenceEntry{{
		Window: models.TimeWindow{DayOfWeek: 1, StartMinute: 630, EndMinute: 660}, // Mon 10:30-11:00
		RoomID: "r101",
	}}

	report, err := engine.ScanRoom(context.Background(), "r101", start, end, recurrence, "")
	require.NoError(t, err)
	assert.True(t, report.HasConflict)
	require.Equal(t, 1, report.Count)

	entry := report.Entries[0]
	assert.Equal(t, models.ConflictTypeSession, entry.Type)
	assert.Equal(t, "Morning Yoga", entry.ClassName)
	assert.Equal(t, "Studio 1", entry.RoomName)
	assert.Equal(t, 1, entry.Window.DayOfWeek)

	// Enrichment is one batch lookup, not one per conflict.
	assert.Equal(t, 1, store.calls["GetClassRefs"])
	assert.Equal(t, 1, store.calls["FindSessionsByRoomInRange"])
}

func TestScanRoomTouchingBoundaryIsClean(t *testing.T) {
	_, engine := roomScanFixture()
	start, end := weeklyRange()

	recurrence := []models.RecurrenceEntry{{
		Window: models.TimeWindow{DayOfWeek: 1, StartMinute: 690, EndMinute: 720}, // Mon 11:30-12:00
		RoomID: "r101",
	}}

	report, err := engine.ScanRoom(context.Background(), "r101", start, end, recurrence, "")
	require.NoError(t, err)
	assert.False(t, report.HasConflict)
	assert.Zero(t, report.Count)
	assert.Empty(t, report.Entries)
}

func TestScanRoomSelfExclusion(t *testing.T) {
	_, engine := roomScanFixture()
	start, end := weeklyRange()

	recurrence := []models.RecurrenceEntry{{
		Window: models.TimeWindow{DayOfWeek: 1, StartMinute: 600, EndMinute: 690}, // exact same window
		RoomID: "r101",
	}}

	report, err := engine.ScanRoom(context.Background(), "r101", start, end, recurrence, "s1")
	require.NoError(t, err)
	assert.False(t, report.HasConflict)
}

func TestScanRoomUnknownRoom(t *testing.T) {
	_, engine := roomScanFixture()
	start, end := weeklyRange()

	recurrence := []models.RecurrenceEntry{{
		Window: models.TimeWindow{DayOfWeek: 1, StartMinute: 600, EndMinute: 660},
		RoomID: "ghost",
	}}

	_, err := engine.ScanRoom(context.Background(), "ghost", start, end, recurrence, "")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), CodeRoomNotFound)
}

func TestScanRoomValidation(t *testing.T) {
	_, engine := roomScanFixture()
	start, end := weeklyRange()

	recurrence := []models.RecurrenceEntry{{
		Window: models.TimeWindow{DayOfWeek: 1, StartMinute: 600, EndMinute: 660},
		RoomID: "r101",
	}}

	_, err := engine.ScanRoom(context.Background(), "", start, end, recurrence, "")
	assert.True(t, IsValidation(err))

	_, err = engine.ScanRoom(context.Background(), "r101", end, start, recurrence, "")
	assert.True(t, IsValidation(err))

	_, err = engine.ScanRoom(context.Background(), "r101", start, end, nil, "")
	assert.True(t, IsValidation(err))
}

func TestScanRoomIdempotent(t *testing.T) {
	_, engine := roomScanFixture()
	start, end := weeklyRange()

	recurrence := []models.RecurrenceEntry{{
		Window: models.TimeWindow{DayOfWeek: 1, StartMinute: 630, EndMinute: 660},
		RoomID: "r101",
	}}

	first, err := engine.ScanRoom(context.Background(), "r101", start, end, recurrence, "")
	require.NoError(t, err)
	second, err := engine.ScanRoom(context.Background(), "r101", start, end, recurrence, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
