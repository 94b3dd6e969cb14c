package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
)

func trainerScanFixture() (*fakeStore, *DefaultConflictEngine) {
	store := newFakeStore()
	store.rooms["r101"] = models.Room{ID: "r101", Name: "Studio 1"}
	store.classes["spin"] = models.ClassRef{ID: "spin", Name: "Spin Class", TrainerIDs: []string{"t1"}}
	store.trainerNames["t1"] = "Alex Chen"
	store.trainerNames["t2"] = "Sam Jordan"

	// t1 teaches Spin on Tuesdays 18:00-19:00 (2025-03-04 is a Tuesday).
	store.sessions = append(store.sessions, models.ClassSession{
		ID:         "spin-1",
		ClassID:    "spin",
		RoomID:     "r101",
		TrainerIDs: []string{"t1"},
		StartTime:  time.Date(2025, 3, 4, 18, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2025, 3, 4, 19, 0, 0, 0, time.UTC),
	})
	// t2 has a personal booking Wednesday 09:00-10:00 (2025-03-05).
	store.schedules = append(store.schedules, models.TrainerSchedule{
		ID:        "slot-1",
		TrainerID: "t2",
		StartTime: time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC),
		Booking: &models.ScheduleBooking{
			ID:         "b1",
			ScheduleID: "slot-1",
			UserID:     "u9",
			UserName:   "Jamie Fox",
			Status:     models.BookingStatusConfirmed,
		},
	})
	return store, NewEngine(store)
}

func TestScanTrainersPersonalBookingConflict(t *testing.T) {
	_, engine := trainerScanFixture()
	start, end := weeklyRange()

	// Proposed Wed 09:30-10:30 with trainer t2.
	recurrence := []models.RecurrenceEntry{{
		Window: models.TimeWindow{DayOfWeek: 3, StartMinute: 570, EndMinute: 630},
		RoomID: "r101",
	}}

	report, err := engine.ScanTrainers(context.Background(), []string{"t2"}, start, end, recurrence)
	require.NoError(t, err)
	assert.True(t, report.HasConflict)
	require.Equal(t, 1, report.Count)

	entry := report.Entries[0]
	assert.Equal(t, models.ConflictTypeBooking, entry.Type)
	assert.True(t, entry.Booked)
	assert.Equal(t, "Jamie Fox", entry.BookedBy)
	assert.Equal(t, "Sam Jordan", entry.TrainerName)

	require.Contains(t, report.PerTrainer, "t2")
	assert.Len(t, report.PerTrainer["t2"], 1)
}

func TestScanTrainersUnbookedSlotStillConflicts(t *testing.T) {
	store, engine := trainerScanFixture()
	start, end := weeklyRange()

	// An available slot with no client booking holds the calendar anyway.
	store.schedules = append(store.schedules, models.TrainerSchedule{
		ID:        "slot-2",
		TrainerID: "t1",
		StartTime: time.Date(2025, 3, 7, 7, 0, 0, 0, time.UTC), // Friday
		EndTime:   time.Date(2025, 3, 7, 8, 0, 0, 0, time.UTC),
	})

	recurrence := []models.RecurrenceEntry{{
		Window: models.TimeWindow{DayOfWeek: 5, StartMinute: 420, EndMinute: 480},
		RoomID: "r101",
	}}

	report, err := engine.ScanTrainers(context.Background(), []string{"t1"}, start, end, recurrence)
	require.NoError(t, err)
	require.Equal(t, 1, report.Count)
	assert.Equal(t, models.ConflictTypeBooking, report.Entries[0].Type)
	assert.False(t, report.Entries[0].Booked)
}

func TestScanTrainersMergesBothSources(t *testing.T) {
	store, engine := trainerScanFixture()
	start, end := weeklyRange()

	// Proposed Tue 18:30-19:30 and Wed 09:30-10:30 for both trainers:
	// t1 collides through the Spin session, t2 through the personal booking.
	recurrence := []models.RecurrenceEntry{
		{Window: models.TimeWindow{DayOfWeek: 2, StartMinute: 1110, EndMinute: 1170}, RoomID: "r101"},
		{Window: models.TimeWindow{DayOfWeek: 3, StartMinute: 570, EndMinute: 630}, RoomID: "r101"},
	}

	report, err := engine.ScanTrainers(context.Background(), []string{"t1", "t2"}, start, end, recurrence)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count)
	assert.Len(t, report.PerTrainer, 2)

	sessionEntry := report.PerTrainer["t1"][0]
	assert.Equal(t, models.ConflictTypeSession, sessionEntry.Type)
	assert.Equal(t, "Spin Class", sessionEntry.ClassName)
	assert.Equal(t, "Studio 1", sessionEntry.RoomName)

	bookingEntry := report.PerTrainer["t2"][0]
	assert.Equal(t, models.ConflictTypeBooking, bookingEntry.Type)

	// One fetch per source and one enrichment lookup per kind.
	assert.Equal(t, 1, store.calls["FindSessionsByTrainersInRange"])
	assert.Equal(t, 1, store.calls["FindTrainerScheduleInRange"])
	assert.Equal(t, 1, store.calls["GetClassRefs"])
	assert.Equal(t, 1, store.calls["GetRoomNames"])
	assert.Equal(t, 1, store.calls["GetTrainerNames"])
}

func TestScanTrainersMidnightSpanningSlotConflicts(t *testing.T) {
	store, engine := trainerScanFixture()
	start, end := weeklyRange()

	// A slot running Mon 23:00 into Tue 01:00 occupies both days; late
	// Monday and early Tuesday proposals must both collide with it.
	store.schedules = append(store.schedules, models.TrainerSchedule{
		ID:        "slot-night",
		TrainerID: "t1",
		StartTime: time.Date(2025, 3, 3, 23, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 4, 1, 0, 0, 0, time.UTC),
	})

	lateMonday := []models.RecurrenceEntry{{
		Window: models.TimeWindow{DayOfWeek: 1, StartMinute: 1410, EndMinute: 1440},
		RoomID: "r101",
	}}
	report, err := engine.ScanTrainers(context.Background(), []string{"t1"}, start, end, lateMonday)
	require.NoError(t, err)
	require.Equal(t, 1, report.Count)
	assert.Equal(t, models.ConflictTypeBooking, report.Entries[0].Type)
	assert.Equal(t, 1, report.Entries[0].Window.DayOfWeek)

	earlyTuesday := []models.RecurrenceEntry{{
		Window: models.TimeWindow{DayOfWeek: 2, StartMinute: 0, EndMinute: 30},
		RoomID: "r101",
	}}
	report, err = engine.ScanTrainers(context.Background(), []string{"t1"}, start, end, earlyTuesday)
	require.NoError(t, err)
	require.Equal(t, 1, report.Count)
	assert.Equal(t, 2, report.Entries[0].Window.DayOfWeek)
}

func TestScanTrainersCleanTrainerAbsentFromBreakdown(t *testing.T) {
	_, engine := trainerScanFixture()
	start, end := weeklyRange()

	// Tue 18:30-19:30 only collides for t1.
	recurrence := []models.RecurrenceEntry{{
		Window: models.TimeWindow{DayOfWeek: 2, StartMinute: 1110, EndMinute: 1170},
		RoomID: "r101",
	}}

	report, err := engine.ScanTrainers(context.Background(), []string{"t1", "t2"}, start, end, recurrence)
	require.NoError(t, err)
	assert.Contains(t, report.PerTrainer, "t1")
	assert.NotContains(t, report.PerTrainer, "t2")
}

func TestScanTrainersValidation(t *testing.T) {
	_, engine := trainerScanFixture()
	start, end := weeklyRange()

	recurrence := []models.RecurrenceEntry{{
		Window: models.TimeWindow{DayOfWeek: 2, StartMinute: 600, EndMinute: 660},
		RoomID: "r101",
	}}

	_, err := engine.ScanTrainers(context.Background(), nil, start, end, recurrence)
	assert.True(t, IsValidation(err))

	badWindow := []models.RecurrenceEntry{{
		Window: models.TimeWindow{DayOfWeek: 2, StartMinute: 660, EndMinute: 600},
		RoomID: "r101",
	}}
	_, err = engine.ScanTrainers(context.Background(), []string{"t1"}, start, end, badWindow)
	assert.True(t, IsValidation(err))
}
