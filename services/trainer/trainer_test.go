// File: services/trainer/trainer_test.go
package trainer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
	"github.com/giavix1302/be-gym-management-system-sub000/services/scheduling"
)

type fakeTrainerRepo struct {
	trainers map[string]*models.Trainer
}

func (r *fakeTrainerRepo) Create(ctx context.Context, trainer models.Trainer) (string, error) {
	return "t-new", nil
}

func (r *fakeTrainerRepo) GetByID(ctx context.Context, trainerID string) (*models.Trainer, error) {
	return r.trainers[trainerID], nil
}

func (r *fakeTrainerRepo) GetNamesByIDs(ctx context.Context, trainerIDs []string) (map[string]string, error) {
	names := map[string]string{}
	for _, id := range trainerIDs {
		if t, ok := r.trainers[id]; ok {
			names[id] = t.FullName
		}
	}
	return names, nil
}

func (r *fakeTrainerRepo) List(ctx context.Context) ([]models.Trainer, error) { return nil, nil }

func (r *fakeTrainerRepo) SoftDelete(ctx context.Context, trainerID string) error { return nil }

type fakeScheduleRepo struct {
	slots   []models.TrainerSchedule
	created int
}

func (r *fakeScheduleRepo) Create(ctx context.Context, slot models.TrainerSchedule) (string, error) {
	r.created++
	return "s-new", nil
}

func (r *fakeScheduleRepo) GetByID(ctx context.Context, scheduleID string) (*models.TrainerSchedule, error) {
	for _, s := range r.slots {
		if s.ID == scheduleID {
			copied := s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeScheduleRepo) DeleteByID(ctx context.Context, trainerID, scheduleID string) error {
	return nil
}

func (r *fakeScheduleRepo) ListByTrainer(ctx context.Context, trainerID string, from, to time.Time) ([]models.TrainerSchedule, error) {
	return r.slots, nil
}

func (r *fakeScheduleRepo) FindByTrainersInRange(ctx context.Context, trainerIDs []string, start, end time.Time) ([]models.TrainerSchedule, error) {
	requested := map[string]bool{}
	for _, id := range trainerIDs {
		requested[id] = true
	}
	var out []models.TrainerSchedule
	for _, s := range r.slots {
		if requested[s.TrainerID] && s.StartTime.Before(end) && start.Before(s.EndTime) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) CreateBooking(ctx context.Context, booking models.ScheduleBooking) (string, error) {
	return "b-new", nil
}

func scheduleFixture() (*DefaultTrainerService, *fakeScheduleRepo) {
	schedules := &fakeScheduleRepo{}
	svc := &DefaultTrainerService{
		Repo: &fakeTrainerRepo{trainers: map[string]*models.Trainer{
			"t1": {ID: "t1", FullName: "Ana"},
		}},
		ScheduleRepo: schedules,
	}
	return svc, schedules
}

func TestCreateScheduleAcceptsCleanSlot(t *testing.T) {
	svc, schedules := scheduleFixture()

	// Monday 2025-03-03, 09:00 to 10:00.
	slot, err := svc.CreateSchedule(context.Background(), models.CreateScheduleRequest{
		TrainerID: "t1",
		StartTime: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "s-new", slot.ID)
	assert.Equal(t, 1, schedules.created)
}

func TestCreateScheduleRejectsMidnightSpanningSlot(t *testing.T) {
	svc, schedules := scheduleFixture()

	// Monday 23:00 to Tuesday 01:00. A slot is confined to one calendar
	// day; callers wanting an overnight block create one slot per day.
	_, err := svc.CreateSchedule(context.Background(), models.CreateScheduleRequest{
		TrainerID: "t1",
		StartTime: time.Date(2025, 3, 3, 23, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 4, 1, 0, 0, 0, time.UTC),
	})
	var verr scheduling.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "midnight")
	assert.Zero(t, schedules.created)
}

func TestCreateScheduleAcceptsSlotEndingAtMidnight(t *testing.T) {
	svc, schedules := scheduleFixture()

	// Ending exactly at midnight stays within Monday (the end bound is
	// exclusive).
	_, err := svc.CreateSchedule(context.Background(), models.CreateScheduleRequest{
		TrainerID: "t1",
		StartTime: time.Date(2025, 3, 3, 23, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, schedules.created)
}

func TestCreateScheduleRejectsOverlappingSlot(t *testing.T) {
	svc, schedules := scheduleFixture()
	schedules.slots = []models.TrainerSchedule{
		{
			ID:        "s1",
			TrainerID: "t1",
			StartTime: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
		},
	}

	_, err := svc.CreateSchedule(context.Background(), models.CreateScheduleRequest{
		TrainerID: "t1",
		StartTime: time.Date(2025, 3, 3, 9, 30, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 3, 10, 30, 0, 0, time.UTC),
	})
	var verr scheduling.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "overlaps")
	assert.Zero(t, schedules.created)
}

func TestCreateScheduleUnknownTrainer(t *testing.T) {
	svc, _ := scheduleFixture()

	_, err := svc.CreateSchedule(context.Background(), models.CreateScheduleRequest{
		TrainerID: "ghost",
		StartTime: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
	})
	var nferr scheduling.NotFoundError
	require.ErrorAs(t, err, &nferr)
}
