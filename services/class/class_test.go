// File: services/class/class_test.go
package class

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
	"github.com/giavix1302/be-gym-management-system-sub000/services/scheduling"
)

// The fakes below share an operation log so tests can assert write ordering,
// not just that each write happened.

type fakeClassRepo struct {
	log        *[]string
	classes    map[string]*models.Class
	failUpdate bool
}

func (r *fakeClassRepo) Create(ctx context.Context, class models.Class) (string, error) {
	*r.log = append(*r.log, "class.Create")
	return "c-new", nil
}

func (r *fakeClassRepo) GetByID(ctx context.Context, classID string) (*models.Class, error) {
	c, ok := r.classes[classID]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeClassRepo) GetRefByID(ctx context.Context, classID string) (*models.ClassRef, error) {
	return nil, nil
}

func (r *fakeClassRepo) GetRefsByIDs(ctx context.Context, classIDs []string) (map[string]models.ClassRef, error) {
	return map[string]models.ClassRef{}, nil
}

func (r *fakeClassRepo) Update(ctx context.Context, class *models.Class) error {
	*r.log = append(*r.log, "class.Update")
	if r.failUpdate {
		return errors.New("write concern timeout")
	}
	r.classes[class.ID] = class
	return nil
}

func (r *fakeClassRepo) List(ctx context.Context) ([]models.Class, error) { return nil, nil }

func (r *fakeClassRepo) SoftDelete(ctx context.Context, classID string) error {
	*r.log = append(*r.log, "class.SoftDelete")
	return nil
}

type fakeSessionRepo struct {
	log *[]string
}

func (r *fakeSessionRepo) CreateMany(ctx context.Context, sessions []models.ClassSession) ([]string, error) {
	*r.log = append(*r.log, "session.CreateMany")
	return make([]string, len(sessions)), nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, sessionID string) (*models.ClassSession, error) {
	return nil, nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *models.ClassSession) error {
	*r.log = append(*r.log, "session.Update")
	return nil
}

func (r *fakeSessionRepo) ListByClass(ctx context.Context, classID string) ([]models.ClassSession, error) {
	return nil, nil
}

func (r *fakeSessionRepo) FindByRoomInRange(ctx context.Context, roomID string, start, end time.Time) ([]models.ClassSession, error) {
	return nil, nil
}

func (r *fakeSessionRepo) FindByTrainersInRange(ctx context.Context, trainerIDs []string, start, end time.Time) ([]models.ClassSession, error) {
	return nil, nil
}

func (r *fakeSessionRepo) SoftDeleteByClass(ctx context.Context, classID string) error {
	*r.log = append(*r.log, "session.SoftDeleteByClass")
	return nil
}

func (r *fakeSessionRepo) PurgeDeletedByClass(ctx context.Context, classID string) (int64, error) {
	*r.log = append(*r.log, "session.PurgeDeletedByClass")
	return 0, nil
}

type fakeTrainerRepo struct {
	names map[string]string
}

func (r *fakeTrainerRepo) Create(ctx context.Context, trainer models.Trainer) (string, error) {
	return "", nil
}

func (r *fakeTrainerRepo) GetByID(ctx context.Context, trainerID string) (*models.Trainer, error) {
	return nil, nil
}

func (r *fakeTrainerRepo) GetNamesByIDs(ctx context.Context, trainerIDs []string) (map[string]string, error) {
	return r.names, nil
}

func (r *fakeTrainerRepo) List(ctx context.Context) ([]models.Trainer, error) { return nil, nil }

func (r *fakeTrainerRepo) SoftDelete(ctx context.Context, trainerID string) error { return nil }

// cleanEngine reports every pattern as conflict-free.
type cleanEngine struct{}

func (cleanEngine) ScanRoom(ctx context.Context, roomID string, rangeStart, rangeEnd time.Time, recurrence []models.RecurrenceEntry, excludeSessionID string) (*models.ConflictReport, error) {
	return &models.ConflictReport{}, nil
}

func (cleanEngine) ScanTrainers(ctx context.Context, trainerIDs []string, rangeStart, rangeEnd time.Time, recurrence []models.RecurrenceEntry) (*models.ConflictReport, error) {
	return &models.ConflictReport{}, nil
}

func (cleanEngine) CheckTrainerSlot(ctx context.Context, trainerID string, start, end time.Time, classID, excludeSessionID string) (*models.ConflictReport, error) {
	return &models.ConflictReport{}, nil
}

func (cleanEngine) CheckRoomSlot(ctx context.Context, sessionID string, start, end time.Time, roomID string) (*models.ConflictReport, error) {
	return &models.ConflictReport{}, nil
}

func updateFixture() (*DefaultClassService, *fakeClassRepo, *[]string) {
	log := &[]string{}
	classRepo := &fakeClassRepo{
		log: log,
		classes: map[string]*models.Class{
			"yoga": {
				ID:         "yoga",
				Name:       "Yoga",
				TrainerIDs: []string{"t1"},
				Capacity:   12,
				StartDate:  date(2025, 3, 3),
				EndDate:    date(2025, 3, 31),
				Schedule: []models.RecurrenceEntry{
					{Window: models.TimeWindow{DayOfWeek: 1, StartMinute: 600, EndMinute: 660}, RoomID: "r101"},
				},
			},
		},
	}
	svc := &DefaultClassService{
		ClassRepo:   classRepo,
		SessionRepo: &fakeSessionRepo{log: log},
		TrainerRepo: &fakeTrainerRepo{names: map[string]string{"t1": "Ana"}},
		Engine:      cleanEngine{},
	}
	return svc, classRepo, log
}

func indexOf(ops []string, op string) int {
	for i, o := range ops {
		if o == op {
			return i
		}
	}
	return -1
}

func TestUpdateClassPersistsClassBeforeRegeneratingSessions(t *testing.T) {
	svc, _, log := updateFixture()

	updated, report, err := svc.UpdateClass(context.Background(), "yoga", models.UpdateClassRequest{
		Schedule: []models.RecurrenceEntryRequest{
			{DayOfWeek: 3, StartMinute: 600, EndMinute: 660, RoomID: "r202"},
		},
	})
	require.NoError(t, err)
	require.Nil(t, report)
	require.NotNil(t, updated)

	// The class document is persisted first; only then are the old
	// sessions retired and the new ones written.
	upd := indexOf(*log, "class.Update")
	del := indexOf(*log, "session.SoftDeleteByClass")
	ins := indexOf(*log, "session.CreateMany")
	require.NotEqual(t, -1, upd)
	require.NotEqual(t, -1, del)
	require.NotEqual(t, -1, ins)
	assert.Less(t, upd, del)
	assert.Less(t, del, ins)
}

func TestUpdateClassFailedWriteLeavesSessionsUntouched(t *testing.T) {
	svc, classRepo, log := updateFixture()
	classRepo.failUpdate = true

	_, _, err := svc.UpdateClass(context.Background(), "yoga", models.UpdateClassRequest{
		Schedule: []models.RecurrenceEntryRequest{
			{DayOfWeek: 3, StartMinute: 600, EndMinute: 660, RoomID: "r202"},
		},
	})
	require.Error(t, err)

	assert.Equal(t, -1, indexOf(*log, "session.SoftDeleteByClass"))
	assert.Equal(t, -1, indexOf(*log, "session.CreateMany"))
}

func TestUpdateClassMetadataOnlySkipsSessionRegeneration(t *testing.T) {
	svc, _, log := updateFixture()

	name := "Power Yoga"
	updated, report, err := svc.UpdateClass(context.Background(), "yoga", models.UpdateClassRequest{Name: &name})
	require.NoError(t, err)
	require.Nil(t, report)
	assert.Equal(t, "Power Yoga", updated.Name)

	assert.NotEqual(t, -1, indexOf(*log, "class.Update"))
	assert.Equal(t, -1, indexOf(*log, "session.SoftDeleteByClass"))
	assert.Equal(t, -1, indexOf(*log, "session.CreateMany"))
}

func TestUpdateSessionRejectsMidnightSpanningTimes(t *testing.T) {
	svc, _, _ := updateFixture()

	_, _, err := svc.UpdateSession(context.Background(), "sess-1", models.UpdateSessionRequest{
		StartTime: time.Date(2025, 3, 3, 23, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 4, 1, 0, 0, 0, time.UTC),
	})
	var verr scheduling.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "midnight")
}
