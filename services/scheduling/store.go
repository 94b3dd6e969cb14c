package scheduling

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	classRepo "github.com/giavix1302/be-gym-management-system-sub000/database/repository/class"
	roomRepo "github.com/giavix1302/be-gym-management-system-sub000/database/repository/room"
	scheduleRepo "github.com/giavix1302/be-gym-management-system-sub000/database/repository/schedule"
	sessionRepo "github.com/giavix1302/be-gym-management-system-sub000/database/repository/session"
	trainerRepo "github.com/giavix1302/be-gym-management-system-sub000/database/repository/trainer"
	"github.com/giavix1302/be-gym-management-system-sub000/models"
	"github.com/giavix1302/be-gym-management-system-sub000/utils"
)

// CommitmentStore is the read-only facade the engine scans through. The
// engine never writes; it is injected with this interface so tests can
// substitute an in-memory fake.
type CommitmentStore interface {
	FindSessionsByRoomInRange(ctx context.Context, roomID string, start, end time.Time) ([]models.ClassSession, error)
	FindSessionsByTrainersInRange(ctx context.Context, trainerIDs []string, start, end time.Time) ([]models.ClassSession, error)
	FindTrainerScheduleInRange(ctx context.Context, trainerIDs []string, start, end time.Time) ([]models.TrainerSchedule, error)

	// Lookups for existence checks and message enrichment. Batch variants
	// exist so a scan issues one lookup per kind, not one per conflict.
	GetClassRef(ctx context.Context, classID string) (*models.ClassRef, error)
	GetClassRefs(ctx context.Context, classIDs []string) (map[string]models.ClassRef, error)
	GetRoom(ctx context.Context, roomID string) (*models.Room, error)
	GetRoomNames(ctx context.Context, roomIDs []string) (map[string]string, error)
	GetTrainerNames(ctx context.Context, trainerIDs []string) (map[string]string, error)
}

// mongoCommitmentStore adapts the entity repositories to the store facade,
// with a Redis layer over the display-name lookups (names change rarely and
// every conflict entry needs them).
type mongoCommitmentStore struct {
	sessions  sessionRepo.SessionRepository
	schedules scheduleRepo.ScheduleRepository
	classes   classRepo.ClassRepository
	rooms     roomRepo.RoomRepository
	trainers  trainerRepo.TrainerRepository

	cache    *redis.Client
	cacheTTL time.Duration
}

// NewStore builds the production CommitmentStore. cache may be nil, in which
// case every name lookup goes to Mongo.
func NewStore(
	sessions sessionRepo.SessionRepository,
	schedules scheduleRepo.ScheduleRepository,
	classes classRepo.ClassRepository,
	rooms roomRepo.RoomRepository,
	trainers trainerRepo.TrainerRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
) CommitmentStore {
	return &mongoCommitmentStore{
		sessions:  sessions,
		schedules: schedules,
		classes:   classes,
		rooms:     rooms,
		trainers:  trainers,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

func (s *mongoCommitmentStore) FindSessionsByRoomInRange(ctx context.Context, roomID string, start, end time.Time) ([]models.ClassSession, error) {
	return s.sessions.FindByRoomInRange(ctx, roomID, start, end)
}

func (s *mongoCommitmentStore) FindSessionsByTrainersInRange(ctx context.Context, trainerIDs []string, start, end time.Time) ([]models.ClassSession, error) {
	return s.sessions.FindByTrainersInRange(ctx, trainerIDs, start, end)
}

func (s *mongoCommitmentStore) FindTrainerScheduleInRange(ctx context.Context, trainerIDs []string, start, end time.Time) ([]models.TrainerSchedule, error) {
	return s.schedules.FindByTrainersInRange(ctx, trainerIDs, start, end)
}

func (s *mongoCommitmentStore) GetClassRef(ctx context.Context, classID string) (*models.ClassRef, error) {
	return s.classes.GetRefByID(ctx, classID)
}

func (s *mongoCommitmentStore) GetClassRefs(ctx context.Context, classIDs []string) (map[string]models.ClassRef, error) {
	return s.classes.GetRefsByIDs(ctx, classIDs)
}

func (s *mongoCommitmentStore) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	return s.rooms.GetByID(ctx, roomID)
}

func (s *mongoCommitmentStore) GetRoomNames(ctx context.Context, roomIDs []string) (map[string]string, error) {
	return s.cachedNames(ctx, "room-name:", roomIDs, s.rooms.GetNamesByIDs)
}

func (s *mongoCommitmentStore) GetTrainerNames(ctx context.Context, trainerIDs []string) (map[string]string, error) {
	return s.cachedNames(ctx, "trainer-name:", trainerIDs, s.trainers.GetNamesByIDs)
}

// cachedNames resolves display names through Redis first and falls back to a
// single batch Mongo query for the misses. Cache failures only log; the scan
// must not fail because the cache is down.
func (s *mongoCommitmentStore) cachedNames(
	ctx context.Context,
	prefix string,
	ids []string,
	fetch func(context.Context, []string) (map[string]string, error),
) (map[string]string, error) {
	if s.cache == nil {
		return fetch(ctx, ids)
	}
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	names := make(map[string]string, len(ids))
	var misses []string
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = prefix + id
	}

	cached, err := s.cache.MGet(ctx, keys...).Result()
	if err != nil {
		utils.GetLogger().Warn("name cache read failed, falling back to store", zap.Error(err))
		return fetch(ctx, ids)
	}
	for i, raw := range cached {
		if v, ok := raw.(string); ok && v != "" {
			names[ids[i]] = v
		} else {
			misses = append(misses, ids[i])
		}
	}

	if len(misses) > 0 {
		fetched, err := fetch(ctx, misses)
		if err != nil {
			return nil, err
		}
		for id, name := range fetched {
			names[id] = name
			if err := s.cache.Set(ctx, prefix+id, name, s.cacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("name cache write failed", zap.String("id", id), zap.Error(err))
			}
		}
	}
	return names, nil
}
