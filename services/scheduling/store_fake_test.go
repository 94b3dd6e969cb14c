package scheduling

import (
	"context"
	"time"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
)

// fakeStore is the in-memory CommitmentStore used across the engine tests.
// Filtering mirrors the Mongo queries: half-open range intersection and
// trainer-list intersection.
type fakeStore struct {
	sessions     []models.ClassSession
	schedules    []models.TrainerSchedule
	classes      map[string]models.ClassRef
	rooms        map[string]models.Room
	trainerNames map[string]string

	calls map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		classes:      map[string]models.ClassRef{},
		rooms:        map[string]models.Room{},
		trainerNames: map[string]string{},
		calls:        map[string]int{},
	}
}

func (f *fakeStore) record(name string) {
	f.calls[name]++
}

func intersects(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func (f *fakeStore) FindSessionsByRoomInRange(_ context.Context, roomID string, start, end time.Time) ([]models.ClassSession, error) {
	f.record("FindSessionsByRoomInRange")
	var out []models.ClassSession
	for _, s := range f.sessions {
		if s.RoomID == roomID && !s.Deleted && intersects(s.StartTime, s.EndTime, start, end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) FindSessionsByTrainersInRange(_ context.Context, trainerIDs []string, start, end time.Time) ([]models.ClassSession, error) {
	f.record("FindSessionsByTrainersInRange")
	requested := map[string]bool{}
	for _, id := range trainerIDs {
		requested[id] = true
	}
	var out []models.ClassSession
	for _, s := range f.sessions {
		if s.Deleted || !intersects(s.StartTime, s.EndTime, start, end) {
			continue
		}
		for _, tid := range s.TrainerIDs {
			if requested[tid] {
				out = append(out, s)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStore) FindTrainerScheduleInRange(_ context.Context, trainerIDs []string, start, end time.Time) ([]models.TrainerSchedule, error) {
	f.record("FindTrainerScheduleInRange")
	requested := map[string]bool{}
	for _, id := range trainerIDs {
		requested[id] = true
	}
	var out []models.TrainerSchedule
	for _, slot := range f.schedules {
		if requested[slot.TrainerID] && intersects(slot.StartTime, slot.EndTime, start, end) {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (f *fakeStore) GetClassRef(_ context.Context, classID string) (*models.ClassRef, error) {
	f.record("GetClassRef")
	if ref, ok := f.classes[classID]; ok {
		return &ref, nil
	}
	return nil, nil
}

func (f *fakeStore) GetClassRefs(_ context.Context, classIDs []string) (map[string]models.ClassRef, error) {
	f.record("GetClassRefs")
	out := map[string]models.ClassRef{}
	for _, id := range classIDs {
		if ref, ok := f.classes[id]; ok {
			out[id] = ref
		}
	}
	return out, nil
}

func (f *fakeStore) GetRoom(_ context.Context, roomID string) (*models.Room, error) {
	f.record("GetRoom")
	if room, ok := f.rooms[roomID]; ok && !room.Deleted {
		return &room, nil
	}
	return nil, nil
}

func (f *fakeStore) GetRoomNames(_ context.Context, roomIDs []string) (map[string]string, error) {
	f.record("GetRoomNames")
	out := map[string]string{}
	for _, id := range roomIDs {
		if room, ok := f.rooms[id]; ok {
			out[id] = room.Name
		}
	}
	return out, nil
}

func (f *fakeStore) GetTrainerNames(_ context.Context, trainerIDs []string) (map[string]string, error) {
	f.record("GetTrainerNames")
	out := map[string]string{}
	for _, id := range trainerIDs {
		if name, ok := f.trainerNames[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}
