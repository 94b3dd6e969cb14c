package scheduling

import (
	"context"
	"time"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
)

// commitment is a normalized occupancy of a trainer's time, regardless of
// whether it comes from a class session or a personal schedule slot. The
// trainer scanners work on this shape so adding another resource type later
// means adding a source, not touching the scan.
type commitment struct {
	kind       string // models.ConflictTypeSession or models.ConflictTypeBooking
	trainerIDs []string
	classID    string
	roomID     string
	sessionID  string
	scheduleID string
	start      time.Time
	end        time.Time
	booked     bool
	bookedBy   string
}

// commitmentSource fetches one kind of trainer commitment in a date range.
type commitmentSource interface {
	fetch(ctx context.Context, store CommitmentStore, trainerIDs []string, start, end time.Time) ([]commitment, error)
}

// sessionSource yields class-session commitments whose trainer list
// intersects the requested trainers.
type sessionSource struct{}

func (sessionSource) fetch(ctx context.Context, store CommitmentStore, trainerIDs []string, start, end time.Time) ([]commitment, error) {
	sessions, err := store.FindSessionsByTrainersInRange(ctx, trainerIDs, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]commitment, 0, len(sessions))
	for _, s := range sessions {
		if s.Deleted {
			continue
		}
		out = append(out, commitment{
			kind:       models.ConflictTypeSession,
			trainerIDs: s.TrainerIDs,
			classID:    s.ClassID,
			roomID:     s.RoomID,
			sessionID:  s.ID,
			start:      s.StartTime,
			end:        s.EndTime,
		})
	}
	return out, nil
}

// trainerScheduleSource yields personal-calendar commitments. A slot counts
// whether or not a client has booked it: the trainer's time is held either way.
type trainerScheduleSource struct{}

func (trainerScheduleSource) fetch(ctx context.Context, store CommitmentStore, trainerIDs []string, start, end time.Time) ([]commitment, error) {
	slots, err := store.FindTrainerScheduleInRange(ctx, trainerIDs, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]commitment, 0, len(slots))
	for _, slot := range slots {
		c := commitment{
			kind:       models.ConflictTypeBooking,
			trainerIDs: []string{slot.TrainerID},
			scheduleID: slot.ID,
			start:      slot.StartTime,
			end:        slot.EndTime,
		}
		if slot.Booking.Active() {
			c.booked = true
			c.bookedBy = slot.Booking.UserName
			if c.bookedBy == "" {
				c.bookedBy = slot.Booking.UserID
			}
		}
		out = append(out, c)
	}
	return out, nil
}

// trainerSources is the fixed set of commitment kinds scanned for trainers.
var trainerSources = []commitmentSource{sessionSource{}, trainerScheduleSource{}}
