// File: services/scheduling/interface.go
package scheduling

import (
	"context"
	"time"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
)

// ConflictEngine is the read-side guard invoked before every class or
// session write. It holds no state between calls and never writes: a clean
// report is advice, not a lock. Two concurrent requests can both pass the
// scan; the storage layer's constraints are the last line of defense against
// that race.
type ConflictEngine interface {
	// ScanRoom checks a weekly recurrence pattern against every committed
	// session of the room inside [rangeStart, rangeEnd). excludeSessionID
	// (optional, empty to skip) exempts the session being edited.
	ScanRoom(ctx context.Context, roomID string, rangeStart, rangeEnd time.Time, recurrence []models.RecurrenceEntry, excludeSessionID string) (*models.ConflictReport, error)

	// ScanTrainers checks the pattern against both commitment sources for
	// every requested trainer and reports per-trainer detail.
	ScanTrainers(ctx context.Context, trainerIDs []string, rangeStart, rangeEnd time.Time, recurrence []models.RecurrenceEntry) (*models.ConflictReport, error)

	// CheckTrainerSlot is the single-session edit path for one trainer. The
	// trainer must already be assigned to the class; other sessions of the
	// same class are not conflicts.
	CheckTrainerSlot(ctx context.Context, trainerID string, start, end time.Time, classID, excludeSessionID string) (*models.ConflictReport, error)

	// CheckRoomSlot is the single-session edit path for one room, excluding
	// the session under edit so re-saving in place never conflicts with
	// itself.
	CheckRoomSlot(ctx context.Context, sessionID string, start, end time.Time, roomID string) (*models.ConflictReport, error)
}

// DefaultConflictEngine scans through an injected CommitmentStore.
type DefaultConflictEngine struct {
	Store CommitmentStore
}

// NewEngine constructs the default conflict engine.
func NewEngine(store CommitmentStore) *DefaultConflictEngine {
	return &DefaultConflictEngine{Store: store}
}

func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return ValidationError{Reason: "date range must be set"}
	}
	if !start.Before(end) {
		return ValidationError{Reason: "range start must be before range end"}
	}
	return nil
}

func validateRecurrence(recurrence []models.RecurrenceEntry) error {
	if len(recurrence) == 0 {
		return ValidationError{Reason: "recurrence pattern is empty"}
	}
	for _, entry := range recurrence {
		if err := entry.Window.Validate(); err != nil {
			return ValidationError{Reason: err.Error()}
		}
		if entry.RoomID == "" {
			return ValidationError{Reason: "recurrence entry missing room"}
		}
	}
	return nil
}
