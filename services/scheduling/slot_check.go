package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
)

// CheckTrainerSlot guards the single-session edit path for one trainer.
// The assignment precondition runs before any overlap scan: a trainer who is
// not on the class roster is a data-integrity problem, not a scheduling one.
// Sessions of the same class are skipped since a trainer's own class cannot
// conflict with itself.
func (e *DefaultConflictEngine) CheckTrainerSlot(
	ctx context.Context,
	trainerID string,
	start, end time.Time,
	classID, excludeSessionID string,
) (*models.ConflictReport, error) {
	if trainerID == "" {
		return nil, ValidationError{Reason: "trainer id is required"}
	}
	if classID == "" {
		return nil, ValidationError{Reason: "class id is required"}
	}
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	class, err := e.Store.GetClassRef(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve class %s: %w", classID, err)
	}
	if class == nil {
		return nil, NotFoundError{Code: CodeClassNotFound, ID: classID}
	}
	assigned := false
	for _, id := range class.TrainerIDs {
		if id == trainerID {
			assigned = true
			break
		}
	}
	if !assigned {
		return nil, IntegrityError{Code: CodeTrainerNotAssigned, TrainerID: trainerID, ClassID: classID}
	}

	var hits []trainerHit
	for _, src := range trainerSources {
		candidates, err := src.fetch(ctx, e.Store, []string{trainerID}, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch trainer commitments: %w", err)
		}
		for _, c := range candidates {
			if c.sessionID == excludeSessionID && c.sessionID != "" {
				continue
			}
			if c.classID == classID && c.kind == models.ConflictTypeSession {
				continue
			}
			// Both sides are concrete timestamps here, so the absolute test
			// applies rather than the weekday abstraction.
			if intervalsOverlap(c.start, c.end, start, end) {
				hits = append(hits, trainerHit{trainerID: trainerID, commitment: c, window: WindowOf(c.start, c.end)})
			}
		}
	}

	report := &models.ConflictReport{}
	if len(hits) == 0 {
		return report, nil
	}
	if err := e.enrichTrainerHits(ctx, hits, report); err != nil {
		return nil, err
	}
	return report, nil
}

// CheckRoomSlot guards the single-session edit path for one room, excluding
// the session under edit so an unmoved session never conflicts with itself.
func (e *DefaultConflictEngine) CheckRoomSlot(
	ctx context.Context,
	sessionID string,
	start, end time.Time,
	roomID string,
) (*models.ConflictReport, error) {
	if roomID == "" {
		return nil, ValidationError{Reason: "room id is required"}
	}
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	room, err := e.Store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve room %s: %w", roomID, err)
	}
	if room == nil {
		return nil, NotFoundError{Code: CodeRoomNotFound, ID: roomID}
	}

	candidates, err := e.Store.FindSessionsByRoomInRange(ctx, roomID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions for room %s: %w", roomID, err)
	}

	var hits []models.ClassSession
	for _, s := range candidates {
		if s.ID == sessionID || s.Deleted {
			continue
		}
		if intervalsOverlap(s.StartTime, s.EndTime, start, end) {
			hits = append(hits, s)
		}
	}

	report := &models.ConflictReport{}
	if len(hits) == 0 {
		return report, nil
	}

	classIDs := make([]string, 0, len(hits))
	seen := make(map[string]bool, len(hits))
	for _, s := range hits {
		if !seen[s.ClassID] {
			seen[s.ClassID] = true
			classIDs = append(classIDs, s.ClassID)
		}
	}
	classRefs, err := e.Store.GetClassRefs(ctx, classIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to enrich room conflicts: %w", err)
	}

	for _, s := range hits {
		entry := models.ConflictEntry{
			Type:     models.ConflictTypeSession,
			Window:   WindowOf(s.StartTime, s.EndTime),
			ClassID:  s.ClassID,
			RoomID:   roomID,
			RoomName: room.Name,
		}
		if ref, ok := classRefs[s.ClassID]; ok {
			entry.ClassName = ref.Name
			entry.OtherParty = ref.Name
		}
		report.Add(entry)
	}
	return report, nil
}
