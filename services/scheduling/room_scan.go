package scheduling

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
	"github.com/giavix1302/be-gym-management-system-sub000/utils"
)

// ScanRoom reports every committed session of the room that collides with
// the proposed weekly pattern. One coarse date-range query fetches the
// candidates; the weekday/window test filters them; one batch lookup
// enriches the survivors with class names.
func (e *DefaultConflictEngine) ScanRoom(
	ctx context.Context,
	roomID string,
	rangeStart, rangeEnd time.Time,
	recurrence []models.RecurrenceEntry,
	excludeSessionID string,
) (*models.ConflictReport, error) {
	if roomID == "" {
		return nil, ValidationError{Reason: "room id is required"}
	}
	if err := validateRange(rangeStart, rangeEnd); err != nil {
		return nil, err
	}
	if err := validateRecurrence(recurrence); err != nil {
		return nil, err
	}

	room, err := e.Store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve room %s: %w", roomID, err)
	}
	if room == nil {
		// An invalid room must never read as "free".
		return nil, NotFoundError{Code: CodeRoomNotFound, ID: roomID}
	}

	candidates, err := e.Store.FindSessionsByRoomInRange(ctx, roomID, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions for room %s: %w", roomID, err)
	}

	type hit struct {
		session models.ClassSession
		window  models.TimeWindow
	}
	var hits []hit
	for _, entry := range recurrence {
		if entry.RoomID != roomID {
			continue
		}
		for _, s := range candidates {
			if s.ID == excludeSessionID || s.Deleted {
				continue
			}
			for _, w := range windowsOf(s.StartTime, s.EndTime) {
				if Overlaps(entry.Window, w) {
					hits = append(hits, hit{session: s, window: w})
					break
				}
			}
		}
	}

	report := &models.ConflictReport{}
	if len(hits) == 0 {
		return report, nil
	}

	classIDs := make([]string, 0, len(hits))
	seen := make(map[string]bool, len(hits))
	for _, h := range hits {
		if !seen[h.session.ClassID] {
			seen[h.session.ClassID] = true
			classIDs = append(classIDs, h.session.ClassID)
		}
	}
	classRefs, err := e.Store.GetClassRefs(ctx, classIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to enrich room conflicts: %w", err)
	}

	for _, h := range hits {
		entry := models.ConflictEntry{
			Type:     models.ConflictTypeSession,
			Window:   h.window,
			ClassID:  h.session.ClassID,
			RoomID:   roomID,
			RoomName: room.Name,
		}
		if ref, ok := classRefs[h.session.ClassID]; ok {
			entry.ClassName = ref.Name
			entry.OtherParty = ref.Name
		}
		report.Add(entry)
	}

	utils.GetLogger().Debug("room scan found conflicts",
		zap.String("roomId", roomID),
		zap.Int("count", report.Count),
	)
	return report, nil
}
