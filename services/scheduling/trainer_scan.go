package scheduling

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
	"github.com/giavix1302/be-gym-management-system-sub000/utils"
)

// trainerHit pairs a colliding commitment with the trainer it collides for.
type trainerHit struct {
	trainerID  string
	commitment commitment
	window     models.TimeWindow
}

// ScanTrainers checks the proposed pattern against both commitment sources
// for every requested trainer. A trainer can be double-booked either by
// sitting in another class's sessions or by a personal schedule slot, and a
// slot counts even when no client has booked it yet. Results are grouped per
// trainer on top of the flat entry list so callers can say "N trainers have
// conflicts" without re-deriving it.
func (e *DefaultConflictEngine) ScanTrainers(
	ctx context.Context,
	trainerIDs []string,
	rangeStart, rangeEnd time.Time,
	recurrence []models.RecurrenceEntry,
) (*models.ConflictReport, error) {
	if len(trainerIDs) == 0 {
		return nil, ValidationError{Reason: "at least one trainer is required"}
	}
	if err := validateRange(rangeStart, rangeEnd); err != nil {
		return nil, err
	}
	if err := validateRecurrence(recurrence); err != nil {
		return nil, err
	}

	requested := make(map[string]bool, len(trainerIDs))
	for _, id := range trainerIDs {
		requested[id] = true
	}

	// One fetch per source for the whole range, never per recurrence entry.
	var candidates []commitment
	for _, src := range trainerSources {
		batch, err := src.fetch(ctx, e.Store, trainerIDs, rangeStart, rangeEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch trainer commitments: %w", err)
		}
		candidates = append(candidates, batch...)
	}

	var hits []trainerHit
	for _, entry := range recurrence {
		for _, c := range candidates {
			for _, w := range windowsOf(c.start, c.end) {
				if !Overlaps(entry.Window, w) {
					continue
				}
				for _, tid := range c.trainerIDs {
					if requested[tid] {
						hits = append(hits, trainerHit{trainerID: tid, commitment: c, window: w})
					}
				}
				break
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

	utils.GetLogger().Debug("trainer scan found conflicts",
		zap.Int("trainers", len(report.PerTrainer)),
		zap.Int("count", report.Count),
	)
	return report, nil
}

// enrichTrainerHits resolves class, room and trainer display names in one
// batch lookup per kind, then materializes the report entries.
func (e *DefaultConflictEngine) enrichTrainerHits(ctx context.Context, hits []trainerHit, report *models.ConflictReport) error {
	var classIDs, roomIDs, hitTrainerIDs []string
	seenClass := map[string]bool{}
	seenRoom := map[string]bool{}
	seenTrainer := map[string]bool{}
	for _, h := range hits {
		if c := h.commitment.classID; c != "" && !seenClass[c] {
			seenClass[c] = true
			classIDs = append(classIDs, c)
		}
		if r := h.commitment.roomID; r != "" && !seenRoom[r] {
			seenRoom[r] = true
			roomIDs = append(roomIDs, r)
		}
		if !seenTrainer[h.trainerID] {
			seenTrainer[h.trainerID] = true
			hitTrainerIDs = append(hitTrainerIDs, h.trainerID)
		}
	}

	classRefs, err := e.Store.GetClassRefs(ctx, classIDs)
	if err != nil {
		return fmt.Errorf("failed to enrich conflict classes: %w", err)
	}
	roomNames, err := e.Store.GetRoomNames(ctx, roomIDs)
	if err != nil {
		return fmt.Errorf("failed to enrich conflict rooms: %w", err)
	}
	trainerNames, err := e.Store.GetTrainerNames(ctx, hitTrainerIDs)
	if err != nil {
		return fmt.Errorf("failed to enrich conflict trainers: %w", err)
	}

	for _, h := range hits {
		entry := models.ConflictEntry{
			Type:        h.commitment.kind,
			Window:      h.window,
			TrainerID:   h.trainerID,
			TrainerName: trainerNames[h.trainerID],
		}
		switch h.commitment.kind {
		case models.ConflictTypeSession:
			entry.ClassID = h.commitment.classID
			entry.RoomID = h.commitment.roomID
			entry.RoomName = roomNames[h.commitment.roomID]
			if ref, ok := classRefs[h.commitment.classID]; ok {
				entry.ClassName = ref.Name
				entry.OtherParty = ref.Name
			}
		case models.ConflictTypeBooking:
			entry.Booked = h.commitment.booked
			if h.commitment.booked {
				entry.BookedBy = h.commitment.bookedBy
				entry.OtherParty = h.commitment.bookedBy
			} else {
				entry.OtherParty = "held schedule slot"
			}
		}
		report.AddForTrainer(h.trainerID, entry)
	}
	return nil
}
