// File: services/class/class.go
package class

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/giavix1302/be-gym-management-system-sub000/cron"
	"github.com/giavix1302/be-gym-management-system-sub000/models"
	"github.com/giavix1302/be-gym-management-system-sub000/services/scheduling"
	"github.com/giavix1302/be-gym-management-system-sub000/utils"
)

const dateLayout = "2006-01-02"

// CreateClass validates the request, scans every room and trainer in the
// proposed pattern, and only on a clean report materializes the sessions and
// inserts the class. The scan is advisory: the session collection's indexes
// are what hold under concurrent writers.
func (s *DefaultClassService) CreateClass(ctx context.Context, req models.CreateClassRequest) (*models.Class, *models.ConflictReport, error) {
	logger := utils.GetLogger()

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, nil, err
	}
	recurrence, err := buildRecurrence(req.Schedule)
	if err != nil {
		return nil, nil, err
	}
	if err := s.verifyTrainersExist(ctx, req.TrainerIDs); err != nil {
		return nil, nil, err
	}

	report, err := s.scanPattern(ctx, req.TrainerIDs, startDate, endDate, recurrence, "")
	if err != nil {
		return nil, nil, err
	}
	if report.HasConflict {
		logger.Info("class creation rejected by conflict scan",
			zap.String("name", req.Name), zap.Int("conflicts", report.Count))
		return nil, report, nil
	}

	class := models.Class{
		Name:        req.Name,
		Description: req.Description,
		TrainerIDs:  req.TrainerIDs,
		Capacity:    req.Capacity,
		StartDate:   startDate,
		EndDate:     endDate,
		Schedule:    recurrence,
	}
	classID, err := s.ClassRepo.Create(ctx, class)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create class: %w", err)
	}
	class.ID = classID

	sessions := MaterializeSessions(class)
	if len(sessions) > 0 {
		if _, err := s.SessionRepo.CreateMany(ctx, sessions); err != nil {
			return nil, nil, fmt.Errorf("failed to create class sessions: %w", err)
		}
	}

	logger.Info("class created",
		zap.String("classId", classID),
		zap.Int("sessions", len(sessions)),
	)
	return &class, nil, nil
}

func (s *DefaultClassService) GetClass(ctx context.Context, classID string) (*models.Class, error) {
	class, err := s.ClassRepo.GetByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, scheduling.NotFoundError{Code: scheduling.CodeClassNotFound, ID: classID}
	}
	return class, nil
}

func (s *DefaultClassService) ListClasses(ctx context.Context) ([]models.Class, error) {
	return s.ClassRepo.List(ctx)
}

// UpdateClass applies metadata changes directly; a schedule change re-runs
// the full scan (conflicts against the class's own sessions are filtered
// out) and regenerates the materialized sessions.
func (s *DefaultClassService) UpdateClass(ctx context.Context, classID string, req models.UpdateClassRequest) (*models.Class, *models.ConflictReport, error) {
	class, err := s.GetClass(ctx, classID)
	if err != nil {
		return nil, nil, err
	}

	if req.Name != nil {
		class.Name = *req.Name
	}
	if req.Description != nil {
		class.Description = *req.Description
	}
	if req.Capacity != nil {
		class.Capacity = *req.Capacity
	}
	if req.TrainerIDs != nil {
		if err := s.verifyTrainersExist(ctx, req.TrainerIDs); err != nil {
			return nil, nil, err
		}
		class.TrainerIDs = req.TrainerIDs
	}

	scheduleChanged := false
	if req.Schedule != nil {
		recurrence, err := buildRecurrence(req.Schedule)
		if err != nil {
			return nil, nil, err
		}

		report, err := s.scanPattern(ctx, class.TrainerIDs, class.StartDate, class.EndDate, recurrence, classID)
		if err != nil {
			return nil, nil, err
		}
		if report.HasConflict {
			return nil, report, nil
		}

		class.Schedule = recurrence
		scheduleChanged = true
	}

	// Persist the class document before touching the session collection, so
	// an update failure leaves the old sessions intact.
	if err := s.ClassRepo.Update(ctx, class); err != nil {
		return nil, nil, fmt.Errorf("failed to update class: %w", err)
	}

	if scheduleChanged {
		if err := s.SessionRepo.SoftDeleteByClass(ctx, classID); err != nil {
			return nil, nil, fmt.Errorf("failed to retire old sessions: %w", err)
		}
		sessions := MaterializeSessions(*class)
		if len(sessions) > 0 {
			if _, err := s.SessionRepo.CreateMany(ctx, sessions); err != nil {
				return nil, nil, fmt.Errorf("failed to regenerate sessions: %w", err)
			}
		}
	}
	return class, nil, nil
}

// DeleteClass soft-deletes the class and its sessions, then schedules the
// delayed hard purge.
func (s *DefaultClassService) DeleteClass(ctx context.Context, classID string) error {
	if _, err := s.GetClass(ctx, classID); err != nil {
		return err
	}
	if err := s.ClassRepo.SoftDelete(ctx, classID); err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}
	if err := s.SessionRepo.SoftDeleteByClass(ctx, classID); err != nil {
		return fmt.Errorf("failed to delete class sessions: %w", err)
	}

	if s.PurgeClient != nil {
		if err := cron.EnqueueSessionPurge(s.PurgeClient, classID, s.PurgeDelay); err != nil {
			// The soft delete already hides the data; purge failure is not fatal.
			utils.GetLogger().Warn("failed to enqueue session purge",
				zap.String("classId", classID), zap.Error(err))
		}
	}
	return nil
}

// scanPattern runs the room scan per distinct room plus the trainer scan,
// and merges results. excludeClassID drops entries caused by the class's own
// sessions (used on schedule updates, where the old sessions still exist).
func (s *DefaultClassService) scanPattern(
	ctx context.Context,
	trainerIDs []string,
	startDate, endDate time.Time,
	recurrence []models.RecurrenceEntry,
	excludeClassID string,
) (*models.ConflictReport, error) {
	merged := &models.ConflictReport{}

	seenRooms := map[string]bool{}
	for _, entry := range recurrence {
		if seenRooms[entry.RoomID] {
			continue
		}
		seenRooms[entry.RoomID] = true

		report, err := s.Engine.ScanRoom(ctx, entry.RoomID, startDate, endDate, recurrence, "")
		if err != nil {
			return nil, err
		}
		mergeReport(merged, report, excludeClassID)
	}

	trainerReport, err := s.Engine.ScanTrainers(ctx, trainerIDs, startDate, endDate, recurrence)
	if err != nil {
		return nil, err
	}
	mergeReport(merged, trainerReport, excludeClassID)

	return merged, nil
}

// mergeReport folds src into dst, skipping SESSION entries that belong to
// excludeClassID.
func mergeReport(dst, src *models.ConflictReport, excludeClassID string) {
	for _, entry := range src.Entries {
		if excludeClassID != "" && entry.Type == models.ConflictTypeSession && entry.ClassID == excludeClassID {
			continue
		}
		if entry.TrainerID != "" {
			dst.AddForTrainer(entry.TrainerID, entry)
		} else {
			dst.Add(entry)
		}
	}
}

func (s *DefaultClassService) verifyTrainersExist(ctx context.Context, trainerIDs []string) error {
	names, err := s.TrainerRepo.GetNamesByIDs(ctx, trainerIDs)
	if err != nil {
		return fmt.Errorf("failed to verify trainers: %w", err)
	}
	for _, id := range trainerIDs {
		if _, ok := names[id]; !ok {
			return scheduling.ValidationError{Reason: "unknown trainer: " + id}
		}
	}
	return nil
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, scheduling.ValidationError{Reason: "unparseable start date: " + start}
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, scheduling.ValidationError{Reason: "unparseable end date: " + end}
	}
	if !startDate.Before(endDate) {
		return time.Time{}, time.Time{}, scheduling.ValidationError{Reason: "start date must be before end date"}
	}
	return startDate, endDate, nil
}

func buildRecurrence(entries []models.RecurrenceEntryRequest) ([]models.RecurrenceEntry, error) {
	recurrence := make([]models.RecurrenceEntry, 0, len(entries))
	for _, e := range entries {
		window := models.TimeWindow{
			DayOfWeek:   e.DayOfWeek,
			StartMinute: e.StartMinute,
			EndMinute:   e.EndMinute,
		}
		if err := window.Validate(); err != nil {
			return nil, scheduling.ValidationError{Reason: err.Error()}
		}
		recurrence = append(recurrence, models.RecurrenceEntry{Window: window, RoomID: e.RoomID})
	}
	return recurrence, nil
}
