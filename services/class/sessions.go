// File: services/class/sessions.go
package class

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
	"github.com/giavix1302/be-gym-management-system-sub000/services/scheduling"
	"github.com/giavix1302/be-gym-management-system-sub000/utils"
)

// MaterializeSessions expands a class's weekly pattern into one concrete
// session per recurrence instance inside [StartDate, EndDate). Sessions
// inherit the class's trainer roster.
func MaterializeSessions(class models.Class) []models.ClassSession {
	var sessions []models.ClassSession
	for day := class.StartDate; day.Before(class.EndDate); day = day.AddDate(0, 0, 1) {
		weekday := scheduling.WeekdayOf(day)
		for _, entry := range class.Schedule {
			if entry.Window.DayOfWeek != weekday {
				continue
			}
			start := time.Date(day.Year(), day.Month(), day.Day(),
				entry.Window.StartMinute/60, entry.Window.StartMinute%60, 0, 0, day.Location())
			end := time.Date(day.Year(), day.Month(), day.Day(),
				entry.Window.EndMinute/60, entry.Window.EndMinute%60, 0, 0, day.Location())
			sessions = append(sessions, models.ClassSession{
				ClassID:    class.ID,
				RoomID:     entry.RoomID,
				TrainerIDs: class.TrainerIDs,
				StartTime:  start,
				EndTime:    end,
			})
		}
	}
	return sessions
}

func (s *DefaultClassService) ListSessions(ctx context.Context, classID string) ([]models.ClassSession, error) {
	if _, err := s.GetClass(ctx, classID); err != nil {
		return nil, err
	}
	return s.SessionRepo.ListByClass(ctx, classID)
}

// UpdateSession reschedules one concrete session. The room check and a
// trainer check per trainer run first, each excluding the session itself so
// saving it unmoved never collides with its own record.
func (s *DefaultClassService) UpdateSession(ctx context.Context, sessionID string, req models.UpdateSessionRequest) (*models.ClassSession, *models.ConflictReport, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, nil, scheduling.ValidationError{Reason: "session start must be before end"}
	}
	if scheduling.SpansMidnight(req.StartTime, req.EndTime) {
		return nil, nil, scheduling.ValidationError{Reason: "session must not cross midnight"}
	}

	session, err := s.SessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, nil, scheduling.NotFoundError{Code: "session_not_found", ID: sessionID}
	}

	roomID := session.RoomID
	if req.RoomID != "" {
		roomID = req.RoomID
	}
	trainerIDs := session.TrainerIDs
	if req.TrainerIDs != nil {
		trainerIDs = req.TrainerIDs
	}

	report, err := s.Engine.CheckRoomSlot(ctx, sessionID, req.StartTime, req.EndTime, roomID)
	if err != nil {
		return nil, nil, err
	}
	if report.HasConflict {
		return nil, report, nil
	}

	for _, trainerID := range trainerIDs {
		trainerReport, err := s.Engine.CheckTrainerSlot(ctx, trainerID, req.StartTime, req.EndTime, session.ClassID, sessionID)
		if err != nil {
			return nil, nil, err
		}
		if trainerReport.HasConflict {
			return nil, trainerReport, nil
		}
	}

	session.RoomID = roomID
	session.TrainerIDs = trainerIDs
	session.StartTime = req.StartTime
	session.EndTime = req.EndTime
	if err := s.SessionRepo.Update(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to update session: %w", err)
	}

	utils.GetLogger().Info("session rescheduled",
		zap.String("sessionId", sessionID),
		zap.String("roomId", roomID),
	)
	return session, nil, nil
}
