// File: database/repository/session/queries.go
package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/giavix1302/be-gym-management-system-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
)

// FindByRoomInRange returns every non-deleted session for a room whose
// [startTime, endTime) intersects [start, end). One coarse query per scan;
// the fine-grained weekday/window filtering happens in the engine.
func (r *mongoSessionRepo) FindByRoomInRange(ctx context.Context, roomID string, start, end time.Time) ([]models.ClassSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"roomId":    roomID,
		"deleted":   false,
		"startTime": bson.M{"$lt": end},
		"endTime":   bson.M{"$gt": start},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions by room: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.ClassSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding sessions: %w", err)
	}
	return sessions, nil
}

// FindByTrainersInRange returns every non-deleted session in the range whose
// trainer list intersects trainerIDs.
func (r *mongoSessionRepo) FindByTrainersInRange(ctx context.Context, trainerIDs []string, start, end time.Time) ([]models.ClassSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"trainerIds": bson.M{"$in": trainerIDs},
		"deleted":    false,
		"startTime":  bson.M{"$lt": end},
		"endTime":    bson.M{"$gt": start},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions by trainers: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.ClassSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding sessions: %w", err)
	}
	return sessions, nil
}

func (r *mongoSessionRepo) ListByClass(ctx context.Context, classID string) ([]models.ClassSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"classId": classID, "deleted": false})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.ClassSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding class sessions: %w", err)
	}
	return sessions, nil
}
