// File: database/repository/session/indexes.go
package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/giavix1302/be-gym-management-system-sub000/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureSessionIndexes creates the indexes the conflict scans rely on, plus
// a unique partial index on roomId+startTime over live sessions. The
// conflict scan is advisory and scan-then-write is not atomic, so two
// concurrent writers can both pass it; the unique index rejects the common
// double-write (two sessions starting at the same instant in the same room)
// at the store. It is an approximation, not a full guard: overlapping
// sessions with different start times still require a single-writer
// transaction per room to exclude.
func EnsureSessionIndexes(ctx context.Context) error {
	coll := database.DB().Collection("class_sessions")
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "classId", Value: 1}, {Key: "deleted", Value: 1}}},
		{Keys: bson.D{{Key: "roomId", Value: 1}, {Key: "startTime", Value: 1}, {Key: "endTime", Value: 1}}},
		{Keys: bson.D{{Key: "trainerIds", Value: 1}, {Key: "startTime", Value: 1}}},
		{
			Keys: bson.D{{Key: "roomId", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"deleted": false}),
		},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create session indexes: %w", err)
	}
	return nil
}
