// File: database/repository/session/crud.go
package sessionRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
)

func (r *mongoSessionRepo) CreateMany(ctx context.Context, sessions []models.ClassSession) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, len(sessions))
	ids := make([]string, len(sessions))
	for i, s := range sessions {
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = now
		}
		docs[i] = s
		ids[i] = s.ID
	}

	if _, err := r.coll.InsertMany(ctx, docs, &options.InsertManyOptions{Ordered: boolPtr(true)}); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *mongoSessionRepo) GetByID(ctx context.Context, sessionID string) (*models.ClassSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session models.ClassSession
	err := r.coll.FindOne(ctx, bson.M{"id": sessionID, "deleted": false}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *mongoSessionRepo) Update(ctx context.Context, session *models.ClassSession) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	session.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"roomId":     session.RoomID,
		"trainerIds": session.TrainerIDs,
		"startTime":  session.StartTime,
		"endTime":    session.EndTime,
		"updatedAt":  session.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": session.ID, "deleted": false}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSessionRepo) SoftDeleteByClass(ctx context.Context, classID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"deleted": true, "updatedAt": time.Now()}}
	_, err := r.coll.UpdateMany(ctx, bson.M{"classId": classID}, update)
	return err
}

// PurgeDeletedByClass removes soft-deleted sessions for good. Called by the
// retention worker, never by request handlers.
func (r *mongoSessionRepo) PurgeDeletedByClass(ctx context.Context, classID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"classId": classID, "deleted": true})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func boolPtr(b bool) *bool { return &b }
