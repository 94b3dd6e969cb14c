// File: database/repository/class/class_mongo.go
package classRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
)

func (r *mongoClassRepo) Create(ctx context.Context, class models.Class) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if class.ID == "" {
		class.ID = uuid.New().String()
	}
	if class.CreatedAt.IsZero() {
		class.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, class); err != nil {
		return "", fmt.Errorf("failed to insert class: %w", err)
	}
	return class.ID, nil
}

func (r *mongoClassRepo) GetByID(ctx context.Context, classID string) (*models.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var class models.Class
	err := r.coll.FindOne(ctx, bson.M{"id": classID, "deleted": false}).Decode(&class)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch class: %w", err)
	}
	return &class, nil
}

func (r *mongoClassRepo) GetRefByID(ctx context.Context, classID string) (*models.ClassRef, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"id": 1, "name": 1, "trainerIds": 1})
	var ref models.ClassRef
	err := r.coll.FindOne(ctx, bson.M{"id": classID, "deleted": false}, opts).Decode(&ref)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch class ref: %w", err)
	}
	return &ref, nil
}

// GetRefsByIDs batch-fetches minimal class views for message enrichment.
func (r *mongoClassRepo) GetRefsByIDs(ctx context.Context, classIDs []string) (map[string]models.ClassRef, error) {
	if len(classIDs) == 0 {
		return map[string]models.ClassRef{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1, "name": 1, "trainerIds": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": classIDs}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class refs: %w", err)
	}
	defer cursor.Close(ctx)

	var refs []models.ClassRef
	if err := cursor.All(ctx, &refs); err != nil {
		return nil, fmt.Errorf("error decoding class refs: %w", err)
	}

	out := make(map[string]models.ClassRef, len(refs))
	for _, ref := range refs {
		out[ref.ID] = ref
	}
	return out, nil
}

func (r *mongoClassRepo) Update(ctx context.Context, class *models.Class) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	class.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":        class.Name,
		"description": class.Description,
		"trainerIds":  class.TrainerIDs,
		"capacity":    class.Capacity,
		"schedule":    class.Schedule,
		"updatedAt":   class.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": class.ID, "deleted": false}, update)
	if err != nil {
		return fmt.Errorf("failed to update class: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoClassRepo) List(ctx context.Context) ([]models.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"deleted": false})
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	defer cursor.Close(ctx)

	var classes []models.Class
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("error decoding classes: %w", err)
	}
	return classes, nil
}

func (r *mongoClassRepo) SoftDelete(ctx context.Context, classID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"deleted": true, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": classID, "deleted": false}, update)
	if err != nil {
		return fmt.Errorf("failed to soft-delete class: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
