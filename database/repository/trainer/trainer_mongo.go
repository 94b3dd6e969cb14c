// File: database/repository/trainer/trainer_mongo.go
package trainerRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/giavix1302/be-gym-management-system-sub000/database"
	"github.com/giavix1302/be-gym-management-system-sub000/models"
)

type TrainerRepository interface {
	Create(ctx context.Context, trainer models.Trainer) (string, error)
	GetByID(ctx context.Context, trainerID string) (*models.Trainer, error)
	GetNamesByIDs(ctx context.Context, trainerIDs []string) (map[string]string, error)
	List(ctx context.Context) ([]models.Trainer, error)
	SoftDelete(ctx context.Context, trainerID string) error
}

type mongoTrainerRepo struct {
	coll *mongo.Collection
}

// NewMongoTrainerRepo constructs a new MongoDB TrainerRepository.
func NewMongoTrainerRepo() TrainerRepository {
	return &mongoTrainerRepo{
		coll: database.DB().Collection("trainers"),
	}
}

func (r *mongoTrainerRepo) Create(ctx context.Context, trainer models.Trainer) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if trainer.ID == "" {
		trainer.ID = uuid.New().String()
	}
	if trainer.CreatedAt.IsZero() {
		trainer.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, trainer); err != nil {
		return "", fmt.Errorf("failed to insert trainer: %w", err)
	}
	return trainer.ID, nil
}

func (r *mongoTrainerRepo) GetByID(ctx context.Context, trainerID string) (*models.Trainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var trainer models.Trainer
	err := r.coll.FindOne(ctx, bson.M{"id": trainerID, "deleted": false}).Decode(&trainer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch trainer: %w", err)
	}
	return &trainer, nil
}

// GetNamesByIDs batch-fetches trainer display names for message enrichment.
func (r *mongoTrainerRepo) GetNamesByIDs(ctx context.Context, trainerIDs []string) (map[string]string, error) {
	if len(trainerIDs) == 0 {
		return map[string]string{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1, "fullName": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": trainerIDs}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trainer names: %w", err)
	}
	defer cursor.Close(ctx)

	var trainers []models.Trainer
	if err := cursor.All(ctx, &trainers); err != nil {
		return nil, fmt.Errorf("error decoding trainer names: %w", err)
	}

	names := make(map[string]string, len(trainers))
	for _, trainer := range trainers {
		names[trainer.ID] = trainer.FullName
	}
	return names, nil
}

func (r *mongoTrainerRepo) List(ctx context.Context) ([]models.Trainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"deleted": false})
	if err != nil {
		return nil, fmt.Errorf("failed to list trainers: %w", err)
	}
	defer cursor.Close(ctx)

	var trainers []models.Trainer
	if err := cursor.All(ctx, &trainers); err != nil {
		return nil, fmt.Errorf("error decoding trainers: %w", err)
	}
	return trainers, nil
}

func (r *mongoTrainerRepo) SoftDelete(ctx context.Context, trainerID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": trainerID, "deleted": false},
		bson.M{"$set": bson.M{"deleted": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to soft-delete trainer: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
