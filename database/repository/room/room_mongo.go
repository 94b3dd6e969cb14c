// File: database/repository/room/room_mongo.go
package roomRepo

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

type RoomRepository interface {
	Create(ctx context.Context, room models.Room) (string, error)
	// GetByID returns (nil, nil) when the room is missing or soft-deleted so
	// callers can distinguish "not found" from a store failure.
	GetByID(ctx context.Context, roomID string) (*models.Room, error)
	GetNamesByIDs(ctx context.Context, roomIDs []string) (map[string]string, error)
	List(ctx context.Context) ([]models.Room, error)
	SoftDelete(ctx context.Context, roomID string) error
}

type mongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo constructs a new MongoDB RoomRepository.
func NewMongoRoomRepo() RoomRepository {
	return &mongoRoomRepo{
		coll: database.DB().Collection("rooms"),
	}
}

func (r *mongoRoomRepo) Create(ctx context.Context, room models.Room) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		return "", fmt.Errorf("failed to insert room: %w", err)
	}
	return room.ID, nil
}

func (r *mongoRoomRepo) GetByID(ctx context.Context, roomID string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var room models.Room
	err := r.coll.FindOne(ctx, bson.M{"id": roomID, "deleted": false}).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	return &room, nil
}

// GetNamesByIDs batch-fetches room display names for message enrichment.
func (r *mongoRoomRepo) GetNamesByIDs(ctx context.Context, roomIDs []string) (map[string]string, error) {
	if len(roomIDs) == 0 {
		return map[string]string{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1, "name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": roomIDs}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room names: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding room names: %w", err)
	}

	names := make(map[string]string, len(rooms))
	for _, room := range rooms {
		names[room.ID] = room.Name
	}
	return names, nil
}

func (r *mongoRoomRepo) List(ctx context.Context) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"deleted": false})
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}

func (r *mongoRoomRepo) SoftDelete(ctx context.Context, roomID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": roomID, "deleted": false},
		bson.M{"$set": bson.M{"deleted": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to soft-delete room: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
