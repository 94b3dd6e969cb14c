// File: database/repository/session/interface.go
package sessionRepo

import (
	"context"
	"time"

	"github.com/giavix1302/be-gym-management-system-sub000/database"
	"github.com/giavix1302/be-gym-management-system-sub000/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SessionRepository interface {
	CreateMany(ctx context.Context, sessions []models.ClassSession) ([]string, error)
	GetByID(ctx context.Context, sessionID string) (*models.ClassSession, error)
	Update(ctx context.Context, session *models.ClassSession) error
	ListByClass(ctx context.Context, classID string) ([]models.ClassSession, error)
	FindByRoomInRange(ctx context.Context, roomID string, start, end time.Time) ([]models.ClassSession, error)
	FindByTrainersInRange(ctx context.Context, trainerIDs []string, start, end time.Time) ([]models.ClassSession, error)
	SoftDeleteByClass(ctx context.Context, classID string) error
	PurgeDeletedByClass(ctx context.Context, classID string) (int64, error)
}

type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo constructs a new MongoDB SessionRepository.
func NewMongoSessionRepo() SessionRepository {
	return &mongoSessionRepo{
		coll: database.DB().Collection("class_sessions"),
	}
}
