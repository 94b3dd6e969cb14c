// File: database/repository/class/interface.go
package classRepo

import (
	"context"

	"github.com/giavix1302/be-gym-management-system-sub000/database"
	"github.com/giavix1302/be-gym-management-system-sub000/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ClassRepository interface {
	Create(ctx context.Context, class models.Class) (string, error)
	GetByID(ctx context.Context, classID string) (*models.Class, error)
	GetRefByID(ctx context.Context, classID string) (*models.ClassRef, error)
	GetRefsByIDs(ctx context.Context, classIDs []string) (map[string]models.ClassRef, error)
	Update(ctx context.Context, class *models.Class) error
	List(ctx context.Context) ([]models.Class, error)
	SoftDelete(ctx context.Context, classID string) error
}

type mongoClassRepo struct {
	coll *mongo.Collection
}

// NewMongoClassRepo constructs a new MongoDB ClassRepository.
func NewMongoClassRepo() ClassRepository {
	return &mongoClassRepo{
		coll: database.DB().Collection("classes"),
	}
}
