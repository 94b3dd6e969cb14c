// File: database/repository/staff/staff_mongo.go
package staffRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/giavix1302/be-gym-management-system-sub000/database"
	"github.com/giavix1302/be-gym-management-system-sub000/models"
)

type StaffRepository interface {
	Create(ctx context.Context, staff models.Staff) (string, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	GetByTokenHash(tokenHash string) (*models.Staff, error)
	SetTokenHash(ctx context.Context, staffID, tokenHash string) error
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	return &mongoStaffRepo{
		coll: database.DB().Collection("staff"),
	}
}

func (r *mongoStaffRepo) Create(ctx context.Context, staff models.Staff) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if staff.ID == "" {
		staff.ID = uuid.New().String()
	}
	if staff.CreatedAt.IsZero() {
		staff.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, staff); err != nil {
		return "", fmt.Errorf("failed to insert staff: %w", err)
	}
	return staff.ID, nil
}

func (r *mongoStaffRepo) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var staff models.Staff
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&staff)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff by email: %w", err)
	}
	return &staff, nil
}

func (r *mongoStaffRepo) GetByTokenHash(tokenHash string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var staff models.Staff
	err := r.coll.FindOne(ctx, bson.M{"tokenHash": tokenHash}).Decode(&staff)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff by token hash: %w", err)
	}
	return &staff, nil
}

func (r *mongoStaffRepo) SetTokenHash(ctx context.Context, staffID, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": staffID},
		bson.M{"$set": bson.M{"tokenHash": tokenHash}},
	)
	if err != nil {
		return fmt.Errorf("failed to set staff token hash: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
