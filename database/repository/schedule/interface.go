// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"time"

	"github.com/giavix1302/be-gym-management-system-sub000/database"
	"github.com/giavix1302/be-gym-management-system-sub000/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ScheduleRepository interface {
	Create(ctx context.Context, slot models.TrainerSchedule) (string, error)
	GetByID(ctx context.Context, scheduleID string) (*models.TrainerSchedule, error)
	DeleteByID(ctx context.Context, trainerID, scheduleID string) error
	ListByTrainer(ctx context.Context, trainerID string, from, to time.Time) ([]models.TrainerSchedule, error)
	FindByTrainersInRange(ctx context.Context, trainerIDs []string, start, end time.Time) ([]models.TrainerSchedule, error)
	CreateBooking(ctx context.Context, booking models.ScheduleBooking) (string, error)
}

type mongoScheduleRepo struct {
	coll        *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository over the
// trainer_schedules and schedule_bookings collections.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.DB()
	return &mongoScheduleRepo{
		coll:        db.Collection("trainer_schedules"),
		bookingColl: db.Collection("schedule_bookings"),
	}
}
