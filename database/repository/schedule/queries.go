// File: database/repository/schedule/queries.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/giavix1302/be-gym-management-system-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// scheduleWithBookings is the aggregation shape before the linked booking is
// collapsed onto the slot.
type scheduleWithBookings struct {
	models.TrainerSchedule `bson:",inline"`
	Bookings               []models.ScheduleBooking `bson:"bookings"`
}

// FindByTrainersInRange returns every schedule slot for the given trainers
// whose [startTime, endTime) intersects [start, end), each carrying its
// linked booking (if any) via a single $lookup; slots and bookings are
// never fetched one by one.
func (r *mongoScheduleRepo) FindByTrainersInRange(ctx context.Context, trainerIDs []string, start, end time.Time) ([]models.TrainerSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"trainerId": bson.M{"$in": trainerIDs},
			"startTime": bson.M{"$lt": end},
			"endTime":   bson.M{"$gt": start},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "schedule_bookings",
			"localField":   "id",
			"foreignField": "scheduleId",
			"as":           "bookings",
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trainer schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []scheduleWithBookings
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding trainer schedules: %w", err)
	}

	slots := make([]models.TrainerSchedule, 0, len(rows))
	for _, row := range rows {
		slot := row.TrainerSchedule
		for i := range row.Bookings {
			if row.Bookings[i].Status != models.BookingStatusCancelled {
				slot.Booking = &row.Bookings[i]
				break
			}
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func (r *mongoScheduleRepo) ListByTrainer(ctx context.Context, trainerID string, from, to time.Time) ([]models.TrainerSchedule, error) {
	return r.FindByTrainersInRange(ctx, []string{trainerID}, from, to)
}
