package models

import "time"

// Booking statuses for a trainer schedule slot.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
)

// TrainerSchedule is one slot on a trainer's personal calendar. A slot with
// no booking is available; a slot with an active booking is taken. Either way
// the trainer's time is committed for scheduling purposes.
type TrainerSchedule struct {
	ID        string    `bson:"id" json:"id"`
	TrainerID string    `bson:"trainerId" json:"trainerId"`
	StartTime time.Time `bson:"startTime" json:"startTime"`
	EndTime   time.Time `bson:"endTime" json:"endTime"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`

	// Booking is populated by a $lookup when the slot is read through the
	// schedule repository; it is stored in its own collection.
	Booking *ScheduleBooking `bson:"booking,omitempty" json:"booking,omitempty"`
}

// ScheduleBooking is a client booking placed against a trainer schedule slot.
type ScheduleBooking struct {
	ID         string    `bson:"id" json:"id"`
	ScheduleID string    `bson:"scheduleId" json:"scheduleId"`
	UserID     string    `bson:"userId" json:"userId"`
	UserName   string    `bson:"userName,omitempty" json:"userName,omitempty"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// Active reports whether the booking currently occupies the slot.
func (b *ScheduleBooking) Active() bool {
	return b != nil && b.Status != BookingStatusCancelled
}
