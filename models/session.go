package models

import "time"

// ClassSession is one concrete, dated occurrence of a class meeting.
// Sessions are created in bulk when a class is scheduled and soft-deleted
// together with their class.
type ClassSession struct {
	ID         string    `bson:"id" json:"id"`
	ClassID    string    `bson:"classId" json:"classId"`
	RoomID     string    `bson:"roomId" json:"roomId"`
	TrainerIDs []string  `bson:"trainerIds" json:"trainerIds"`
	StartTime  time.Time `bson:"startTime" json:"startTime"`
	EndTime    time.Time `bson:"endTime" json:"endTime"`
	Deleted    bool      `bson:"deleted" json:"-"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
