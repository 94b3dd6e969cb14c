package models

import "time"

// Room is a bookable physical room.
type Room struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Location  string    `bson:"location,omitempty" json:"location,omitempty"`
	Capacity  int       `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Deleted   bool      `bson:"deleted" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
