package models

import "time"

// Trainer is a staff member who can be assigned to classes and hold personal
// schedule slots for 1-on-1 bookings.
type Trainer struct {
	ID          string    `bson:"id" json:"id"`
	FullName    string    `bson:"fullName" json:"fullName"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Specialties []string  `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Deleted     bool      `bson:"deleted" json:"-"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
