package models

import "time"

// Staff is a back-office account allowed to manage classes, rooms and
// trainers. Authentication follows the token-hash scheme: the issued JWT is
// hashed and stored so a single active session exists per account.
type Staff struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	FullName     string    `bson:"fullName" json:"fullName"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
