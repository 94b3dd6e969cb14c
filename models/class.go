package models

import "time"

// Class is a weekly-recurring group class. Its Schedule describes the weekly
// pattern; the concrete occurrences live in the class_sessions collection as
// ClassSession documents, one per recurrence instance inside
// [StartDate, EndDate).
type Class struct {
	ID          string            `bson:"id" json:"id"`
	Name        string            `bson:"name" json:"name"`
	Description string            `bson:"description,omitempty" json:"description,omitempty"`
	TrainerIDs  []string          `bson:"trainerIds" json:"trainerIds"`
	Capacity    int               `bson:"capacity" json:"capacity"`
	StartDate   time.Time         `bson:"startDate" json:"startDate"`
	EndDate     time.Time         `bson:"endDate" json:"endDate"`
	Schedule    []RecurrenceEntry `bson:"schedule" json:"schedule"`
	Deleted     bool              `bson:"deleted" json:"-"`
	CreatedAt   time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ClassRef is the minimal class view used for conflict-message enrichment.
type ClassRef struct {
	ID         string   `bson:"id" json:"id"`
	Name       string   `bson:"name" json:"name"`
	TrainerIDs []string `bson:"trainerIds" json:"trainerIds"`
}
