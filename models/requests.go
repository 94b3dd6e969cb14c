package models

import "time"

// Request DTOs bound at the API boundary. Binding tags reject malformed
// payloads before the scheduling engine ever sees them; the engine itself
// only accepts already-validated value types.

// RecurrenceEntryRequest is one weekly slot in a class schedule payload.
type RecurrenceEntryRequest struct {
	DayOfWeek   int    `json:"dayOfWeek" binding:"required,min=1,max=7"`
	StartMinute int    `json:"startMinute" binding:"min=0,max=1440"`
	EndMinute   int    `json:"endMinute" binding:"required,min=1,max=1440"`
	RoomID      string `json:"roomId" binding:"required"`
}

// CreateClassRequest defines the payload for creating a recurring class.
// Dates use the "2006-01-02" layout; EndDate is exclusive.
type CreateClassRequest struct {
	Name        string                   `json:"name" binding:"required"`
	Description string                   `json:"description"`
	TrainerIDs  []string                 `json:"trainerIds" binding:"required,min=1"`
	Capacity    int                      `json:"capacity" binding:"required,min=1"`
	StartDate   string                   `json:"startDate" binding:"required"`
	EndDate     string                   `json:"endDate" binding:"required"`
	Schedule    []RecurrenceEntryRequest `json:"schedule" binding:"required,min=1,dive"`
}

// UpdateClassRequest updates class metadata. Schedule changes go through the
// same conflict scan as creation.
type UpdateClassRequest struct {
	Name        *string                  `json:"name"`
	Description *string                  `json:"description"`
	TrainerIDs  []string                 `json:"trainerIds"`
	Capacity    *int                     `json:"capacity"`
	Schedule    []RecurrenceEntryRequest `json:"schedule"`
}

// UpdateSessionRequest reschedules one concrete class session.
type UpdateSessionRequest struct {
	StartTime  time.Time `json:"startTime" binding:"required"`
	EndTime    time.Time `json:"endTime" binding:"required"`
	RoomID     string    `json:"roomId"`
	TrainerIDs []string  `json:"trainerIds"`
}

// CreateRoomRequest defines the payload for registering a room.
type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

// CreateTrainerRequest defines the payload for registering a trainer.
type CreateTrainerRequest struct {
	FullName    string   `json:"fullName" binding:"required"`
	Email       string   `json:"email" binding:"omitempty,email"`
	Phone       string   `json:"phone"`
	Specialties []string `json:"specialties"`
}

// CreateScheduleRequest adds a slot to a trainer's personal calendar.
type CreateScheduleRequest struct {
	TrainerID string    `json:"trainerId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

// BookScheduleRequest places a client booking on an existing schedule slot.
type BookScheduleRequest struct {
	UserID   string `json:"userId" binding:"required"`
	UserName string `json:"userName"`
}

// StaffSignInRequest authenticates a staff account.
type StaffSignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
