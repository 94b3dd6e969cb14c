package handlers

import (
	"github.com/gin-gonic/gin"

	staffRepo "github.com/giavix1302/be-gym-management-system-sub000/database/repository/staff"
)

// HandlerBundle aggregates every handler the routes package wires, plus the
// staff repository the auth middleware queries.
type HandlerBundle struct {
	StaffRepo staffRepo.StaffRepository

	// Auth endpoints.
	SignInHandler  gin.HandlerFunc
	SignOutHandler gin.HandlerFunc

	// Class endpoints.
	CreateClassHandler       gin.HandlerFunc
	GetClassHandler          gin.HandlerFunc
	ListClassesHandler       gin.HandlerFunc
	UpdateClassHandler       gin.HandlerFunc
	DeleteClassHandler       gin.HandlerFunc
	ListClassSessionsHandler gin.HandlerFunc
	UpdateSessionHandler     gin.HandlerFunc

	// Room endpoints.
	CreateRoomHandler gin.HandlerFunc
	GetRoomHandler    gin.HandlerFunc
	ListRoomsHandler  gin.HandlerFunc
	DeleteRoomHandler gin.HandlerFunc

	// Trainer and schedule endpoints.
	CreateTrainerHandler  gin.HandlerFunc
	GetTrainerHandler     gin.HandlerFunc
	ListTrainersHandler   gin.HandlerFunc
	DeleteTrainerHandler  gin.HandlerFunc
	CreateScheduleHandler gin.HandlerFunc
	ListScheduleHandler   gin.HandlerFunc
	DeleteScheduleHandler gin.HandlerFunc
	BookScheduleHandler   gin.HandlerFunc
}
