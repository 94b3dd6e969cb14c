package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/giavix1302/be-gym-management-system-sub000/handlers"
	"github.com/giavix1302/be-gym-management-system-sub000/middleware"
)

// RegisterAuthRoutes registers staff sign-in/out endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signin", hb.SignInHandler)

		api.Use(middleware.StaffAuthMiddleware(hb.StaffRepo))
		api.POST("/signout", hb.SignOutHandler)
	}
}

// RegisterClassRoutes registers class and class-session endpoints. Reads are
// public; every write runs behind staff auth and through the conflict scan.
func RegisterClassRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/classes")
	{
		api.GET("", hb.ListClassesHandler)
		api.GET("/:classID", hb.GetClassHandler)
		api.GET("/:classID/sessions", hb.ListClassSessionsHandler)

		protected := api.Group("")
		protected.Use(middleware.StaffAuthMiddleware(hb.StaffRepo))
		protected.POST("", hb.CreateClassHandler)
		protected.PATCH("/:classID", hb.UpdateClassHandler)
		protected.DELETE("/:classID", hb.DeleteClassHandler)
	}

	sessions := r.Group("/api/sessions")
	{
		sessions.Use(middleware.StaffAuthMiddleware(hb.StaffRepo))
		sessions.PUT("/:sessionID", hb.UpdateSessionHandler)
	}
}

// RegisterRoomRoutes registers room management endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.GET("", hb.ListRoomsHandler)
		api.GET("/:roomID", hb.GetRoomHandler)

		protected := api.Group("")
		protected.Use(middleware.StaffAuthMiddleware(hb.StaffRepo))
		protected.POST("", hb.CreateRoomHandler)
		protected.DELETE("/:roomID", hb.DeleteRoomHandler)
	}
}

// RegisterTrainerRoutes registers trainer and personal-schedule endpoints.
func RegisterTrainerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/trainers")
	{
		api.GET("", hb.ListTrainersHandler)
		api.GET("/:trainerID", hb.GetTrainerHandler)
		api.GET("/:trainerID/schedule", hb.ListScheduleHandler)

		protected := api.Group("")
		protected.Use(middleware.StaffAuthMiddleware(hb.StaffRepo))
		protected.POST("", hb.CreateTrainerHandler)
		protected.DELETE("/:trainerID", hb.DeleteTrainerHandler)
		protected.POST("/schedule", hb.CreateScheduleHandler)
		protected.DELETE("/:trainerID/schedule/:scheduleID", hb.DeleteScheduleHandler)
	}

	schedules := r.Group("/api/schedules")
	{
		schedules.POST("/:scheduleID/book", hb.BookScheduleHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterClassRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterTrainerRoutes(r, hb)
	RegisterHealthRoute(r)
}
