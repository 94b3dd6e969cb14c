// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/giavix1302/be-gym-management-system-sub000/config"
	"github.com/giavix1302/be-gym-management-system-sub000/cron"
	"github.com/giavix1302/be-gym-management-system-sub000/database"
	classRepoPkg "github.com/giavix1302/be-gym-management-system-sub000/database/repository/class"
	roomRepoPkg "github.com/giavix1302/be-gym-management-system-sub000/database/repository/room"
	scheduleRepoPkg "github.com/giavix1302/be-gym-management-system-sub000/database/repository/schedule"
	sessionRepoPkg "github.com/giavix1302/be-gym-management-system-sub000/database/repository/session"
	staffRepoPkg "github.com/giavix1302/be-gym-management-system-sub000/database/repository/staff"
	trainerRepoPkg "github.com/giavix1302/be-gym-management-system-sub000/database/repository/trainer"
	"github.com/giavix1302/be-gym-management-system-sub000/handlers"
	"github.com/giavix1302/be-gym-management-system-sub000/middleware"
	"github.com/giavix1302/be-gym-management-system-sub000/routes"
	"github.com/giavix1302/be-gym-management-system-sub000/services/auth"
	classService "github.com/giavix1302/be-gym-management-system-sub000/services/class"
	roomService "github.com/giavix1302/be-gym-management-system-sub000/services/room"
	"github.com/giavix1302/be-gym-management-system-sub000/services/scheduling"
	trainerService "github.com/giavix1302/be-gym-management-system-sub000/services/trainer"
	"github.com/giavix1302/be-gym-management-system-sub000/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	if err := sessionRepoPkg.EnsureSessionIndexes(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure session indexes: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	classRepo := classRepoPkg.NewMongoClassRepo()
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	trainerRepo := trainerRepoPkg.NewMongoTrainerRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()

	// The conflict engine reads through the commitment store; display names
	// are cached in Redis.
	store := scheduling.NewStore(
		sessionRepo, scheduleRepo, classRepo, roomRepo, trainerRepo,
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.NameCacheTTLMin)*time.Minute,
	)
	engine := scheduling.NewEngine(store)

	// The purge worker hard-deletes retired sessions after the retention delay.
	purgeClient := cron.NewPurgeClient()
	cron.InitPurgeWorker(sessionRepo)

	// services.
	classSvc := &classService.DefaultClassService{
		ClassRepo:   classRepo,
		SessionRepo: sessionRepo,
		TrainerRepo: trainerRepo,
		Engine:      engine,
		PurgeClient: purgeClient,
		PurgeDelay:  time.Duration(config.AppConfig.SessionPurgeDelayHours) * time.Hour,
	}
	roomSvc := &roomService.DefaultRoomService{Repo: roomRepo}
	trainerSvc := &trainerService.DefaultTrainerService{
		Repo:         trainerRepo,
		ScheduleRepo: scheduleRepo,
	}
	authSvc := &auth.DefaultAuthService{Repo: staffRepo}

	classHandler := handlers.NewClassHandler(classSvc)
	roomHandler := handlers.NewRoomHandler(roomSvc)
	trainerHandler := handlers.NewTrainerHandler(trainerSvc)
	authHandler := handlers.NewAuthHandler(authSvc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StaffRepo: staffRepo,

		SignInHandler:  authHandler.SignInHandler,
		SignOutHandler: authHandler.SignOutHandler,

		CreateClassHandler:       classHandler.CreateClassHandler,
		GetClassHandler:          classHandler.GetClassHandler,
		ListClassesHandler:       classHandler.ListClassesHandler,
		UpdateClassHandler:       classHandler.UpdateClassHandler,
		DeleteClassHandler:       classHandler.DeleteClassHandler,
		ListClassSessionsHandler: classHandler.ListClassSessionsHandler,
		UpdateSessionHandler:     classHandler.UpdateSessionHandler,

		CreateRoomHandler: roomHandler.CreateRoomHandler,
		GetRoomHandler:    roomHandler.GetRoomHandler,
		ListRoomsHandler:  roomHandler.ListRoomsHandler,
		DeleteRoomHandler: roomHandler.DeleteRoomHandler,

		CreateTrainerHandler:  trainerHandler.CreateTrainerHandler,
		GetTrainerHandler:     trainerHandler.GetTrainerHandler,
		ListTrainersHandler:   trainerHandler.ListTrainersHandler,
		DeleteTrainerHandler:  trainerHandler.DeleteTrainerHandler,
		CreateScheduleHandler: trainerHandler.CreateScheduleHandler,
		ListScheduleHandler:   trainerHandler.ListScheduleHandler,
		DeleteScheduleHandler: trainerHandler.DeleteScheduleHandler,
		BookScheduleHandler:   trainerHandler.BookScheduleHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
