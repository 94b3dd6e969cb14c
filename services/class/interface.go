// File: services/class/interface.go
package class

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	classRepo "github.com/giavix1302/be-gym-management-system-sub000/database/repository/class"
	sessionRepo "github.com/giavix1302/be-gym-management-system-sub000/database/repository/session"
	trainerRepo "github.com/giavix1302/be-gym-management-system-sub000/database/repository/trainer"
	"github.com/giavix1302/be-gym-management-system-sub000/models"
	"github.com/giavix1302/be-gym-management-system-sub000/services/scheduling"
)

// ClassService owns the class and class-session write paths. Every write is
// preceded by a conflict scan; a populated report aborts the write and is
// returned to the caller instead of an error.
type ClassService interface {
	CreateClass(ctx context.Context, req models.CreateClassRequest) (*models.Class, *models.ConflictReport, error)
	GetClass(ctx context.Context, classID string) (*models.Class, error)
	ListClasses(ctx context.Context) ([]models.Class, error)
	UpdateClass(ctx context.Context, classID string, req models.UpdateClassRequest) (*models.Class, *models.ConflictReport, error)
	DeleteClass(ctx context.Context, classID string) error

	ListSessions(ctx context.Context, classID string) ([]models.ClassSession, error)
	UpdateSession(ctx context.Context, sessionID string, req models.UpdateSessionRequest) (*models.ClassSession, *models.ConflictReport, error)
}

// DefaultClassService is the production implementation.
type DefaultClassService struct {
	ClassRepo   classRepo.ClassRepository
	SessionRepo sessionRepo.SessionRepository
	TrainerRepo trainerRepo.TrainerRepository
	Engine      scheduling.ConflictEngine

	// PurgeClient schedules the delayed hard-delete of a removed class's
	// sessions; nil disables purging (tests).
	PurgeClient *asynq.Client
	PurgeDelay  time.Duration
}
