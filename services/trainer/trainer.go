// File: services/trainer/trainer.go
package trainer

import (
	"context"
	"fmt"
	"time"

	scheduleRepo "github.com/giavix1302/be-gym-management-system-sub000/database/repository/schedule"
	trainerRepo "github.com/giavix1302/be-gym-management-system-sub000/database/repository/trainer"
	"github.com/giavix1302/be-gym-management-system-sub000/models"
	"github.com/giavix1302/be-gym-management-system-sub000/services/scheduling"
)

// TrainerService manages trainers and their personal schedule slots, the
// calendar side the conflict engine reads.
type TrainerService interface {
	CreateTrainer(ctx context.Context, req models.CreateTrainerRequest) (*models.Trainer, error)
	GetTrainer(ctx context.Context, trainerID string) (*models.Trainer, error)
	ListTrainers(ctx context.Context) ([]models.Trainer, error)
	DeleteTrainer(ctx context.Context, trainerID string) error

	CreateSchedule(ctx context.Context, req models.CreateScheduleRequest) (*models.TrainerSchedule, error)
	ListSchedule(ctx context.Context, trainerID string, from, to time.Time) ([]models.TrainerSchedule, error)
	DeleteSchedule(ctx context.Context, trainerID, scheduleID string) error
	BookSchedule(ctx context.Context, scheduleID string, req models.BookScheduleRequest) (*models.ScheduleBooking, error)
}

type DefaultTrainerService struct {
	Repo         trainerRepo.TrainerRepository
	ScheduleRepo scheduleRepo.ScheduleRepository
}

func (s *DefaultTrainerService) CreateTrainer(ctx context.Context, req models.CreateTrainerRequest) (*models.Trainer, error) {
	trainer := models.Trainer{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Specialties: req.Specialties,
	}
	id, err := s.Repo.Create(ctx, trainer)
	if err != nil {
		return nil, fmt.Errorf("failed to create trainer: %w", err)
	}
	trainer.ID = id
	return &trainer, nil
}

func (s *DefaultTrainerService) GetTrainer(ctx context.Context, trainerID string) (*models.Trainer, error) {
	trainer, err := s.Repo.GetByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, scheduling.NotFoundError{Code: "trainer_not_found", ID: trainerID}
	}
	return trainer, nil
}

func (s *DefaultTrainerService) ListTrainers(ctx context.Context) ([]models.Trainer, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultTrainerService) DeleteTrainer(ctx context.Context, trainerID string) error {
	if _, err := s.GetTrainer(ctx, trainerID); err != nil {
		return err
	}
	return s.Repo.SoftDelete(ctx, trainerID)
}

// CreateSchedule adds a slot to the trainer's calendar, rejecting slots that
// overlap the trainer's existing ones. Class-session collisions are not
// checked here: the slot only becomes a conflict when someone later tries to
// schedule the trainer into a class over it.
func (s *DefaultTrainerService) CreateSchedule(ctx context.Context, req models.CreateScheduleRequest) (*models.TrainerSchedule, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, scheduling.ValidationError{Reason: "schedule start must be before end"}
	}
	if scheduling.SpansMidnight(req.StartTime, req.EndTime) {
		return nil, scheduling.ValidationError{Reason: "schedule slot must not cross midnight"}
	}
	if _, err := s.GetTrainer(ctx, req.TrainerID); err != nil {
		return nil, err
	}

	existing, err := s.ScheduleRepo.FindByTrainersInRange(ctx, []string{req.TrainerID}, req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing slots: %w", err)
	}
	if len(existing) > 0 {
		return nil, scheduling.ValidationError{Reason: "slot overlaps an existing schedule slot"}
	}

	slot := models.TrainerSchedule{
		TrainerID: req.TrainerID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	id, err := s.ScheduleRepo.Create(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule slot: %w", err)
	}
	slot.ID = id
	return &slot, nil
}

func (s *DefaultTrainerService) ListSchedule(ctx context.Context, trainerID string, from, to time.Time) ([]models.TrainerSchedule, error) {
	if _, err := s.GetTrainer(ctx, trainerID); err != nil {
		return nil, err
	}
	return s.ScheduleRepo.ListByTrainer(ctx, trainerID, from, to)
}

func (s *DefaultTrainerService) DeleteSchedule(ctx context.Context, trainerID, scheduleID string) error {
	return s.ScheduleRepo.DeleteByID(ctx, trainerID, scheduleID)
}

// BookSchedule places a client booking on an available slot.
func (s *DefaultTrainerService) BookSchedule(ctx context.Context, scheduleID string, req models.BookScheduleRequest) (*models.ScheduleBooking, error) {
	slot, err := s.ScheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule slot: %w", err)
	}
	if slot == nil {
		return nil, scheduling.NotFoundError{Code: "schedule_not_found", ID: scheduleID}
	}

	// Re-read through the range query so the linked booking is attached.
	slots, err := s.ScheduleRepo.FindByTrainersInRange(ctx, []string{slot.TrainerID}, slot.StartTime, slot.EndTime)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot availability: %w", err)
	}
	for _, existing := range slots {
		if existing.ID == scheduleID && existing.Booking.Active() {
			return nil, scheduling.ValidationError{Reason: "slot is already booked"}
		}
	}

	booking := models.ScheduleBooking{
		ScheduleID: scheduleID,
		UserID:     req.UserID,
		UserName:   req.UserName,
		Status:     models.BookingStatusConfirmed,
	}
	id, err := s.ScheduleRepo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	booking.ID = id
	return &booking, nil
}
