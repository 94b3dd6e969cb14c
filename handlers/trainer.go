package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
	trainerService "github.com/giavix1302/be-gym-management-system-sub000/services/trainer"
)

type TrainerHandler struct {
	Service trainerService.TrainerService
}

func NewTrainerHandler(svc trainerService.TrainerService) *TrainerHandler {
	return &TrainerHandler{Service: svc}
}

func (h *TrainerHandler) CreateTrainerHandler(c *gin.Context) {
	var req models.CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Error("Invalid trainer creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	trainer, err := h.Service.CreateTrainer(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"trainer": trainer})
}

func (h *TrainerHandler) GetTrainerHandler(c *gin.Context) {
	trainer, err := h.Service.GetTrainer(c.Request.Context(), c.Param("trainerID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainer": trainer})
}

func (h *TrainerHandler) ListTrainersHandler(c *gin.Context) {
	trainers, err := h.Service.ListTrainers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainers": trainers})
}

func (h *TrainerHandler) DeleteTrainerHandler(c *gin.Context) {
	if err := h.Service.DeleteTrainer(c.Request.Context(), c.Param("trainerID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trainer deleted"})
}

func (h *TrainerHandler) CreateScheduleHandler(c *gin.Context) {
	var req models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Error("Invalid schedule creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	slot, err := h.Service.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"schedule": slot})
}

// ListScheduleHandler returns a trainer's slots in a range; from/to are
// RFC3339 query params defaulting to the next 30 days.
func (h *TrainerHandler) ListScheduleHandler(c *gin.Context) {
	trainerID := c.Param("trainerID")

	from := time.Now()
	to := from.AddDate(0, 0, 30)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' timestamp"})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' timestamp"})
			return
		}
		to = parsed
	}

	slots, err := h.Service.ListSchedule(c.Request.Context(), trainerID, from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": slots})
}

func (h *TrainerHandler) DeleteScheduleHandler(c *gin.Context) {
	if err := h.Service.DeleteSchedule(c.Request.Context(), c.Param("trainerID"), c.Param("scheduleID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule slot deleted"})
}

func (h *TrainerHandler) BookScheduleHandler(c *gin.Context) {
	var req models.BookScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	booking, err := h.Service.BookSchedule(c.Request.Context(), c.Param("scheduleID"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}
