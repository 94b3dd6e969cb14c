package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
	"github.com/giavix1302/be-gym-management-system-sub000/services/scheduling"
)

// respondServiceError maps the engine's error taxonomy onto HTTP statuses:
// malformed input 400, missing room/class 404, trainer-not-assigned 422, and
// everything else is a retryable store failure.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case scheduling.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": err.Error()})
	case scheduling.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found", "message": err.Error()})
	case scheduling.IsIntegrity(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Integrity violation", "message": err.Error()})
	default:
		getLogger(c).Error("service call failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error", "message": "Please try again later."})
	}
}

// respondConflict renders a scheduling conflict as a 409 with the full
// structured report so clients can show which room/trainer collides where.
func respondConflict(c *gin.Context, report *models.ConflictReport) {
	c.JSON(http.StatusConflict, gin.H{
		"error":    "Scheduling conflict",
		"message":  "The proposed time collides with existing commitments.",
		"conflict": report,
	})
}
