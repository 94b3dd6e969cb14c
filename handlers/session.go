package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
)

func (h *ClassHandler) ListClassSessionsHandler(c *gin.Context) {
	classID := c.Param("classID")
	sessions, err := h.Service.ListSessions(c.Request.Context(), classID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// UpdateSessionHandler reschedules one concrete session. A 409 carries the
// conflict detail; re-saving the session unchanged never conflicts with
// itself.
func (h *ClassHandler) UpdateSessionHandler(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	var req models.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid session update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	session, report, err := h.Service.UpdateSession(c.Request.Context(), sessionID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if report != nil && report.HasConflict {
		respondConflict(c, report)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}
