package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
	classService "github.com/giavix1302/be-gym-management-system-sub000/services/class"
)

// ClassHandler exposes the class write path: create, update and delete all
// run through the conflict engine before touching the store.
type ClassHandler struct {
	Service classService.ClassService
}

func NewClassHandler(svc classService.ClassService) *ClassHandler {
	return &ClassHandler{Service: svc}
}

func (h *ClassHandler) CreateClassHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid class creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	class, report, err := h.Service.CreateClass(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if report != nil && report.HasConflict {
		respondConflict(c, report)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"class": class})
}

func (h *ClassHandler) GetClassHandler(c *gin.Context) {
	classID := c.Param("classID")
	class, err := h.Service.GetClass(c.Request.Context(), classID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"class": class})
}

func (h *ClassHandler) ListClassesHandler(c *gin.Context) {
	classes, err := h.Service.ListClasses(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"classes": classes})
}

func (h *ClassHandler) UpdateClassHandler(c *gin.Context) {
	logger := getLogger(c)
	classID := c.Param("classID")

	var req models.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid class update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	class, report, err := h.Service.UpdateClass(c.Request.Context(), classID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if report != nil && report.HasConflict {
		respondConflict(c, report)
		return
	}

	c.JSON(http.StatusOK, gin.H{"class": class})
}

func (h *ClassHandler) DeleteClassHandler(c *gin.Context) {
	classID := c.Param("classID")
	if err := h.Service.DeleteClass(c.Request.Context(), classID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class deleted"})
}
