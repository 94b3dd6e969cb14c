package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
	roomService "github.com/giavix1302/be-gym-management-system-sub000/services/room"
)

type RoomHandler struct {
	Service roomService.RoomService
}

func NewRoomHandler(svc roomService.RoomService) *RoomHandler {
	return &RoomHandler{Service: svc}
}

func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	var req models.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Error("Invalid room creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	room, err := h.Service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"room": room})
}

func (h *RoomHandler) GetRoomHandler(c *gin.Context) {
	room, err := h.Service.GetRoom(c.Request.Context(), c.Param("roomID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	rooms, err := h.Service.ListRooms(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

func (h *RoomHandler) DeleteRoomHandler(c *gin.Context) {
	if err := h.Service.DeleteRoom(c.Request.Context(), c.Param("roomID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}
