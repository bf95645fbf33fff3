// File: handlers/room.go
package handlers

import (
	"net/http"

	roomRepo "hotelify/database/repository/room"
	"hotelify/models"
	"hotelify/services/room"

	"github.com/gin-gonic/gin"
)

// RoomHandler exposes room CRUD over HTTP.
type RoomHandler struct {
	Service room.RoomService
}

func NewRoomHandler(svc room.RoomService) *RoomHandler {
	return &RoomHandler{Service: svc}
}

func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var input models.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "error": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *RoomHandler) GetRooms(c *gin.Context) {
	filter := roomRepo.RoomFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
	}
	rooms, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) GetRoomByID(c *gin.Context) {
	r, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	var upd models.RoomUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "error": err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
