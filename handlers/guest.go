// File: handlers/guest.go
package handlers

import (
	"net/http"
	"strings"

	"hotelify/models"
	"hotelify/services/guest"

	"github.com/gin-gonic/gin"
)

// GuestHandler exposes guest CRUD over HTTP.
type GuestHandler struct {
	Service guest.GuestService
}

func NewGuestHandler(svc guest.GuestService) *GuestHandler {
	return &GuestHandler{Service: svc}
}

func (h *GuestHandler) CreateGuest(c *gin.Context) {
	var input models.GuestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "error": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		if strings.Contains(err.Error(), "phone number already exists") {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Phone number already exists. Please use a different number."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *GuestHandler) GetGuests(c *gin.Context) {
	guests, err := h.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, guests)
}

func (h *GuestHandler) GetGuestByID(c *gin.Context) {
	g, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, g)
}

func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	var upd models.GuestUpdate
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

func (h *GuestHandler) DeleteGuest(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Guest deleted successfully"})
}
