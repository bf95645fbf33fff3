// File: handlers/settings.go
package handlers

import (
	"net/http"

	"hotelify/models"
	"hotelify/services/settings"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the hotel configuration over HTTP.
type SettingsHandler struct {
	Service settings.SettingsService
}

func NewSettingsHandler(svc settings.SettingsService) *SettingsHandler {
	return &SettingsHandler{Service: svc}
}

// GetSettings handles GET /api/settings, seeding defaults on first access.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	setting, err := h.Service.GetOrCreate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching settings", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, setting)
}

// UpdateSettings handles PUT /api/settings.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var input models.Setting
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "error": err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating settings", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
