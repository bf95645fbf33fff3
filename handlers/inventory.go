// File: handlers/inventory.go
package handlers

import (
	"net/http"

	"hotelify/models"
	"hotelify/services/inventory"

	"github.com/gin-gonic/gin"
)

// InventoryHandler exposes inventory CRUD over HTTP.
type InventoryHandler struct {
	Service inventory.InventoryService
}

func NewInventoryHandler(svc inventory.InventoryService) *InventoryHandler {
	return &InventoryHandler{Service: svc}
}

func (h *InventoryHandler) CreateInventoryItem(c *gin.Context) {
	var input models.InventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "error": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating inventory item", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *InventoryHandler) GetInventoryItems(c *gin.Context) {
	items, err := h.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching inventory items", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) GetInventoryItemByID(c *gin.Context) {
	item, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Inventory item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) UpdateInventoryItem(c *gin.Context) {
	var input models.InventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "error": err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating inventory item", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *InventoryHandler) DeleteInventoryItem(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Inventory item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item removed"})
}
