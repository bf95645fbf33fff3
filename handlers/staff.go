// File: handlers/staff.go
package handlers

import (
	"net/http"

	"hotelify/models"
	"hotelify/services/staff"

	"github.com/gin-gonic/gin"
)

// StaffHandler exposes staff CRUD over HTTP.
type StaffHandler struct {
	Service staff.StaffService
}

func NewStaffHandler(svc staff.StaffService) *StaffHandler {
	return &StaffHandler{Service: svc}
}

func (h *StaffHandler) CreateStaffMember(c *gin.Context) {
	var input models.StaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "error": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating staff member", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *StaffHandler) GetStaffMembers(c *gin.Context) {
	members, err := h.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching staff members", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *StaffHandler) GetStaffMemberByID(c *gin.Context) {
	member, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Staff member not found"})
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *StaffHandler) UpdateStaffMember(c *gin.Context) {
	var input models.StaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "error": err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating staff member", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *StaffHandler) DeleteStaffMember(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Staff member not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member removed"})
}
