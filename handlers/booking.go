// File: handlers/booking.go
package handlers

import (
	"net/http"

	"hotelify/models"
	"hotelify/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle over HTTP. All multi-entity
// writes go through the booking service; the handler never touches room or
// guest state itself.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "error": err.Error()})
		return
	}

	view, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(booking.StatusFor(err), gin.H{"message": "Error creating booking", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, view)
}

// GetBookings handles GET /api/bookings with optional filters.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	filter := models.BookingFilter{
		Status:  c.Query("status"),
		GuestID: c.Query("guestId"),
		RoomID:  c.Query("roomId"),
	}
	if v := c.Query("checkIn"); v != "" {
		t, err := models.ParseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid checkIn", "error": err.Error()})
			return
		}
		filter.CheckIn = &t
	}
	if v := c.Query("checkOut"); v != "" {
		t, err := models.ParseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid checkOut", "error": err.Error()})
			return
		}
		filter.CheckOut = &t
	}

	views, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching bookings", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, views)
}

// GetBookingByID handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	view, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(booking.StatusFor(err), gin.H{"message": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateBooking handles PATCH /api/bookings/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var upd models.BookingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "error": err.Error()})
		return
	}

	view, err := h.Service.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		c.JSON(booking.StatusFor(err), gin.H{"message": "Error updating booking", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// DeleteBooking handles DELETE /api/bookings/:id. Responds with the deleted
// snapshot for caller confirmation.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	snapshot, err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(booking.StatusFor(err), gin.H{"message": "Error deleting booking", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully", "booking": snapshot})
}
