// File: services/booking/interface.go
package booking

import (
	"context"
	"time"

	"hotelify/database"
	bookingRepo "hotelify/database/repository/booking"
	guestRepo "hotelify/database/repository/guest"
	roomRepo "hotelify/database/repository/room"
	"hotelify/models"
)

// BookingService owns the booking lifecycle: create/update/delete run as one
// atomic unit spanning the booking, its room and its guest, and the read
// side joins the three entities for API responses. Callers never orchestrate
// the cross-entity writes themselves.
type BookingService interface {
	// Create validates the payload, checks room/guest existence and date
	// overlap, then applies the booking plus room and guest cascade
	// atomically. Returns the created booking joined with room and guest.
	Create(ctx context.Context, in models.BookingInput) (*models.BookingView, error)
	// Update applies a partial update and the resulting room/guest cascade
	// atomically. Returns the updated booking joined with room and guest.
	Update(ctx context.Context, id string, upd models.BookingUpdate) (*models.BookingView, error)
	// Delete removes the booking, reverting its room when the booking was
	// active. Returns a snapshot of the deleted booking.
	Delete(ctx context.Context, id string) (*models.Booking, error)
	// List retrieves bookings matching the filter, newest first.
	List(ctx context.Context, filter models.BookingFilter) ([]models.BookingView, error)
	// GetByID retrieves one booking joined with its room and guest.
	GetByID(ctx context.Context, id string) (*models.BookingView, error)
}

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Rooms    roomRepo.RoomRepository
	Guests   guestRepo.GuestRepository
	Tx       database.TxRunner

	// TxTimeout bounds each transaction; zero means DefaultTxTimeout.
	TxTimeout time.Duration
}

// DefaultTxTimeout bounds a booking transaction when no timeout is
// configured.
const DefaultTxTimeout = 10 * time.Second

func (s *DefaultBookingService) txTimeout() time.Duration {
	if s.TxTimeout > 0 {
		return s.TxTimeout
	}
	return DefaultTxTimeout
}
