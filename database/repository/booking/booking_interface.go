// File: database/repository/booking/booking_interface.go
package bookingRepo

import (
	"context"

	"hotelify/models"
)

// BookingRepository defines methods for booking data access. The booking
// transaction spans insert/update/delete plus room and guest writes, so
// every method takes a context through which a mongo session flows.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// List retrieves bookings matching the filter, newest first.
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	// Insert stores a new booking record.
	Insert(ctx context.Context, booking *models.Booking) error
	// Update replaces an existing booking record.
	Update(ctx context.Context, booking *models.Booking) error
	// Delete removes a booking record by its ID.
	Delete(ctx context.Context, id string) error
	// FindActiveByRoom retrieves confirmed and checked-in bookings for a room.
	FindActiveByRoom(ctx context.Context, roomID string) ([]models.Booking, error)
	// SearchJoined finds bookings whose room number or guest name matches the
	// query, joined against the rooms and guests collections.
	SearchJoined(ctx context.Context, query string, limit int64) ([]models.BookingSearchRow, error)
}
