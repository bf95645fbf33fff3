// File: services/booking/query.go
package booking

import (
	"context"

	"hotelify/models"
)

// view joins one booking with its room and guest summaries. Missing
// references degrade to empty summaries rather than failing the read.
func (s *DefaultBookingService) view(ctx context.Context, b *models.Booking) *models.BookingView {
	v := &models.BookingView{
		ID:            b.ID,
		RoomID:        b.RoomID,
		GuestID:       b.GuestID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		TotalAmount:   b.TotalAmount,
		CreateDate:    b.CreatedAt,
	}
	if room, err := s.Rooms.GetByID(ctx, b.RoomID); err == nil {
		v.Room = models.RoomSummary{Number: room.Number, Type: room.Type, Price: room.Price}
	}
	if guest, err := s.Guests.GetByID(ctx, b.GuestID); err == nil {
		v.Guest = models.GuestSummary{Name: guest.Name, Email: guest.Email, Phone: guest.Phone}
	}
	return v
}

// List retrieves bookings matching the filter, newest first, each joined
// with its room and guest.
func (s *DefaultBookingService) List(ctx context.Context, filter models.BookingFilter) ([]models.BookingView, error) {
	bookings, err := s.Bookings.List(ctx, filter)
	if err != nil {
		return nil, NewTxAbortError(err.Error())
	}

	// Resolve each room and guest once per listing.
	rooms := make(map[string]*models.Room)
	guests := make(map[string]*models.Guest)

	views := make([]models.BookingView, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		v := models.BookingView{
			ID:            b.ID,
			RoomID:        b.RoomID,
			GuestID:       b.GuestID,
			CheckIn:       b.CheckIn,
			CheckOut:      b.CheckOut,
			Status:        b.Status,
			PaymentStatus: b.PaymentStatus,
			TotalAmount:   b.TotalAmount,
			CreateDate:    b.CreatedAt,
		}
		room, ok := rooms[b.RoomID]
		if !ok {
			room, _ = s.Rooms.GetByID(ctx, b.RoomID)
			rooms[b.RoomID] = room
		}
		if room != nil {
			v.Room = models.RoomSummary{Number: room.Number, Type: room.Type, Price: room.Price}
		}
		guest, ok := guests[b.GuestID]
		if !ok {
			guest, _ = s.Guests.GetByID(ctx, b.GuestID)
			guests[b.GuestID] = guest
		}
		if guest != nil {
			v.Guest = models.GuestSummary{Name: guest.Name, Email: guest.Email, Phone: guest.Phone}
		}
		views = append(views, v)
	}
	return views, nil
}

// GetByID retrieves one booking joined with its room and guest.
func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.BookingView, error) {
	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, NewNotFoundError("Booking not found")
	}
	return s.view(ctx, b), nil
}
