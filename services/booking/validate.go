// File: services/booking/validate.go
package booking

import (
	"context"
	"fmt"

	"hotelify/models"
)

// validateEntities confirms the referenced room and guest exist and the room
// is currently available. It runs before the overlap check and before the
// transaction opens; it is advisory pre-validation, not itself transactional.
// On success the loaded room and guest are returned for reuse.
func (s *DefaultBookingService) validateEntities(ctx context.Context, roomID, guestID string) (*models.Room, *models.Guest, error) {
	room, err := s.Rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, nil, NewNotFoundError("Room not found")
	}

	guest, err := s.Guests.GetByID(ctx, guestID)
	if err != nil {
		return nil, nil, NewNotFoundError("Guest not found")
	}

	if room.Status != models.RoomAvailable {
		return nil, nil, NewRoomUnavailableError(fmt.Sprintf("Room %s is not available", room.Number))
	}

	return room, guest, nil
}
