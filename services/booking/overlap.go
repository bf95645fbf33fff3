// File: services/booking/overlap.go
package booking

import (
	"context"
	"time"
)

// intervalsOverlap reports whether [aStart, aEnd] and [bStart, bEnd]
// intersect. Bounds are inclusive: a booking checking out the day another
// checks in counts as an overlap.
func intervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// hasOverlap reports whether any active booking on the room intersects the
// requested interval. Only confirmed and checked-in bookings block a room;
// checked-out and canceled ones do not.
func (s *DefaultBookingService) hasOverlap(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	active, err := s.Bookings.FindActiveByRoom(ctx, roomID)
	if err != nil {
		return false, err
	}
	for i := range active {
		if intervalsOverlap(active[i].CheckIn, active[i].CheckOut, checkIn, checkOut) {
			return true, nil
		}
	}
	return false, nil
}
