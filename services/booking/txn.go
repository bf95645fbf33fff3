// File: services/booking/txn.go
package booking

import (
	"context"
	"errors"
	"fmt"

	"hotelify/models"
	"hotelify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// runTx executes fn as one atomic unit with the configured deadline and
// normalizes the failure: typed booking errors pass through, a blown
// deadline becomes TxTimeout, anything else becomes TxAbort.
func (s *DefaultBookingService) runTx(ctx context.Context, fn func(ctx context.Context) error) error {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout())
	defer cancel()

	err := s.Tx.WithTransaction(txCtx, fn)
	if err == nil {
		return nil
	}
	var be *Error
	if errors.As(err, &be) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewTxTimeoutError("booking transaction exceeded its deadline")
	}
	return NewTxAbortError(err.Error())
}

// Create validates the payload and pre-checks, then applies the booking
// insert plus the room and guest cascade as one atomic unit.
func (s *DefaultBookingService) Create(ctx context.Context, in models.BookingInput) (*models.BookingView, error) {
	logger := utils.GetLogger()

	booking, err := in.Validate()
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	// Advisory pre-checks; a race between check and transaction start is
	// possible, in which case the store aborts one side at commit.
	if _, _, err := s.validateEntities(ctx, booking.RoomID, booking.GuestID); err != nil {
		return nil, err
	}
	overlap, err := s.hasOverlap(ctx, booking.RoomID, booking.CheckIn, booking.CheckOut)
	if err != nil {
		return nil, NewTxAbortError(err.Error())
	}
	if overlap {
		return nil, NewOverlapError("Room is already booked for these dates")
	}

	booking.ID = uuid.New().String()

	err = s.runTx(ctx, func(ctx context.Context) error {
		if err := s.Bookings.Insert(ctx, booking); err != nil {
			return err
		}
		if err := s.Rooms.SetStatus(ctx, booking.RoomID, models.RoomReserved); err != nil {
			return err
		}
		return s.Guests.IncrementVisits(ctx, booking.GuestID)
	})
	if err != nil {
		logger.Warn("booking create aborted",
			zap.String("roomId", booking.RoomID),
			zap.String("guestId", booking.GuestID),
			zap.Error(err))
		return nil, err
	}

	logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("roomId", booking.RoomID))
	return s.GetByID(ctx, booking.ID)
}

// Update loads the booking inside the transaction, applies the partial
// update and the room/guest cascade, and commits or aborts as one unit.
func (s *DefaultBookingService) Update(ctx context.Context, id string, upd models.BookingUpdate) (*models.BookingView, error) {
	logger := utils.GetLogger()

	var updated *models.Booking
	err := s.runTx(ctx, func(ctx context.Context) error {
		existing, err := s.Bookings.GetByID(ctx, id)
		if err != nil {
			return NewNotFoundError("Booking not found")
		}

		oldRoomID := existing.RoomID
		if err := upd.ApplyTo(existing); err != nil {
			return NewValidationError(err.Error())
		}
		if err := s.Bookings.Update(ctx, existing); err != nil {
			return err
		}

		// Room cascade: a moved booking frees its old room; the current room
		// follows the resulting booking status.
		if oldRoomID != existing.RoomID {
			if err := s.Rooms.SetStatus(ctx, oldRoomID, models.RoomAvailable); err != nil {
				return err
			}
		}
		roomStatus := models.RoomAvailable
		if existing.Active() {
			roomStatus = models.RoomReserved
		}
		if err := s.Rooms.SetStatus(ctx, existing.RoomID, roomStatus); err != nil {
			return err
		}

		guest, err := s.Guests.GetByID(ctx, existing.GuestID)
		if err != nil {
			return fmt.Errorf("guest cascade: %w", err)
		}
		if existing.Status == models.BookingCheckedOut {
			guest.Visits++
			guest.Activities = append(guest.Activities, models.StayRecord{
				CheckedIn:  existing.CheckIn,
				CheckedOut: existing.CheckOut,
			})
		}
		// The guest record is written even when nothing changed on it,
		// matching the historical cascade.
		if err := s.Guests.Update(ctx, guest); err != nil {
			return err
		}

		updated = existing
		return nil
	})
	if err != nil {
		logger.Warn("booking update aborted", zap.String("bookingId", id), zap.Error(err))
		return nil, err
	}

	logger.Info("booking updated",
		zap.String("bookingId", updated.ID),
		zap.String("status", updated.Status))
	return s.GetByID(ctx, updated.ID)
}

// Delete removes the booking inside one atomic unit, reverting its room to
// available when the booking was still active. Returns the deleted snapshot.
func (s *DefaultBookingService) Delete(ctx context.Context, id string) (*models.Booking, error) {
	logger := utils.GetLogger()

	var snapshot *models.Booking
	err := s.runTx(ctx, func(ctx context.Context) error {
		existing, err := s.Bookings.GetByID(ctx, id)
		if err != nil {
			return NewNotFoundError("Booking not found")
		}
		if err := s.Bookings.Delete(ctx, id); err != nil {
			return err
		}
		if existing.Active() {
			if err := s.Rooms.SetStatus(ctx, existing.RoomID, models.RoomAvailable); err != nil {
				return err
			}
		}
		snapshot = existing
		return nil
	})
	if err != nil {
		logger.Warn("booking delete aborted", zap.String("bookingId", id), zap.Error(err))
		return nil, err
	}

	logger.Info("booking deleted", zap.String("bookingId", id))
	return snapshot, nil
}
