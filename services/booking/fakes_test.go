package booking

import (
	"context"
	"fmt"
	"time"

	roomRepo "hotelify/database/repository/room"
	"hotelify/models"
)

// In-memory repositories backing the service tests. The fake transaction
// runner snapshots their state before running the work function and rolls
// back on error, mirroring the store's abort semantics.

type fakeBookingRepo struct {
	byID map[string]models.Booking

	insertErr error
	updateErr error
	deleteErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: make(map[string]models.Booking)}
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("booking with id %s not found", id)
	}
	return &b, nil
}

func (r *fakeBookingRepo) List(_ context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.byID {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.GuestID != "" && b.GuestID != filter.GuestID {
			continue
		}
		if filter.RoomID != "" && b.RoomID != filter.RoomID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) Insert(_ context.Context, booking *models.Booking) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	booking.CreatedAt = time.Now().UTC()
	booking.UpdatedAt = booking.CreatedAt
	r.byID[booking.ID] = *booking
	return nil
}

func (r *fakeBookingRepo) Update(_ context.Context, booking *models.Booking) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[booking.ID]; !ok {
		return fmt.Errorf("booking with id %s not found", booking.ID)
	}
	booking.UpdatedAt = time.Now().UTC()
	r.byID[booking.ID] = *booking
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("booking with id %s not found", id)
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeBookingRepo) FindActiveByRoom(_ context.Context, roomID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.byID {
		if b.RoomID == roomID && b.Active() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) SearchJoined(_ context.Context, _ string, _ int64) ([]models.BookingSearchRow, error) {
	return nil, nil
}

type fakeRoomRepo struct {
	byID map[string]models.Room

	setStatusErr error
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{byID: make(map[string]models.Room)}
}

func (r *fakeRoomRepo) GetByID(_ context.Context, id string) (*models.Room, error) {
	room, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("room with id %s not found", id)
	}
	return &room, nil
}

func (r *fakeRoomRepo) List(_ context.Context, _ roomRepo.RoomFilter) ([]models.Room, error) {
	var out []models.Room
	for _, room := range r.byID {
		out = append(out, room)
	}
	return out, nil
}

func (r *fakeRoomRepo) Create(_ context.Context, room *models.Room) error {
	r.byID[room.ID] = *room
	return nil
}

func (r *fakeRoomRepo) Update(_ context.Context, room *models.Room) error {
	r.byID[room.ID] = *room
	return nil
}

func (r *fakeRoomRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeRoomRepo) SetStatus(_ context.Context, id, status string) error {
	if r.setStatusErr != nil {
		return r.setStatusErr
	}
	room, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("room with id %s not found", id)
	}
	room.Status = status
	r.byID[id] = room
	return nil
}

func (r *fakeRoomRepo) Search(_ context.Context, _ string, _ int64) ([]models.Room, error) {
	return nil, nil
}

type fakeGuestRepo struct {
	byID map[string]models.Guest

	updateErr    error
	incrementErr error
	updateCalls  int
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{byID: make(map[string]models.Guest)}
}

func (r *fakeGuestRepo) GetByID(_ context.Context, id string) (*models.Guest, error) {
	g, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("guest with id %s not found", id)
	}
	return &g, nil
}

func (r *fakeGuestRepo) List(_ context.Context) ([]models.Guest, error) {
	var out []models.Guest
	for _, g := range r.byID {
		out = append(out, g)
	}
	return out, nil
}

func (r *fakeGuestRepo) Create(_ context.Context, guest *models.Guest) error {
	r.byID[guest.ID] = *guest
	return nil
}

func (r *fakeGuestRepo) Update(_ context.Context, guest *models.Guest) error {
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[guest.ID]; !ok {
		return fmt.Errorf("guest with id %s not found", guest.ID)
	}
	r.byID[guest.ID] = *guest
	return nil
}

func (r *fakeGuestRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeGuestRepo) IncrementVisits(_ context.Context, id string) error {
	if r.incrementErr != nil {
		return r.incrementErr
	}
	g, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("guest with id %s not found", id)
	}
	g.Visits++
	r.byID[id] = g
	return nil
}

func (r *fakeGuestRepo) Search(_ context.Context, _ string, _ int64) ([]models.Guest, error) {
	return nil, nil
}

// fakeTxRunner runs the work function against the in-memory repos,
// snapshotting their maps up front and restoring them when the function
// fails. With hang set it blocks until the deadline fires instead.
type fakeTxRunner struct {
	bookings *fakeBookingRepo
	rooms    *fakeRoomRepo
	guests   *fakeGuestRepo

	hang bool
}

func (t *fakeTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if t.hang {
		<-ctx.Done()
		return ctx.Err()
	}

	bookings := copyMap(t.bookings.byID)
	rooms := copyMap(t.rooms.byID)
	guests := copyMap(t.guests.byID)

	if err := fn(ctx); err != nil {
		t.bookings.byID = bookings
		t.rooms.byID = rooms
		t.guests.byID = guests
		return err
	}
	return nil
}

func copyMap[V any](src map[string]V) map[string]V {
	dst := make(map[string]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
