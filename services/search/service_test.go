package search

import (
	"context"
	"testing"

	roomRepo "hotelify/database/repository/room"
	"hotelify/models"
)

type fakeRoomSearch struct{ rooms []models.Room }

func (f *fakeRoomSearch) GetByID(_ context.Context, _ string) (*models.Room, error) { return nil, nil }
func (f *fakeRoomSearch) List(_ context.Context, _ roomRepo.RoomFilter) ([]models.Room, error) {
	return nil, nil
}
func (f *fakeRoomSearch) Create(_ context.Context, _ *models.Room) error { return nil }
func (f *fakeRoomSearch) Update(_ context.Context, _ *models.Room) error { return nil }
func (f *fakeRoomSearch) Delete(_ context.Context, _ string) error       { return nil }
func (f *fakeRoomSearch) SetStatus(_ context.Context, _, _ string) error { return nil }
func (f *fakeRoomSearch) Search(_ context.Context, _ string, _ int64) ([]models.Room, error) {
	return f.rooms, nil
}

type fakeGuestSearch struct{ guests []models.Guest }

func (f *fakeGuestSearch) GetByID(_ context.Context, _ string) (*models.Guest, error) {
	return nil, nil
}
func (f *fakeGuestSearch) List(_ context.Context) ([]models.Guest, error)    { return nil, nil }
func (f *fakeGuestSearch) Create(_ context.Context, _ *models.Guest) error   { return nil }
func (f *fakeGuestSearch) Update(_ context.Context, _ *models.Guest) error   { return nil }
func (f *fakeGuestSearch) Delete(_ context.Context, _ string) error          { return nil }
func (f *fakeGuestSearch) IncrementVisits(_ context.Context, _ string) error { return nil }
func (f *fakeGuestSearch) Search(_ context.Context, _ string, _ int64) ([]models.Guest, error) {
	return f.guests, nil
}

type fakeBookingSearch struct{ rows []models.BookingSearchRow }

func (f *fakeBookingSearch) GetByID(_ context.Context, _ string) (*models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingSearch) List(_ context.Context, _ models.BookingFilter) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingSearch) Insert(_ context.Context, _ *models.Booking) error { return nil }
func (f *fakeBookingSearch) Update(_ context.Context, _ *models.Booking) error { return nil }
func (f *fakeBookingSearch) Delete(_ context.Context, _ string) error          { return nil }
func (f *fakeBookingSearch) FindActiveByRoom(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingSearch) SearchJoined(_ context.Context, _ string, _ int64) ([]models.BookingSearchRow, error) {
	return f.rows, nil
}

func TestGlobalSearchFormatsHits(t *testing.T) {
	svc := &DefaultSearchService{
		Rooms: &fakeRoomSearch{rooms: []models.Room{
			{ID: "r1", Number: "101", Type: models.RoomDeluxe},
		}},
		Guests: &fakeGuestSearch{guests: []models.Guest{
			{ID: "g1", Name: "Amina Yusuf", Email: "amina@example.com"},
		}},
		Bookings: &fakeBookingSearch{rows: []models.BookingSearchRow{
			{ID: "booking-12345678", RoomNumber: "101", GuestName: "Amina Yusuf"},
		}},
	}

	results, err := svc.Global(context.Background(), "101")
	if err != nil {
		t.Fatalf("Global failed: %v", err)
	}

	if len(results.Rooms) != 1 {
		t.Fatalf("expected one room hit, got %d", len(results.Rooms))
	}
	if results.Rooms[0].Title != "Room 101" || results.Rooms[0].URL != "/rooms?id=r1" {
		t.Errorf("room hit mismatch: %+v", results.Rooms[0])
	}

	if len(results.Guests) != 1 {
		t.Fatalf("expected one guest hit, got %d", len(results.Guests))
	}
	if results.Guests[0].Title != "Amina Yusuf" || results.Guests[0].URL != "/guests/edit/g1" {
		t.Errorf("guest hit mismatch: %+v", results.Guests[0])
	}

	if len(results.Bookings) != 1 {
		t.Fatalf("expected one booking hit, got %d", len(results.Bookings))
	}
	if results.Bookings[0].Title != "Booking #5678" {
		t.Errorf("booking title mismatch: %q", results.Bookings[0].Title)
	}
	if results.Bookings[0].Subtitle != "Amina Yusuf - Room 101" {
		t.Errorf("booking subtitle mismatch: %q", results.Bookings[0].Subtitle)
	}
}

func TestGlobalSearchEmpty(t *testing.T) {
	svc := &DefaultSearchService{
		Rooms:    &fakeRoomSearch{},
		Guests:   &fakeGuestSearch{},
		Bookings: &fakeBookingSearch{},
	}

	results, err := svc.Global(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("Global failed: %v", err)
	}
	if results.Rooms == nil || results.Guests == nil || results.Bookings == nil {
		t.Errorf("expected empty slices, not nil: %+v", results)
	}
	if len(results.Rooms)+len(results.Guests)+len(results.Bookings) != 0 {
		t.Errorf("expected no hits: %+v", results)
	}
}
