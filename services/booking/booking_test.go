package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelify/models"
)

func newTestService(t *testing.T) (*DefaultBookingService, *fakeBookingRepo, *fakeRoomRepo, *fakeGuestRepo) {
	t.Helper()
	bookings := newFakeBookingRepo()
	rooms := newFakeRoomRepo()
	guests := newFakeGuestRepo()

	rooms.byID["room-1"] = models.Room{
		ID: "room-1", Number: "101", Type: models.RoomStandard,
		Capacity: 2, Price: 120, Status: models.RoomAvailable,
	}
	rooms.byID["room-2"] = models.Room{
		ID: "room-2", Number: "102", Type: models.RoomDeluxe,
		Capacity: 2, Price: 180, Status: models.RoomAvailable,
	}
	guests.byID["guest-1"] = models.Guest{
		ID: "guest-1", Name: "Amina Yusuf", Email: "amina@example.com",
		Phone: "+254700111222", Nationality: "Kenyan", Visits: 0,
	}

	svc := &DefaultBookingService{
		Bookings: bookings,
		Rooms:    rooms,
		Guests:   guests,
		Tx:       &fakeTxRunner{bookings: bookings, rooms: rooms, guests: guests},
	}
	return svc, bookings, rooms, guests
}

func validInput() models.BookingInput {
	return models.BookingInput{
		RoomID:      "room-1",
		GuestID:     "guest-1",
		CheckIn:     "2026-09-10",
		CheckOut:    "2026-09-12",
		TotalAmount: 240,
	}
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestCreateBooking(t *testing.T) {
	svc, bookings, rooms, guests := newTestService(t)

	view, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if view.ID == "" {
		t.Fatalf("expected generated booking id")
	}
	if view.Status != models.BookingConfirmed {
		t.Errorf("expected default status confirmed, got %q", view.Status)
	}
	if view.PaymentStatus != models.PaymentPending {
		t.Errorf("expected default payment status pending, got %q", view.PaymentStatus)
	}
	if view.Room.Number != "101" {
		t.Errorf("expected joined room number 101, got %q", view.Room.Number)
	}
	if view.Guest.Name != "Amina Yusuf" {
		t.Errorf("expected joined guest name, got %q", view.Guest.Name)
	}

	if _, ok := bookings.byID[view.ID]; !ok {
		t.Errorf("booking was not persisted")
	}
	if got := rooms.byID["room-1"].Status; got != models.RoomReserved {
		t.Errorf("expected room reserved after create, got %q", got)
	}
	if got := guests.byID["guest-1"].Visits; got != 1 {
		t.Errorf("expected guest visits 1 after create, got %d", got)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	cases := []struct {
		name string
		in   models.BookingInput
	}{
		{"missing room", models.BookingInput{GuestID: "guest-1", CheckIn: "2026-09-10", CheckOut: "2026-09-12", TotalAmount: 100}},
		{"missing guest", models.BookingInput{RoomID: "room-1", CheckIn: "2026-09-10", CheckOut: "2026-09-12", TotalAmount: 100}},
		{"bad date", models.BookingInput{RoomID: "room-1", GuestID: "guest-1", CheckIn: "next tuesday", CheckOut: "2026-09-12", TotalAmount: 100}},
		{"bad status", models.BookingInput{RoomID: "room-1", GuestID: "guest-1", CheckIn: "2026-09-10", CheckOut: "2026-09-12", Status: "pending", TotalAmount: 100}},
		{"zero amount", models.BookingInput{RoomID: "room-1", GuestID: "guest-1", CheckIn: "2026-09-10", CheckOut: "2026-09-12"}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(context.Background(), tc.in); CodeOf(err) != CodeValidation {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestCreateBookingMissingEntities(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	in := validInput()
	in.RoomID = "no-such-room"
	if _, err := svc.Create(context.Background(), in); CodeOf(err) != CodeNotFound {
		t.Errorf("expected notFound for missing room, got %v", err)
	}

	in = validInput()
	in.GuestID = "no-such-guest"
	if _, err := svc.Create(context.Background(), in); CodeOf(err) != CodeNotFound {
		t.Errorf("expected notFound for missing guest, got %v", err)
	}
}

func TestCreateBookingRoomUnavailable(t *testing.T) {
	svc, _, rooms, _ := newTestService(t)

	room := rooms.byID["room-1"]
	room.Status = models.RoomMaintenance
	rooms.byID["room-1"] = room

	if _, err := svc.Create(context.Background(), validInput()); CodeOf(err) != CodeRoomUnavailable {
		t.Errorf("expected roomUnavailable, got %v", err)
	}
}

func TestCreateBookingOverlap(t *testing.T) {
	svc, _, rooms, _ := newTestService(t)

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("seed Create failed: %v", err)
	}
	// Second request needs the room lookup to pass the availability check so
	// the overlap path is what rejects it.
	room := rooms.byID["room-1"]
	room.Status = models.RoomAvailable
	rooms.byID["room-1"] = room

	in := validInput()
	in.CheckIn = "2026-09-11"
	in.CheckOut = "2026-09-14"
	if _, err := svc.Create(context.Background(), in); CodeOf(err) != CodeOverlap {
		t.Errorf("expected overlap, got %v", err)
	}

	// Shared boundary day counts as an overlap.
	in.CheckIn = "2026-09-12"
	in.CheckOut = "2026-09-15"
	if _, err := svc.Create(context.Background(), in); CodeOf(err) != CodeOverlap {
		t.Errorf("expected overlap on shared boundary day, got %v", err)
	}

	// A disjoint interval on the same room goes through.
	in.CheckIn = "2026-09-13"
	in.CheckOut = "2026-09-15"
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Errorf("expected disjoint interval to succeed, got %v", err)
	}
}

func TestCreateBookingCanceledDoesNotBlock(t *testing.T) {
	svc, bookings, _, _ := newTestService(t)

	canceled, _ := validInput().Validate()
	canceled.ID = "old-1"
	canceled.Status = models.BookingCanceled
	bookings.byID["old-1"] = *canceled

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("canceled booking should not block the room: %v", err)
	}
}

func TestCreateBookingAbortRollsBack(t *testing.T) {
	svc, bookings, rooms, guests := newTestService(t)
	guests.incrementErr = errors.New("write conflict")

	_, err := svc.Create(context.Background(), validInput())
	if CodeOf(err) != CodeTxAbort {
		t.Fatalf("expected txAbort, got %v", err)
	}
	if len(bookings.byID) != 0 {
		t.Errorf("aborted create left a booking behind")
	}
	if got := rooms.byID["room-1"].Status; got != models.RoomAvailable {
		t.Errorf("aborted create left room status %q", got)
	}
	if got := guests.byID["guest-1"].Visits; got != 0 {
		t.Errorf("aborted create left guest visits %d", got)
	}
}

func TestCreateBookingTimeout(t *testing.T) {
	svc, bookings, rooms, guests := newTestService(t)
	svc.Tx = &fakeTxRunner{bookings: bookings, rooms: rooms, guests: guests, hang: true}
	svc.TxTimeout = 10 * time.Millisecond

	if _, err := svc.Create(context.Background(), validInput()); CodeOf(err) != CodeTxTimeout {
		t.Errorf("expected txTimeout, got %v", err)
	}
}

func TestUpdateBookingPartial(t *testing.T) {
	svc, _, rooms, _ := newTestService(t)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	view, err := svc.Update(context.Background(), created.ID, models.BookingUpdate{
		PaymentStatus: strPtr(models.PaymentPaid),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if view.PaymentStatus != models.PaymentPaid {
		t.Errorf("expected payment status paid, got %q", view.PaymentStatus)
	}
	if view.Status != models.BookingConfirmed {
		t.Errorf("untouched status changed: %q", view.Status)
	}
	if !view.CheckIn.Equal(created.CheckIn) || !view.CheckOut.Equal(created.CheckOut) {
		t.Errorf("untouched dates changed")
	}
	if got := rooms.byID["room-1"].Status; got != models.RoomReserved {
		t.Errorf("active booking should keep room reserved, got %q", got)
	}
}

func TestUpdateBookingCancelFreesRoom(t *testing.T) {
	svc, _, rooms, _ := newTestService(t)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Update(context.Background(), created.ID, models.BookingUpdate{
		Status: strPtr(models.BookingCanceled),
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got := rooms.byID["room-1"].Status; got != models.RoomAvailable {
		t.Errorf("canceled booking should free the room, got %q", got)
	}
}

// A check-out increments visits on top of the increment the create already
// applied, so one full stay counts twice on the guest profile.
func TestUpdateCheckOutIncrementsVisitsAgain(t *testing.T) {
	svc, _, rooms, guests := newTestService(t)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if got := guests.byID["guest-1"].Visits; got != 1 {
		t.Fatalf("expected visits 1 after create, got %d", got)
	}

	if _, err := svc.Update(context.Background(), created.ID, models.BookingUpdate{
		Status: strPtr(models.BookingCheckedOut),
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	guest := guests.byID["guest-1"]
	if guest.Visits != 2 {
		t.Errorf("expected visits 2 after check-out, got %d", guest.Visits)
	}
	if len(guest.Activities) != 1 {
		t.Fatalf("expected one stay record, got %d", len(guest.Activities))
	}
	if !guest.Activities[0].CheckedIn.Equal(created.CheckIn) {
		t.Errorf("stay record check-in mismatch")
	}
	if got := rooms.byID["room-1"].Status; got != models.RoomAvailable {
		t.Errorf("checked-out booking should free the room, got %q", got)
	}
}

func TestUpdateBookingMoveRoom(t *testing.T) {
	svc, _, rooms, _ := newTestService(t)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	view, err := svc.Update(context.Background(), created.ID, models.BookingUpdate{
		RoomID: strPtr("room-2"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if view.RoomID != "room-2" {
		t.Errorf("expected booking moved to room-2, got %q", view.RoomID)
	}
	if got := rooms.byID["room-1"].Status; got != models.RoomAvailable {
		t.Errorf("old room should be freed, got %q", got)
	}
	if got := rooms.byID["room-2"].Status; got != models.RoomReserved {
		t.Errorf("new room should be reserved, got %q", got)
	}
}

func TestUpdateBookingNotFound(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Update(context.Background(), "missing", models.BookingUpdate{
		Status: strPtr(models.BookingCanceled),
	})
	if CodeOf(err) != CodeNotFound {
		t.Errorf("expected notFound, got %v", err)
	}
}

func TestUpdateBookingInvalid(t *testing.T) {
	svc, bookings, _, _ := newTestService(t)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = svc.Update(context.Background(), created.ID, models.BookingUpdate{
		Status: strPtr("nonsense"),
	})
	if CodeOf(err) != CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := bookings.byID[created.ID].Status; got != models.BookingConfirmed {
		t.Errorf("failed update changed stored status to %q", got)
	}
}

func TestUpdateBookingGuestCascadeAborts(t *testing.T) {
	svc, bookings, _, guests := newTestService(t)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	delete(guests.byID, "guest-1")

	_, err = svc.Update(context.Background(), created.ID, models.BookingUpdate{
		Status: strPtr(models.BookingCheckedOut),
	})
	if CodeOf(err) != CodeTxAbort {
		t.Fatalf("expected txAbort when the guest is gone, got %v", err)
	}
	if got := bookings.byID[created.ID].Status; got != models.BookingConfirmed {
		t.Errorf("aborted update left booking status %q", got)
	}
}

func TestUpdateBookingAlwaysWritesGuest(t *testing.T) {
	svc, _, _, guests := newTestService(t)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	guests.updateCalls = 0

	if _, err := svc.Update(context.Background(), created.ID, models.BookingUpdate{
		TotalAmount: f64Ptr(300),
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if guests.updateCalls != 1 {
		t.Errorf("expected guest write on every update, got %d calls", guests.updateCalls)
	}
	if got := guests.byID["guest-1"].Visits; got != 1 {
		t.Errorf("non-checkout update changed visits to %d", got)
	}
}

func TestDeleteBooking(t *testing.T) {
	svc, bookings, rooms, _ := newTestService(t)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	snapshot, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if snapshot.ID != created.ID {
		t.Errorf("snapshot id mismatch: %q", snapshot.ID)
	}
	if _, ok := bookings.byID[created.ID]; ok {
		t.Errorf("booking still present after delete")
	}
	if got := rooms.byID["room-1"].Status; got != models.RoomAvailable {
		t.Errorf("deleting an active booking should free the room, got %q", got)
	}
}

func TestDeleteCheckedOutBookingLeavesRoom(t *testing.T) {
	svc, _, rooms, _ := newTestService(t)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Update(context.Background(), created.ID, models.BookingUpdate{
		Status: strPtr(models.BookingCheckedOut),
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// Another guest takes the room before the old record is purged.
	room := rooms.byID["room-1"]
	room.Status = models.RoomOccupied
	rooms.byID["room-1"] = room

	if _, err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := rooms.byID["room-1"].Status; got != models.RoomOccupied {
		t.Errorf("deleting an inactive booking must not touch the room, got %q", got)
	}
}

func TestDeleteBookingNotFound(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	if _, err := svc.Delete(context.Background(), "missing"); CodeOf(err) != CodeNotFound {
		t.Errorf("expected notFound, got %v", err)
	}
}

func TestDeleteBookingAbortRollsBack(t *testing.T) {
	svc, bookings, rooms, _ := newTestService(t)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	rooms.setStatusErr = errors.New("write conflict")

	if _, err := svc.Delete(context.Background(), created.ID); CodeOf(err) != CodeTxAbort {
		t.Fatalf("expected txAbort, got %v", err)
	}
	if _, ok := bookings.byID[created.ID]; !ok {
		t.Errorf("aborted delete removed the booking")
	}
}
