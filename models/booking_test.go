package models

import (
	"testing"
	"time"
)

func TestBookingInputValidate(t *testing.T) {
	in := BookingInput{
		RoomID:      "room-1",
		GuestID:     "guest-1",
		CheckIn:     "2026-09-10",
		CheckOut:    "2026-09-12",
		TotalAmount: 240,
	}
	b, err := in.Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if b.Status != BookingConfirmed {
		t.Errorf("expected default status confirmed, got %q", b.Status)
	}
	if b.PaymentStatus != PaymentPending {
		t.Errorf("expected default payment status pending, got %q", b.PaymentStatus)
	}
	wantIn := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	if !b.CheckIn.Equal(wantIn) {
		t.Errorf("checkIn = %v, want %v", b.CheckIn, wantIn)
	}
}

func TestBookingActive(t *testing.T) {
	cases := map[string]bool{
		BookingConfirmed:  true,
		BookingCheckedIn:  true,
		BookingCheckedOut: false,
		BookingCanceled:   false,
	}
	for status, want := range cases {
		b := Booking{Status: status}
		if got := b.Active(); got != want {
			t.Errorf("Active(%q) = %v, want %v", status, got, want)
		}
	}
}

func TestBookingUpdateApplyTo(t *testing.T) {
	b := Booking{
		ID: "b1", RoomID: "room-1", GuestID: "guest-1",
		CheckIn:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Status:   BookingConfirmed, PaymentStatus: PaymentPending, TotalAmount: 240,
	}

	status := BookingCheckedIn
	if err := (BookingUpdate{Status: &status}).ApplyTo(&b); err != nil {
		t.Fatalf("ApplyTo failed: %v", err)
	}
	if b.Status != BookingCheckedIn {
		t.Errorf("status not applied: %q", b.Status)
	}
	if b.RoomID != "room-1" || b.TotalAmount != 240 {
		t.Errorf("untouched fields changed: %+v", b)
	}

	badDate := "sometime"
	if err := (BookingUpdate{CheckIn: &badDate}).ApplyTo(&b); err == nil {
		t.Errorf("expected error for unparseable checkIn")
	}
	empty := ""
	if err := (BookingUpdate{RoomID: &empty}).ApplyTo(&b); err == nil {
		t.Errorf("expected error for empty roomId on merged result")
	}
}
