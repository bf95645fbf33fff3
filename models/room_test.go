package models

import "testing"

func TestRoomInputValidate(t *testing.T) {
	in := RoomInput{Number: "101", Type: RoomStandard, Capacity: 2, Price: 120}
	room, err := in.Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if room.Status != RoomAvailable {
		t.Errorf("expected default status available, got %q", room.Status)
	}
	if room.Features == nil {
		t.Errorf("expected features initialized to empty slice")
	}

	bad := []RoomInput{
		{Type: RoomStandard, Capacity: 2, Price: 120},
		{Number: "101", Type: "Penthouse", Capacity: 2, Price: 120},
		{Number: "101", Type: RoomStandard, Capacity: 0, Price: 120},
		{Number: "101", Type: RoomStandard, Capacity: 11, Price: 120},
		{Number: "101", Type: RoomStandard, Capacity: 2, Price: 0},
		{Number: "101", Type: RoomStandard, Capacity: 2, Price: 120, Status: "broken"},
	}
	for i, in := range bad {
		if _, err := in.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestRoomUpdateApplyTo(t *testing.T) {
	room := Room{ID: "r1", Number: "101", Type: RoomStandard, Capacity: 2, Price: 120, Status: RoomAvailable}

	price := 150.0
	status := RoomMaintenance
	if err := (RoomUpdate{Price: &price, Status: &status}).ApplyTo(&room); err != nil {
		t.Fatalf("ApplyTo failed: %v", err)
	}
	if room.Price != 150 || room.Status != RoomMaintenance {
		t.Errorf("update not applied: %+v", room)
	}
	if room.Number != "101" || room.Capacity != 2 {
		t.Errorf("untouched fields changed: %+v", room)
	}

	badType := "Penthouse"
	if err := (RoomUpdate{Type: &badType}).ApplyTo(&room); err == nil {
		t.Errorf("expected error for invalid type on merged result")
	}
}
