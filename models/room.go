package models

import (
	"fmt"
	"time"
)

// Room statuses. Status is the single source of truth for occupancy and is
// only changed by the booking service while a booking is in flight.
const (
	RoomAvailable   = "available"
	RoomOccupied    = "occupied"
	RoomMaintenance = "maintenance"
	RoomReserved    = "reserved"
)

// Room types offered by the hotel.
const (
	RoomStandard  = "Standard"
	RoomDeluxe    = "Deluxe"
	RoomSuite     = "Suite"
	RoomExecutive = "Executive"
)

// Room represents a bookable hotel room.
type Room struct {
	ID        string    `bson:"id" json:"id"`
	Number    string    `bson:"number" json:"number"`
	Type      string    `bson:"type" json:"type"`
	Capacity  int       `bson:"capacity" json:"capacity"`
	Price     float64   `bson:"price" json:"price"`
	Status    string    `bson:"status" json:"status"`
	Features  []string  `bson:"features" json:"features"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RoomInput carries a create/update payload for a room.
type RoomInput struct {
	Number   string   `json:"number"`
	Type     string   `json:"type"`
	Capacity int      `json:"capacity"`
	Price    float64  `json:"price"`
	Status   string   `json:"status"`
	Features []string `json:"features"`
	Image    string   `json:"image"`
}

func validRoomType(t string) bool {
	switch t {
	case RoomStandard, RoomDeluxe, RoomSuite, RoomExecutive:
		return true
	}
	return false
}

func validRoomStatus(s string) bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance, RoomReserved:
		return true
	}
	return false
}

// Validate checks the full payload and returns a Room ready to persist.
func (in RoomInput) Validate() (*Room, error) {
	if in.Number == "" {
		return nil, fmt.Errorf("room number is required")
	}
	if !validRoomType(in.Type) {
		return nil, fmt.Errorf("invalid room type %q", in.Type)
	}
	if in.Capacity < 1 || in.Capacity > 10 {
		return nil, fmt.Errorf("capacity must be between 1 and 10")
	}
	if in.Price <= 0 {
		return nil, fmt.Errorf("price must be greater than 0")
	}
	status := in.Status
	if status == "" {
		status = RoomAvailable
	}
	if !validRoomStatus(status) {
		return nil, fmt.Errorf("invalid room status %q", status)
	}
	features := in.Features
	if features == nil {
		features = []string{}
	}
	return &Room{
		Number:   in.Number,
		Type:     in.Type,
		Capacity: in.Capacity,
		Price:    in.Price,
		Status:   status,
		Features: features,
		Image:    in.Image,
	}, nil
}

// RoomUpdate carries a partial update; nil fields are left untouched.
type RoomUpdate struct {
	Number   *string   `json:"number"`
	Type     *string   `json:"type"`
	Capacity *int      `json:"capacity"`
	Price    *float64  `json:"price"`
	Status   *string   `json:"status"`
	Features *[]string `json:"features"`
	Image    *string   `json:"image"`
}

// ApplyTo merges the update onto an existing room and re-validates the result.
func (u RoomUpdate) ApplyTo(r *Room) error {
	if u.Number != nil {
		r.Number = *u.Number
	}
	if u.Type != nil {
		r.Type = *u.Type
	}
	if u.Capacity != nil {
		r.Capacity = *u.Capacity
	}
	if u.Price != nil {
		r.Price = *u.Price
	}
	if u.Status != nil {
		r.Status = *u.Status
	}
	if u.Features != nil {
		r.Features = *u.Features
	}
	if u.Image != nil {
		r.Image = *u.Image
	}
	if r.Number == "" {
		return fmt.Errorf("room number is required")
	}
	if !validRoomType(r.Type) {
		return fmt.Errorf("invalid room type %q", r.Type)
	}
	if r.Capacity < 1 || r.Capacity > 10 {
		return fmt.Errorf("capacity must be between 1 and 10")
	}
	if r.Price <= 0 {
		return fmt.Errorf("price must be greater than 0")
	}
	if !validRoomStatus(r.Status) {
		return fmt.Errorf("invalid room status %q", r.Status)
	}
	return nil
}
