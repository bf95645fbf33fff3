package models

import (
	"fmt"
	"time"
)

// Booking statuses.
const (
	BookingConfirmed  = "confirmed"
	BookingCheckedIn  = "checked-in"
	BookingCheckedOut = "checked-out"
	BookingCanceled   = "canceled"
)

// Payment statuses.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Booking ties a guest to a room for a date interval. Bookings with status
// confirmed or checked-in are "active": they hold the room and block
// overlapping reservations.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	RoomID        string    `bson:"roomId" json:"roomId"`
	GuestID       string    `bson:"guestId" json:"guestId"`
	CheckIn       time.Time `bson:"checkIn" json:"checkIn"`
	CheckOut      time.Time `bson:"checkOut" json:"checkOut"`
	Status        string    `bson:"status" json:"status"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	TotalAmount   float64   `bson:"totalAmount" json:"totalAmount"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Active reports whether the booking currently holds its room.
func (b *Booking) Active() bool {
	return b.Status == BookingConfirmed || b.Status == BookingCheckedIn
}

func validBookingStatus(s string) bool {
	switch s {
	case BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCanceled:
		return true
	}
	return false
}

func validPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// BookingInput carries a booking creation payload. Dates arrive as ISO-8601
// strings and are parsed to UTC timestamps.
type BookingInput struct {
	RoomID        string  `json:"roomId"`
	GuestID       string  `json:"guestId"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	TotalAmount   float64 `json:"totalAmount"`
}

// Validate checks the payload and returns a Booking ready to persist.
// Status defaults to confirmed and paymentStatus to pending.
func (in BookingInput) Validate() (*Booking, error) {
	if in.RoomID == "" {
		return nil, fmt.Errorf("roomId is required")
	}
	if in.GuestID == "" {
		return nil, fmt.Errorf("guestId is required")
	}
	checkIn, err := ParseDate(in.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("checkIn: %w", err)
	}
	checkOut, err := ParseDate(in.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("checkOut: %w", err)
	}
	status := in.Status
	if status == "" {
		status = BookingConfirmed
	}
	if !validBookingStatus(status) {
		return nil, fmt.Errorf("invalid booking status %q", status)
	}
	paymentStatus := in.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = PaymentPending
	}
	if !validPaymentStatus(paymentStatus) {
		return nil, fmt.Errorf("invalid payment status %q", paymentStatus)
	}
	if in.TotalAmount <= 0 {
		return nil, fmt.Errorf("totalAmount must be greater than 0")
	}
	return &Booking{
		RoomID:        in.RoomID,
		GuestID:       in.GuestID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        status,
		PaymentStatus: paymentStatus,
		TotalAmount:   in.TotalAmount,
	}, nil
}

// BookingUpdate carries a partial booking update; nil fields are left
// untouched.
type BookingUpdate struct {
	RoomID        *string  `json:"roomId"`
	GuestID       *string  `json:"guestId"`
	CheckIn       *string  `json:"checkIn"`
	CheckOut      *string  `json:"checkOut"`
	Status        *string  `json:"status"`
	PaymentStatus *string  `json:"paymentStatus"`
	TotalAmount   *float64 `json:"totalAmount"`
}

// ApplyTo merges the update onto an existing booking and re-validates the
// merged result.
func (u BookingUpdate) ApplyTo(b *Booking) error {
	if u.RoomID != nil {
		b.RoomID = *u.RoomID
	}
	if u.GuestID != nil {
		b.GuestID = *u.GuestID
	}
	if u.CheckIn != nil {
		t, err := ParseDate(*u.CheckIn)
		if err != nil {
			return fmt.Errorf("checkIn: %w", err)
		}
		b.CheckIn = t
	}
	if u.CheckOut != nil {
		t, err := ParseDate(*u.CheckOut)
		if err != nil {
			return fmt.Errorf("checkOut: %w", err)
		}
		b.CheckOut = t
	}
	if u.Status != nil {
		b.Status = *u.Status
	}
	if u.PaymentStatus != nil {
		b.PaymentStatus = *u.PaymentStatus
	}
	if u.TotalAmount != nil {
		b.TotalAmount = *u.TotalAmount
	}
	if b.RoomID == "" {
		return fmt.Errorf("roomId is required")
	}
	if b.GuestID == "" {
		return fmt.Errorf("guestId is required")
	}
	if !validBookingStatus(b.Status) {
		return fmt.Errorf("invalid booking status %q", b.Status)
	}
	if !validPaymentStatus(b.PaymentStatus) {
		return fmt.Errorf("invalid payment status %q", b.PaymentStatus)
	}
	if b.TotalAmount <= 0 {
		return fmt.Errorf("totalAmount must be greater than 0")
	}
	return nil
}

// BookingFilter narrows booking listings. CheckIn/CheckOut bound the
// requested date window: bookings overlapping the window are returned.
type BookingFilter struct {
	Status   string
	GuestID  string
	RoomID   string
	CheckIn  *time.Time
	CheckOut *time.Time
}

// RoomSummary is the room slice embedded in booking responses.
type RoomSummary struct {
	Number string  `json:"number"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
}

// GuestSummary is the guest slice embedded in booking responses.
type GuestSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingView is a booking joined with its room and guest for API responses.
type BookingView struct {
	ID            string       `json:"id"`
	RoomID        string       `json:"roomId"`
	GuestID       string       `json:"guestId"`
	CheckIn       time.Time    `json:"checkIn"`
	CheckOut      time.Time    `json:"checkOut"`
	Status        string       `json:"status"`
	PaymentStatus string       `json:"paymentStatus"`
	TotalAmount   float64      `json:"totalAmount"`
	CreateDate    time.Time    `json:"createDate"`
	Room          RoomSummary  `json:"room"`
	Guest         GuestSummary `json:"guest"`
}
