package models

import (
	"fmt"
	"time"
)

// StayRecord captures one completed stay interval on a guest profile.
type StayRecord struct {
	CheckedIn  time.Time `bson:"checkedIn" json:"checkedIn"`
	CheckedOut time.Time `bson:"checkedOut" json:"checkedOut"`
}

// Guest represents a hotel guest profile.
type Guest struct {
	ID            string       `bson:"id" json:"id"`
	Name          string       `bson:"name" json:"name"`
	Email         string       `bson:"email,omitempty" json:"email,omitempty"`
	Phone         string       `bson:"phone" json:"phone"`
	Nationality   string       `bson:"nationality" json:"nationality"`
	Visits        int          `bson:"visits" json:"visits"`
	VIP           bool         `bson:"vip" json:"vip"`
	PassportOrNID string       `bson:"passportOrNID,omitempty" json:"passportOrNID,omitempty"`
	Avatar        string       `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Activities    []StayRecord `bson:"activities" json:"activities"`
	CreatedAt     time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// GuestInput carries a create payload for a guest.
type GuestInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Nationality   string `json:"nationality"`
	Visits        int    `json:"visits"`
	VIP           bool   `json:"vip"`
	PassportOrNID string `json:"passportOrNID"`
	Avatar        string `json:"avatar"`
}

func (in GuestInput) Validate() (*Guest, error) {
	if l := len(in.Name); l < 2 || l > 100 {
		return nil, fmt.Errorf("name must be between 2 and 100 characters")
	}
	if l := len(in.Phone); l < 5 || l > 20 {
		return nil, fmt.Errorf("phone must be between 5 and 20 characters")
	}
	if l := len(in.Nationality); l < 2 || l > 50 {
		return nil, fmt.Errorf("nationality must be between 2 and 50 characters")
	}
	if in.Visits < 0 {
		return nil, fmt.Errorf("visits must not be negative")
	}
	return &Guest{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Nationality:   in.Nationality,
		Visits:        in.Visits,
		VIP:           in.VIP,
		PassportOrNID: in.PassportOrNID,
		Avatar:        in.Avatar,
		Activities:    []StayRecord{},
	}, nil
}

// GuestUpdate carries a partial update; nil fields are left untouched.
// Visits and activities are deliberately absent: those fields belong to the
// booking cascade.
type GuestUpdate struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Nationality   *string `json:"nationality"`
	VIP           *bool   `json:"vip"`
	PassportOrNID *string `json:"passportOrNID"`
	Avatar        *string `json:"avatar"`
}

func (u GuestUpdate) ApplyTo(g *Guest) error {
	if u.Name != nil {
		g.Name = *u.Name
	}
	if u.Email != nil {
		g.Email = *u.Email
	}
	if u.Phone != nil {
		g.Phone = *u.Phone
	}
	if u.Nationality != nil {
		g.Nationality = *u.Nationality
	}
	if u.VIP != nil {
		g.VIP = *u.VIP
	}
	if u.PassportOrNID != nil {
		g.PassportOrNID = *u.PassportOrNID
	}
	if u.Avatar != nil {
		g.Avatar = *u.Avatar
	}
	if l := len(g.Name); l < 2 || l > 100 {
		return fmt.Errorf("name must be between 2 and 100 characters")
	}
	if l := len(g.Phone); l < 5 || l > 20 {
		return fmt.Errorf("phone must be between 5 and 20 characters")
	}
	if l := len(g.Nationality); l < 2 || l > 50 {
		return fmt.Errorf("nationality must be between 2 and 50 characters")
	}
	return nil
}
