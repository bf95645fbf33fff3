package models

import (
	"fmt"
	"strings"
	"time"
)

// PasswordRequirements configures the password policy advertised to clients.
type PasswordRequirements struct {
	Uppercase    bool `bson:"uppercase" json:"uppercase"`
	Numbers      bool `bson:"numbers" json:"numbers"`
	SpecialChars bool `bson:"specialChars" json:"specialChars"`
	MinLength    int  `bson:"minLength" json:"minLength"`
}

// Setting is the hotel-wide configuration document. Exactly one exists; it is
// created with defaults on first access.
type Setting struct {
	ID                   string               `bson:"id" json:"id"`
	HotelName            string               `bson:"hotelName" json:"hotelName"`
	HotelAddress         string               `bson:"hotelAddress" json:"hotelAddress"`
	ContactEmail         string               `bson:"contactEmail" json:"contactEmail"`
	ContactPhone         string               `bson:"contactPhone" json:"contactPhone"`
	Currency             string               `bson:"currency" json:"currency"`
	Timezone             string               `bson:"timezone" json:"timezone"`
	Language             string               `bson:"language" json:"language"`
	CheckInTime          string               `bson:"checkInTime" json:"checkInTime"`
	CheckOutTime         string               `bson:"checkOutTime" json:"checkOutTime"`
	Theme                string               `bson:"theme" json:"theme"`
	Animations           bool                 `bson:"animations" json:"animations"`
	CompactView          bool                 `bson:"compactView" json:"compactView"`
	SessionTimeout       int                  `bson:"sessionTimeout" json:"sessionTimeout"`
	PasswordRequirements PasswordRequirements `bson:"passwordRequirements" json:"passwordRequirements"`
	CreatedAt            time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// DefaultSetting returns the configuration seeded on first access.
func DefaultSetting() *Setting {
	return &Setting{
		HotelName:      "Luxury Suites",
		HotelAddress:   "123 Ocean Drive, Miami, FL 33139",
		ContactEmail:   "info@luxurysuites.com",
		ContactPhone:   "+1 (555) 123-4567",
		Currency:       "USD",
		Timezone:       "America/New_York",
		Language:       "English",
		CheckInTime:    "3:00 PM",
		CheckOutTime:   "11:00 AM",
		Theme:          "light",
		Animations:     true,
		CompactView:    false,
		SessionTimeout: 30,
		PasswordRequirements: PasswordRequirements{
			Uppercase:    true,
			Numbers:      true,
			SpecialChars: true,
			MinLength:    8,
		},
	}
}

// Validate checks a settings update payload.
func (s *Setting) Validate() error {
	if l := len(s.HotelName); l < 1 || l > 100 {
		return fmt.Errorf("hotelName must be between 1 and 100 characters")
	}
	if !strings.Contains(s.ContactEmail, "@") {
		return fmt.Errorf("contactEmail must be a valid email address")
	}
	if s.Theme != "light" && s.Theme != "dark" {
		return fmt.Errorf("theme must be light or dark")
	}
	if s.SessionTimeout < 1 {
		return fmt.Errorf("sessionTimeout must be at least 1 minute")
	}
	if s.PasswordRequirements.MinLength < 6 {
		return fmt.Errorf("password minLength must be at least 6")
	}
	return nil
}
