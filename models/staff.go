package models

import (
	"fmt"
	"time"
)

// Staff statuses.
const (
	StaffActive   = "active"
	StaffOnLeave  = "on-leave"
	StaffInactive = "inactive"
)

// Staff represents a hotel staff member.
type Staff struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Phone      string    `bson:"phone" json:"phone"`
	Role       string    `bson:"role" json:"role"`
	Department string    `bson:"department" json:"department"`
	Status     string    `bson:"status" json:"status"`
	Avatar     string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// StaffInput carries a create/update payload. Staff updates are
// full-document, unlike rooms and guests.
type StaffInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Status     string `json:"status"`
	Avatar     string `json:"avatar"`
}

func (in StaffInput) Validate() (*Staff, error) {
	if l := len(in.Name); l < 2 || l > 100 {
		return nil, fmt.Errorf("name must be between 2 and 100 characters")
	}
	if in.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if in.Phone == "" {
		return nil, fmt.Errorf("phone is required")
	}
	if l := len(in.Role); l < 2 || l > 100 {
		return nil, fmt.Errorf("role must be between 2 and 100 characters")
	}
	if l := len(in.Department); l < 2 || l > 100 {
		return nil, fmt.Errorf("department must be between 2 and 100 characters")
	}
	status := in.Status
	if status == "" {
		status = StaffActive
	}
	switch status {
	case StaffActive, StaffOnLeave, StaffInactive:
	default:
		return nil, fmt.Errorf("invalid staff status %q", status)
	}
	return &Staff{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Role:       in.Role,
		Department: in.Department,
		Status:     status,
		Avatar:     in.Avatar,
	}, nil
}
