package models

import (
	"fmt"
	"strings"
	"time"
)

// User roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
	RoleUser  = "user"
)

// User is a back-office account. Password holds the bcrypt hash and never
// leaves the server.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RegisterInput carries a registration payload. Password arrives in plain
// text and is hashed before storage.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (in RegisterInput) Validate() error {
	if l := len(in.Name); l < 2 || l > 100 {
		return fmt.Errorf("name must be between 2 and 100 characters")
	}
	if !strings.Contains(in.Email, "@") {
		return fmt.Errorf("email must be a valid email address")
	}
	if len(in.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	if in.Role != "" && in.Role != RoleAdmin && in.Role != RoleStaff && in.Role != RoleUser {
		return fmt.Errorf("invalid role %q", in.Role)
	}
	return nil
}

// UserClaims is the public identity slab returned by login and /me.
type UserClaims struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
