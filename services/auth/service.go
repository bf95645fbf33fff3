// File: services/auth/service.go
package auth

import (
	"context"
	"fmt"
	"time"

	userRepo "hotelify/database/repository/user"
	"hotelify/models"
	"hotelify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Tokens are valid for a week, matching the dashboard's session length.
const tokenDuration = 7 * 24 * time.Hour

// ErrInvalidCredentials is returned for unknown accounts and wrong
// passwords alike, so login failures do not leak which one it was.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials")

// ErrUserExists is returned when registering an already-taken email.
var ErrUserExists = fmt.Errorf("user already exists")

// AuthService manages back-office accounts and their JWT sessions.
type AuthService interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.UserClaims, string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

// DefaultAuthService is the production AuthService.
type DefaultAuthService struct {
	Repo userRepo.UserRepository
}

// Register creates a back-office account with a bcrypt-hashed password.
func (s *DefaultAuthService) Register(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	user := &models.User{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("user registered",
		zap.String("userId", user.ID),
		zap.String("role", user.Role))
	return user, nil
}

// Login verifies credentials and returns the identity claims plus a signed
// JWT.
func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (*models.UserClaims, string, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, tokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	claims := &models.UserClaims{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	return claims, token, nil
}

// GetByID loads an account profile.
func (s *DefaultAuthService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// Logout blacklists the token hash until the token would have expired
// anyway.
func (s *DefaultAuthService) Logout(ctx context.Context, token string) error {
	return utils.RevokeToken(ctx, utils.HashToken(token), tokenDuration)
}
