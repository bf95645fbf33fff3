package auth

import (
	"context"
	"fmt"
	"testing"

	"hotelify/models"
)

type fakeUserRepo struct {
	byEmail map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]models.User)}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with id %s not found", id)
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return fmt.Errorf("user already exists")
	}
	r.byEmail[user.Email] = *user
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := &DefaultAuthService{Repo: newFakeUserRepo()}

	user, err := svc.Register(context.Background(), models.RegisterInput{
		Name:     "Front Desk",
		Email:    "desk@hotel.test",
		Password: "sup3rsecret",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Role != models.RoleUser {
		t.Errorf("expected default role user, got %q", user.Role)
	}
	if user.Password == "sup3rsecret" {
		t.Errorf("password stored in plain text")
	}

	claims, token, err := svc.Login(context.Background(), "desk@hotel.test", "sup3rsecret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token == "" {
		t.Errorf("expected a signed token")
	}
	if claims.ID != user.ID || claims.Email != "desk@hotel.test" {
		t.Errorf("claims mismatch: %+v", claims)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &DefaultAuthService{Repo: newFakeUserRepo()}

	in := models.RegisterInput{Name: "Front Desk", Email: "desk@hotel.test", Password: "sup3rsecret"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); err != ErrUserExists {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := &DefaultAuthService{Repo: newFakeUserRepo()}

	if _, _, err := svc.Login(context.Background(), "ghost@hotel.test", "whatever"); err != ErrInvalidCredentials {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := svc.Register(context.Background(), models.RegisterInput{
		Name: "Front Desk", Email: "desk@hotel.test", Password: "sup3rsecret",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "desk@hotel.test", "wrongpass"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
}
