package settings

import (
	"context"
	"testing"

	"hotelify/models"
)

type fakeSettingsRepo struct {
	stored *models.Setting

	createCalls  int
	replaceCalls int
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*models.Setting, error) {
	if r.stored == nil {
		return nil, nil
	}
	s := *r.stored
	return &s, nil
}

func (r *fakeSettingsRepo) Create(_ context.Context, setting *models.Setting) error {
	r.createCalls++
	s := *setting
	r.stored = &s
	return nil
}

func (r *fakeSettingsRepo) Replace(_ context.Context, setting *models.Setting) error {
	r.replaceCalls++
	s := *setting
	r.stored = &s
	return nil
}

func TestGetOrCreateSeedsDefaults(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := &DefaultSettingsService{Repo: repo}

	setting, err := svc.GetOrCreate(context.Background())
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if setting.ID == "" {
		t.Errorf("expected generated id")
	}
	if setting.HotelName != "Luxury Suites" {
		t.Errorf("expected default hotel name, got %q", setting.HotelName)
	}
	if repo.createCalls != 1 {
		t.Errorf("expected one create, got %d", repo.createCalls)
	}

	// Second call returns the seeded document, no further create.
	again, err := svc.GetOrCreate(context.Background())
	if err != nil {
		t.Fatalf("second GetOrCreate failed: %v", err)
	}
	if again.ID != setting.ID {
		t.Errorf("expected the same document back, got %q vs %q", again.ID, setting.ID)
	}
	if repo.createCalls != 1 {
		t.Errorf("second GetOrCreate created again: %d", repo.createCalls)
	}
}

func TestUpdatePreservesIdentity(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := &DefaultSettingsService{Repo: repo}

	seeded, err := svc.GetOrCreate(context.Background())
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	upd := *models.DefaultSetting()
	upd.ID = "client-supplied-id"
	upd.HotelName = "Harbor View"

	updated, err := svc.Update(context.Background(), upd)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.ID != seeded.ID {
		t.Errorf("update must keep the stored id, got %q", updated.ID)
	}
	if updated.HotelName != "Harbor View" {
		t.Errorf("hotel name not applied: %q", updated.HotelName)
	}
	if repo.replaceCalls != 1 {
		t.Errorf("expected one replace, got %d", repo.replaceCalls)
	}
}

func TestUpdateRejectsInvalid(t *testing.T) {
	svc := &DefaultSettingsService{Repo: &fakeSettingsRepo{}}

	bad := *models.DefaultSetting()
	bad.Theme = "neon"
	if _, err := svc.Update(context.Background(), bad); err == nil {
		t.Errorf("expected validation error for bad theme")
	}
}
