package users

import (
	"errors"
	"testing"

	"soapbox/internal/cache"
)

func TestFindOrCreateByEmail(t *testing.T) {
	t.Parallel()

	storage := NewStorage(cache.NewInMemoryCache())

	created, err := storage.FindOrCreateByEmail(" Organizer@Example.COM ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Email != "organizer@example.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}
	if created.ID == "" {
		t.Fatal("expected an ID")
	}

	found, err := storage.FindOrCreateByEmail("organizer@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected the same account, got %s and %s", created.ID, found.ID)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	t.Parallel()

	storage := NewStorage(cache.NewInMemoryCache())
	if _, err := storage.GetByID("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestToggleFavorite(t *testing.T) {
	t.Parallel()

	storage := NewStorage(cache.NewInMemoryCache())
	user, err := storage.FindOrCreateByEmail("fan@example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := storage.ToggleFavorite(user, "mock-tee-democracy"); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	reloaded, err := storage.GetByID(user.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.Favorites) != 1 || reloaded.Favorites[0] != "mock-tee-democracy" {
		t.Fatalf("unexpected favorites: %+v", reloaded.Favorites)
	}

	if err := storage.ToggleFavorite(reloaded, "mock-tee-democracy"); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	reloaded, err = storage.GetByID(user.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.Favorites) != 0 {
		t.Fatalf("expected favorite removed, got %+v", reloaded.Favorites)
	}
}
