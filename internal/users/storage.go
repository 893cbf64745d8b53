package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"soapbox/internal/cache"
)

// User is a demo storefront account. There is no real authentication
// (deliberately); a cookie carrying the ID is the whole session story.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Favorites []string  `json:"favorites,omitempty"` // catalog product IDs
}

var ErrNotFound = errors.New("user not found")

const CookieName = "soapbox_user"

// Storage persists demo accounts in the cache, indexed by ID and by
// normalized email.
type Storage struct {
	cache cache.Cache
}

func NewStorage(c cache.Cache) *Storage {
	return &Storage{cache: c}
}

func (s *Storage) GetByID(id string) (*User, error) {
	userBytes, found := s.cache.Get("user/" + id)
	if !found {
		return nil, ErrNotFound
	}
	var user User
	if err := json.Unmarshal([]byte(userBytes), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

func (s *Storage) GetByEmail(email string) (*User, error) {
	id, found := s.cache.Get("email/" + normalizeEmail(email))
	if !found {
		return nil, ErrNotFound
	}
	return s.GetByID(id)
}

func (s *Storage) FindOrCreateByEmail(email string) (*User, error) {
	user, err := s.GetByEmail(email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	newUser := User{
		ID:        uuid.NewString(),
		Email:     normalizeEmail(email),
		CreatedAt: time.Now(),
	}
	if err := s.save(&newUser); err != nil {
		return nil, err
	}
	//no transactions
	if err := s.cache.Set("email/"+newUser.Email, newUser.ID); err != nil {
		return nil, fmt.Errorf("failed to index new user by email: %w", err)
	}
	return &newUser, nil
}

// ToggleFavorite adds or removes a catalog product ID on the user's
// favorites list and persists the result.
func (s *Storage) ToggleFavorite(user *User, productID string) error {
	for i, existing := range user.Favorites {
		if existing == productID {
			user.Favorites = append(user.Favorites[:i], user.Favorites[i+1:]...)
			return s.save(user)
		}
	}
	user.Favorites = append(user.Favorites, productID)
	return s.save(user)
}

func (s *Storage) save(user *User) error {
	userBytes, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := s.cache.Set("user/"+user.ID, string(userBytes)); err != nil {
		return fmt.Errorf("failed to store user: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
