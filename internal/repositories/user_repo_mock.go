package repositories

import (
	"fmt"
	"sync"

	"venuehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users    map[string]models.User
	profiles map[string]models.Profile // keyed by user ID
	order    []string                  // insertion order of user IDs
	mu       sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:    make(map[string]models.User),
		profiles: make(map[string]models.Profile),
	}
}

// Create adds a new user, enforcing the same uniqueness rules the database
// would. Returns gorm.ErrDuplicatedKey on a username or email collision.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.ID] = *user
	r.order = append(r.order, user.ID)
	return nil
}

// GetByUsername returns a user by their username.
func (r *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return r.withProfile(u), nil
		}
	}
	return nil, fmt.Errorf("user with username %s not found", username)
}

// GetByEmail returns a user by their email.
func (r *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return r.withProfile(u), nil
		}
	}
	return nil, fmt.Errorf("user with email %s not found", email)
}

// GetByID returns a user by their ID.
func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s not found", id)
	}
	return r.withProfile(u), nil
}

// UsernameExists reports whether the username is already taken.
func (r *MockUserRepository) UsernameExists(username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// List returns users matching the filter in insertion order.
func (r *MockUserRepository) List(filter UserFilter) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		u := r.users[id]
		if filter.Email != "" && u.Email != filter.Email {
			continue
		}
		if filter.ID != "" && u.ID != filter.ID {
			continue
		}
		users = append(users, *r.withProfile(u))
	}
	return users, nil
}

// SaveProfile creates or replaces a user's profile.
func (r *MockUserRepository) SaveProfile(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	r.profiles[profile.UserID] = *profile
	return nil
}

// withProfile attaches the stored profile, if any, to a copy of the user.
// Callers must hold at least a read lock.
func (r *MockUserRepository) withProfile(u models.User) *models.User {
	if p, ok := r.profiles[u.ID]; ok {
		u.Profile = &p
	}
	return &u
}
