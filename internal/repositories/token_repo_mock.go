package repositories

import (
	"fmt"
	"sync"

	"venuehub/internal/models"

	"github.com/google/uuid"
)

// MockTokenRepository is an in-memory implementation of TokenRepository.
type MockTokenRepository struct {
	tokens map[string]models.APIToken // keyed by user ID
	mu     sync.RWMutex
}

// NewMockTokenRepository creates a new instance of MockTokenRepository.
func NewMockTokenRepository() *MockTokenRepository {
	return &MockTokenRepository{
		tokens: make(map[string]models.APIToken),
	}
}

// GetByUserID returns the stored token for a user, if any.
func (r *MockTokenRepository) GetByUserID(userID string) (*models.APIToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.tokens[userID]
	if !ok {
		return nil, fmt.Errorf("token for user %s not found", userID)
	}
	return &token, nil
}

// Save stores a token keyed by its user ID.
func (r *MockTokenRepository) Save(token *models.APIToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	r.tokens[token.UserID] = *token
	return nil
}
