package repositories

import (
	"errors"
	"fmt"

	"venuehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMTokenRepository is a GORM implementation of TokenRepository.
type GORMTokenRepository struct {
	db *gorm.DB
}

// NewGORMTokenRepository creates a new instance of GORMTokenRepository.
func NewGORMTokenRepository(db *gorm.DB) *GORMTokenRepository {
	return &GORMTokenRepository{
		db: db,
	}
}

// GetByUserID retrieves the stored token for a user, if one exists.
func (r *GORMTokenRepository) GetByUserID(userID string) (*models.APIToken, error) {
	var token models.APIToken
	if err := r.db.First(&token, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("token for user %s not found", userID)
		}
		return nil, fmt.Errorf("failed to get token for user %s: %w", userID, err)
	}
	return &token, nil
}

// Save persists a newly minted token.
func (r *GORMTokenRepository) Save(token *models.APIToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	if err := r.db.Create(token).Error; err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}
