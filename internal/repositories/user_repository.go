package repositories

import "venuehub/internal/models"

// UserFilter narrows List results. Zero-value fields are ignored; set
// fields are combined conjunctively.
type UserFilter struct {
	Email string
	ID    string
}

// UserRepository defines the interface for account data access. Create must
// fail with gorm.ErrDuplicatedKey when the username or email unique
// constraint is violated; the identity resolver relies on that to settle
// concurrent handle races.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	UsernameExists(username string) (bool, error)
	List(filter UserFilter) ([]models.User, error)
	SaveProfile(profile *models.Profile) error
}

// TokenRepository defines the interface for long-lived API token storage.
type TokenRepository interface {
	GetByUserID(userID string) (*models.APIToken, error)
	Save(token *models.APIToken) error
}
