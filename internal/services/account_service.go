package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"venuehub/internal/models"
	"venuehub/internal/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrEmailRegistered is returned when the signup email is already in use.
	ErrEmailRegistered = errors.New("email is already registered")
	// ErrHandleExhausted is returned when the bounded handle retry gives up.
	ErrHandleExhausted = errors.New("could not allocate a unique username")
)

// maxHandleAttempts bounds how many times a signup retries after losing a
// concurrent race on the username unique constraint.
const maxHandleAttempts = 5

// EventPublisher publishes account lifecycle events to the message broker.
type EventPublisher interface {
	PublishAccountCreated(event map[string]interface{}) error
}

// AccountService handles business logic for account registration: handle
// derivation, name splitting, and password hashing.
type AccountService struct {
	userRepo  repositories.UserRepository
	publisher EventPublisher
}

// NewAccountService creates a new AccountService. The publisher may be nil
// when no broker is configured.
func NewAccountService(userRepo repositories.UserRepository, publisher EventPublisher) *AccountService {
	return &AccountService{
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// Register creates a new account from an email, password, and free-form
// full name. The username (handle) is the email's local part; if taken, an
// increasing integer suffix is appended until a free handle is found. The
// store's unique indexes are the authoritative guard: a duplicate-key error
// on create means a concurrent signup won the handle, so derivation is
// re-run, a bounded number of times.
func (s *AccountService) Register(email, password, fullName string) (*models.User, error) {
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, ErrEmailRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	firstName, lastName := splitFullName(fullName)
	base := handleBase(email)

	for attempt := 0; attempt < maxHandleAttempts; attempt++ {
		username, err := s.deriveHandle(base)
		if err != nil {
			return nil, err
		}

		user := &models.User{
			Username:  username,
			Email:     email,
			Password:  string(hashedPassword),
			FirstName: firstName,
			LastName:  lastName,
		}
		err = s.userRepo.Create(user)
		if err == nil {
			s.publishCreated(user)
			return user, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race. If the email itself was taken concurrently this
			// is a duplicate signup, not a handle collision.
			if existing, lookupErr := s.userRepo.GetByEmail(email); lookupErr == nil && existing != nil {
				return nil, ErrEmailRegistered
			}
			continue
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return nil, ErrHandleExhausted
}

// deriveHandle finds the first free handle: the base itself, then base1,
// base2, and so on. Freed handles are never reused because derivation always
// starts from the base and takes the first gap the store reports.
func (s *AccountService) deriveHandle(base string) (string, error) {
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := s.userRepo.UsernameExists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check handle availability: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, counter)
	}
}

func (s *AccountService) publishCreated(user *models.User) {
	if s.publisher == nil {
		return
	}
	event := map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
	}
	if err := s.publisher.PublishAccountCreated(event); err != nil {
		// Event delivery is best effort; the account is already committed.
		log.Printf("Failed to publish account created event for %s: %v", user.Username, err)
	}
}

// handleBase returns the email's local part, the substring before '@'.
func handleBase(email string) string {
	base, _, _ := strings.Cut(email, "@")
	return base
}

// splitFullName trims the name and cuts on the first space: the part before
// becomes the first name, the remainder is kept verbatim as the last name.
func splitFullName(fullName string) (string, string) {
	trimmed := strings.TrimSpace(fullName)
	first, rest, found := strings.Cut(trimmed, " ")
	if !found {
		return trimmed, ""
	}
	return first, rest
}
