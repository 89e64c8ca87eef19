package services_test

import (
	"fmt"
	"log"
	"os"
	"testing"

	"venuehub/internal/models"
	"venuehub/internal/repositories"
	"venuehub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UsernameExists(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(filter repositories.UserFilter) ([]models.User, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) SaveProfile(profile *models.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishAccountCreated(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func notFoundErr(email string) error {
	return fmt.Errorf("user with email %s not found", email)
}

func TestAccountService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockPublisher := new(MockEventPublisher)
	accountService := services.NewAccountService(mockRepo, mockPublisher)

	// Successful registration: handle is the email's local part
	mockRepo.On("GetByEmail", "alice@x.com").Return(nil, notFoundErr("alice@x.com")).Once()
	mockRepo.On("UsernameExists", "alice").Return(false, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	mockPublisher.On("PublishAccountCreated", mock.Anything).Return(nil).Once()

	user, err := accountService.Register("alice@x.com", "pw", "Alice Smith")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@x.com", user.Email)
	assert.Equal(t, "Alice", user.FirstName)
	assert.Equal(t, "Smith", user.LastName)
	// Password must be stored hashed, never verbatim
	assert.NotEqual(t, "pw", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pw")))
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestAccountService_Register_HandleCollision(t *testing.T) {
	mockRepo := new(MockUserRepository)
	accountService := services.NewAccountService(mockRepo, nil)

	// "alice" is taken; the first free integer-suffixed variant wins
	mockRepo.On("GetByEmail", "alice@y.com").Return(nil, notFoundErr("alice@y.com")).Once()
	mockRepo.On("UsernameExists", "alice").Return(true, nil).Once()
	mockRepo.On("UsernameExists", "alice1").Return(true, nil).Once()
	mockRepo.On("UsernameExists", "alice2").Return(false, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := accountService.Register("alice@y.com", "pw", "Alice Jones")
	assert.NoError(t, err)
	assert.Equal(t, "alice2", user.Username)
	mockRepo.AssertExpectations(t)
}

func TestAccountService_Register_EmailAlreadyRegistered(t *testing.T) {
	mockRepo := new(MockUserRepository)
	accountService := services.NewAccountService(mockRepo, nil)

	mockRepo.On("GetByEmail", "alice@x.com").Return(&models.User{ID: "1"}, nil).Once()

	_, err := accountService.Register("alice@x.com", "pw", "Alice Smith")
	assert.ErrorIs(t, err, services.ErrEmailRegistered)
	mockRepo.AssertExpectations(t)
}

func TestAccountService_Register_NameSplitting(t *testing.T) {
	tests := []struct {
		name      string
		fullName  string
		wantFirst string
		wantLast  string
	}{
		{"single name", "Bob", "Bob", ""},
		{"first and last", "Alice Smith", "Alice", "Smith"},
		{"multi-word last name", "Mary Jane Watson", "Mary", "Jane Watson"},
		{"surrounding whitespace", "  Alice Smith  ", "Alice", "Smith"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			accountService := services.NewAccountService(mockRepo, nil)

			mockRepo.On("GetByEmail", "bob@x.com").Return(nil, notFoundErr("bob@x.com")).Once()
			mockRepo.On("UsernameExists", "bob").Return(false, nil).Once()
			mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

			user, err := accountService.Register("bob@x.com", "pw", tt.fullName)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantFirst, user.FirstName)
			assert.Equal(t, tt.wantLast, user.LastName)
		})
	}
}

func TestAccountService_Register_RetriesOnLostHandleRace(t *testing.T) {
	mockRepo := new(MockUserRepository)
	accountService := services.NewAccountService(mockRepo, nil)

	// First attempt sees "alice" free, but a concurrent signup commits it
	// first and the store rejects the insert. The retry re-derives and lands
	// on "alice1".
	mockRepo.On("GetByEmail", "alice@x.com").Return(nil, notFoundErr("alice@x.com")).Times(2)
	mockRepo.On("UsernameExists", "alice").Return(false, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(gorm.ErrDuplicatedKey).Once()
	mockRepo.On("UsernameExists", "alice").Return(true, nil).Once()
	mockRepo.On("UsernameExists", "alice1").Return(false, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := accountService.Register("alice@x.com", "pw", "Alice Smith")
	assert.NoError(t, err)
	assert.Equal(t, "alice1", user.Username)
	mockRepo.AssertExpectations(t)
}

func TestAccountService_Register_RaceLostToSameEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	accountService := services.NewAccountService(mockRepo, nil)

	// The uniqueness violation came from a concurrent signup with the same
	// email, not a handle collision: report a duplicate, do not retry.
	mockRepo.On("GetByEmail", "alice@x.com").Return(nil, notFoundErr("alice@x.com")).Once()
	mockRepo.On("UsernameExists", "alice").Return(false, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(gorm.ErrDuplicatedKey).Once()
	mockRepo.On("GetByEmail", "alice@x.com").Return(&models.User{ID: "1"}, nil).Once()

	_, err := accountService.Register("alice@x.com", "pw", "Alice Smith")
	assert.ErrorIs(t, err, services.ErrEmailRegistered)
	mockRepo.AssertExpectations(t)
}

func TestAccountService_Register_HandleRetriesExhausted(t *testing.T) {
	mockRepo := new(MockUserRepository)
	accountService := services.NewAccountService(mockRepo, nil)

	// Every attempt loses the race; the bounded retry must give up rather
	// than loop forever.
	mockRepo.On("GetByEmail", "alice@x.com").Return(nil, notFoundErr("alice@x.com"))
	mockRepo.On("UsernameExists", mock.AnythingOfType("string")).Return(false, nil)
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(gorm.ErrDuplicatedKey)

	_, err := accountService.Register("alice@x.com", "pw", "Alice Smith")
	assert.ErrorIs(t, err, services.ErrHandleExhausted)
}

func TestAccountService_Register_PublishFailureDoesNotFailSignup(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockPublisher := new(MockEventPublisher)
	accountService := services.NewAccountService(mockRepo, mockPublisher)

	mockRepo.On("GetByEmail", "alice@x.com").Return(nil, notFoundErr("alice@x.com")).Once()
	mockRepo.On("UsernameExists", "alice").Return(false, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	mockPublisher.On("PublishAccountCreated", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	user, err := accountService.Register("alice@x.com", "pw", "Alice Smith")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	mockPublisher.AssertExpectations(t)
}
