package services_test

import (
	"fmt"
	"testing"

	"venuehub/internal/models"
	"venuehub/internal/repositories"
	"venuehub/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokenRepo := repositories.NewMockTokenRepository()
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, tokenRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Username: "alice",
		Email:    "alice@x.com",
		Password: string(hashedPassword),
	}

	// Successful login returns the account and a signed token
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	gotUser, token, err := authService.Login("alice@x.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, gotUser.ID)
	assert.NotEmpty(t, token)

	// Validate the token structure
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Username, claims["username"])
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_TokenIssuanceIsIdempotent(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokenRepo := repositories.NewMockTokenRepository()
	authService := services.NewAuthService(mockRepo, tokenRepo, "test_jwt_secret")

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Username: "alice",
		Email:    "alice@x.com",
		Password: string(hashedPassword),
	}

	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Times(2)

	_, first, err := authService.Login("alice@x.com", "password123")
	assert.NoError(t, err)
	_, second, err := authService.Login("alice@x.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokenRepo := repositories.NewMockTokenRepository()
	authService := services.NewAuthService(mockRepo, tokenRepo, "test_jwt_secret")

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Username: "alice",
		Email:    "alice@x.com",
		Password: string(hashedPassword),
	}

	// Unknown email
	mockRepo.On("GetByEmail", "nobody@x.com").Return(nil, notFoundErr("nobody@x.com")).Once()
	_, _, errUnknown := authService.Login("nobody@x.com", "password123")
	assert.ErrorIs(t, errUnknown, services.ErrInvalidCredentials)

	// Wrong password for an existing account
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, _, errWrongPw := authService.Login("alice@x.com", "wrongpassword")
	assert.ErrorIs(t, errWrongPw, services.ErrInvalidCredentials)

	// Same kind AND same message for both failure modes
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokenRepo := repositories.NewMockTokenRepository()
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, tokenRepo, testJWTSecret)

	// Generate a valid token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  "user-123",
		"username": "alice",
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	// Test valid token
	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "alice", claims["username"])

	// Test malformed token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Test token signed with a different secret
	foreignToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
	})
	foreignTokenString, _ := foreignToken.SignedString([]byte("other_secret"))
	_, err = authService.ValidateToken(foreignTokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}
