package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"venuehub/internal/models"
	"venuehub/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password. The single error keeps the two cases indistinguishable so the
// API cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles business logic for authentication: credential
// verification and long-lived token issuance.
type AuthService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.TokenRepository
	jwtSecret []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		jwtSecret: []byte(jwtSecret),
	}
}

// Login authenticates an email/password pair and returns the account along
// with its long-lived token. Token issuance is idempotent: once a token has
// been minted for an account, every later login returns the same one.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueOrReuseToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// issueOrReuseToken returns the account's stored token, minting and
// persisting one on first login. The JWT carries no expiry; the token row
// lives as long as the account.
func (s *AuthService) issueOrReuseToken(user *models.User) (string, error) {
	if existing, err := s.tokenRepo.GetByUserID(user.ID); err == nil && existing != nil {
		return existing.Token, nil
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"iat":      time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.tokenRepo.Save(&models.APIToken{UserID: user.ID, Token: tokenString}); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
