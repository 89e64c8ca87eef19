package handlers

import (
	"errors"
	"log"

	"venuehub/internal/repositories"
	"venuehub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles HTTP requests for signup, login, and profile reads.
type AccountHandler struct {
	accountService *services.AccountService
	authService    *services.AuthService
	profileService *services.ProfileService
	validate       *validator.Validate
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService *services.AccountService, authService *services.AuthService, profileService *services.ProfileService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		authService:    authService,
		profileService: profileService,
		validate:       validator.New(),
	}
}

// SessionCookieName is the cookie carrying the session token set on login.
const SessionCookieName = "session_token"

// RegisterRoutes registers the account routes with the Fiber app. The
// authGuard middleware protects the current-user endpoint.
func (h *AccountHandler) RegisterRoutes(router fiber.Router, authGuard fiber.Handler) {
	router.Post("/signup", h.HandleSignup)
	router.Post("/login", h.HandleLogin)
	router.Get("/user", authGuard, h.HandleCurrentUser)
	router.Get("/profiles", h.HandleListProfiles)
	router.Get("/profiles/:id", h.HandleProfileDetail)
}

// SignupRequest represents the request body for signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullname"`
}

// HandleSignup handles new account registration.
func (h *AccountHandler) HandleSignup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing signup request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email, full name, and password are required.",
		})
	}
	if err := h.validate.Var(req.Email, "email"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid email address.",
		})
	}

	if _, err := h.accountService.Register(req.Email, req.Password, req.FullName); err != nil {
		switch {
		case errors.Is(err, services.ErrEmailRegistered):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Email is already registered.",
			})
		case errors.Is(err, services.ErrHandleExhausted):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Could not register user.",
			})
		default:
			log.Printf("Error registering user: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not register user.",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully.",
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles login, starts a cookie session, and returns the
// account's long-lived token.
func (h *AccountHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}
		log.Printf("Error during login for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user": fiber.Map{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		},
		"token": token,
	})
}

// HandleCurrentUser returns the authenticated account's name fields. The
// auth middleware has already resolved the token to a user id.
func (h *AccountHandler) HandleCurrentUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	view, err := h.profileService.GetProfileByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	return c.JSON(fiber.Map{
		"email":      view.Email,
		"first_name": view.FirstName,
		"last_name":  view.LastName,
		"full_name":  view.FullName,
	})
}

// HandleListProfiles returns composed profiles, optionally filtered by
// email and account id. Filters combine conjunctively.
func (h *AccountHandler) HandleListProfiles(c *fiber.Ctx) error {
	filter := repositories.UserFilter{
		Email: c.Query("email"),
		ID:    c.Query("id"),
	}

	profiles, err := h.profileService.ListProfiles(filter)
	if err != nil {
		log.Printf("Error listing profiles: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not list profiles",
		})
	}

	return c.JSON(fiber.Map{
		"profiles": profiles,
	})
}

// HandleProfileDetail returns one composed profile by account id.
func (h *AccountHandler) HandleProfileDetail(c *fiber.Ctx) error {
	view, err := h.profileService.GetProfileByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		log.Printf("Error fetching profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch profile",
		})
	}

	return c.JSON(view)
}
