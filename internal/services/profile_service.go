package services

import (
	"errors"

	"venuehub/internal/models"
	"venuehub/internal/repositories"
)

// ErrUserNotFound is returned when a profile lookup targets an unknown user.
var ErrUserNotFound = errors.New("user not found")

// ProfileView is the composed read model joining an account's public fields
// with its optional profile. Missing profile fields read as empty strings.
type ProfileView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Affiliation string `json:"affiliation"`
	Homepage    string `json:"homepage"`
	Scholar     string `json:"scholar"`
	Github      string `json:"github"`
}

// ProfileService composes profile views over the user store.
type ProfileService struct {
	userRepo repositories.UserRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(userRepo repositories.UserRepository) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
	}
}

// ComposeProfile builds the read model for one user. The profile reference
// is never assumed non-nil; a user without a profile yields empty fields.
func (s *ProfileService) ComposeProfile(user *models.User) ProfileView {
	view := ProfileView{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
	}
	if user.Profile != nil {
		view.Affiliation = user.Profile.Affiliation
		view.Homepage = user.Profile.Homepage
		view.Scholar = user.Profile.Scholar
		view.Github = user.Profile.Github
	}
	return view
}

// ListProfiles composes views for every user matching the filter. Filters
// are conjunctive; an empty filter returns everyone.
func (s *ProfileService) ListProfiles(filter repositories.UserFilter) ([]ProfileView, error) {
	users, err := s.userRepo.List(filter)
	if err != nil {
		return nil, err
	}

	views := make([]ProfileView, 0, len(users))
	for i := range users {
		views = append(views, s.ComposeProfile(&users[i]))
	}
	return views, nil
}

// GetProfileByID composes the view for a single user.
func (s *ProfileService) GetProfileByID(id string) (*ProfileView, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	view := s.ComposeProfile(user)
	return &view, nil
}
