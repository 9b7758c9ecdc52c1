// services/identity.go
package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumen-social/lumen/models"
	"github.com/lumen-social/lumen/repositories"
)

const minPasswordLength = 6

// IdentityService handles registration, authentication and profile edits.
type IdentityService struct {
	users repositories.UserRepository
}

func NewIdentityService(store *repositories.Store) *IdentityService {
	return &IdentityService{users: store.Users}
}

// Register validates the form, enforces username uniqueness and stores a
// new user with a bcrypt-hashed password. The caller is expected to
// establish the session for the returned user (auto-login).
func (s *IdentityService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, &ValidationError{Message: "Username and password are required"}
	}
	if len(req.Password) < minPasswordLength {
		return nil, &ValidationError{Message: "Password must be at least 6 characters"}
	}
	if req.Password != req.ConfirmPassword {
		return nil, &ValidationError{Message: "Password confirmation does not match"}
	}

	existing, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError{Message: "Username is already taken"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	bio := req.Bio
	if bio == "" {
		bio = models.DefaultBio
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Password:  string(hash),
		Bio:       bio,
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetAvatar records the stored avatar URL, or clears it when empty.
func (s *IdentityService) SetAvatar(ctx context.Context, userID, avatarURL string) error {
	return s.users.UpdateAvatar(ctx, userID, avatarURL)
}

// Authenticate resolves the username and checks the password hash.
func (s *IdentityService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Message: "Unknown username"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, &AuthError{Message: "Incorrect password"}
	}
	return user, nil
}

// UpdateProfile replaces the bio (falling back to the default when
// cleared) and changes the password only when both the current and the
// new password were supplied.
func (s *IdentityService) UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdateRequest) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Message: "User not found"}
	}

	bio := req.Bio
	if bio == "" {
		bio = models.DefaultBio
	}
	if err := s.users.UpdateBio(ctx, userID, bio); err != nil {
		return nil, err
	}
	user.Bio = bio

	if req.CurrentPassword != "" && req.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
			return nil, &AuthError{Message: "Current password is incorrect"}
		}
		if len(req.NewPassword) < minPasswordLength {
			return nil, &ValidationError{Message: "New password must be at least 6 characters"}
		}
		if req.NewPassword != req.ConfirmPassword {
			return nil, &ValidationError{Message: "Password confirmation does not match"}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}

	return user, nil
}
