package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
	"github.com/jaehyun-dev/stockfolio-be/internal/models"
	"github.com/jaehyun-dev/stockfolio-be/internal/models/dto"
	"github.com/jaehyun-dev/stockfolio-be/internal/storage"
)

// ProfileService lets a user view, edit, and delete their own account.
type ProfileService struct {
	users storage.UserStore
	log   *logrus.Logger
}

// NewProfileService constructs the service.
func NewProfileService(users storage.UserStore, log *logrus.Logger) *ProfileService {
	return &ProfileService{users: users, log: log}
}

// Get returns the caller's account.
func (s *ProfileService) Get(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("load user %d: %w", userID, err)
	}
	return user, nil
}

// Update changes the caller's display name and email. When a new password
// is supplied the current password must verify first.
func (s *ProfileService) Update(ctx context.Context, userID int64, req dto.ProfileUpdateRequest) (models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" {
		return models.User{}, apperr.Invalidf("name is required")
	}
	if email == "" {
		return models.User{}, apperr.Invalidf("email is required")
	}

	var newHash *string
	if req.NewPassword != "" {
		if len(req.NewPassword) < 8 {
			return models.User{}, apperr.Invalidf("password must be at least 8 characters")
		}

		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return models.User{}, fmt.Errorf("load user %d: %w", userID, err)
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
			return models.User{}, fmt.Errorf("%w: current password does not match", apperr.ErrAccessDenied)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, fmt.Errorf("hash password: %w", err)
		}
		hashStr := string(hash)
		newHash = &hashStr
	}

	updated, err := s.users.UpdateProfile(ctx, userID, name, email, newHash)
	if err != nil {
		return models.User{}, fmt.Errorf("update profile %d: %w", userID, err)
	}

	s.log.WithField("user_id", userID).Info("profile updated")
	return updated, nil
}

// Delete removes the caller's account after password confirmation.
func (s *ProfileService) Delete(ctx context.Context, userID int64, password string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("load user %d: %w", userID, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return fmt.Errorf("%w: password does not match", apperr.ErrAccessDenied)
	}

	if err := s.users.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("delete user %d: %w", userID, err)
	}

	s.log.WithField("user_id", userID).Info("account deleted")
	return nil
}
