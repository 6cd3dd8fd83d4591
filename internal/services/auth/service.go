// Package auth is the identity boundary: credential verification, token
// issuance and session invalidation. Provider error kinds are mapped to the
// domain taxonomy so handlers can render stable user messages.
package auth

import (
	"context"
	"log"
	"time"

	errs "bankee/internal/errors"
	"bankee/internal/models"
	"bankee/internal/repositories"
	"bankee/internal/services/notification"
	"bankee/internal/utils"
	"bankee/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Login(email, password string) (*models.User, string, string, error)
	RefreshTokens(refreshToken string) (string, string, error)
	Logout(userID uint) error
	GetUserTokenVersion(userID uint) (int, error)
	GetUserByID(userID uint) (*models.User, error)
}

type service struct {
	userRepo repositories.UserRepository
	notifier notification.Service
	secret   string
}

// NewService creates the auth service. The notifier is optional; when set,
// failed sign-in attempts raise a security notification for the account.
func NewService(userRepo repositories.UserRepository, notifier notification.Service, secret string) Service {
	if userRepo == nil {
		panic("user repository is required")
	}
	return &service{userRepo: userRepo, notifier: notifier, secret: secret}
}

func (s *service) Login(email, password string) (*models.User, string, string, error) {
	if !validation.ValidEmail(email) {
		return nil, "", "", errs.ErrInvalidEmail
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", "", errs.ErrUserNotFound
	}
	if user.Disabled() {
		return nil, "", "", errs.ErrUserDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		if s.notifier != nil {
			_ = s.notifier.Create(context.Background(), notification.SecurityAlert(user.ID,
				"Failed sign-in attempt on your account", time.Now().UTC()))
		}
		return nil, "", "", errs.ErrWrongPassword
	}

	access, refresh, err := utils.GenerateTokens(&models.UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		TokenVersion: user.TokenVersion,
	}, s.secret)
	if err != nil {
		log.Printf("token generation failed for user %d: %v", user.ID, err)
		return nil, "", "", errs.ErrStore
	}

	user.LastLoginAt = time.Now().UTC()
	if err := s.userRepo.Update(user); err != nil {
		log.Printf("failed to record login time for user %d: %v", user.ID, err)
	}

	return user, access, refresh, nil
}

func (s *service) RefreshTokens(refreshToken string) (string, string, error) {
	claims, err := utils.ParseToken(refreshToken, s.secret)
	if err != nil {
		return "", "", errs.ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return "", "", errs.ErrUserNotFound
	}
	// A token from before the last logout carries a stale version.
	if user.TokenVersion != claims.TokenVersion {
		return "", "", errs.ErrUnauthenticated
	}

	return utils.GenerateTokens(&models.UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		TokenVersion: user.TokenVersion,
	}, s.secret)
}

func (s *service) Logout(userID uint) error {
	return s.userRepo.IncrementTokenVersion(userID)
}

func (s *service) GetUserTokenVersion(userID uint) (int, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return 0, err
	}
	return user.TokenVersion, nil
}

func (s *service) GetUserByID(userID uint) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}
