// Package user handles account creation and profile management. Signup mints
// the 16-digit account number and IBAN and seeds the wallet with the
// configured opening balance.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	errs "bankee/internal/errors"
	"bankee/internal/models"
	"bankee/internal/repositories"
	"bankee/internal/services/notification"
	"bankee/internal/utils"
	"bankee/internal/validation"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// accountNumberAttempts bounds the fresh draws taken when a generated
// account number hits the unique index.
const accountNumberAttempts = 3

// duplicateKey reports whether err is a unique index violation involving the
// named column, in either the SQLite or PostgreSQL phrasing.
func duplicateKey(err error, column string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE") && !strings.Contains(msg, "duplicate key") {
		return false
	}
	return strings.Contains(msg, column)
}

// RegisterRequest carries the fields collected by the signup flow.
type RegisterRequest struct {
	Email       string
	Password    string
	Name        string
	Phone       string
	Address     string
	Occupation  string
	DateOfBirth *time.Time
}

// ProfileUpdate carries optional profile changes. Nil fields are untouched.
type ProfileUpdate struct {
	Name       *string
	Phone      *string
	Address    *string
	Occupation *string
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	GetByID(ctx context.Context, userID uint) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.User, error)
}

type service struct {
	db             *gorm.DB
	users          repositories.UserRepository
	notifier       notification.Service
	openingBalance decimal.Decimal
}

// NewService creates the user service. openingBalance is credited to every
// new wallet at signup.
func NewService(db *gorm.DB, users repositories.UserRepository, notifier notification.Service, openingBalance decimal.Decimal) Service {
	if db == nil || users == nil {
		panic("user service requires a database handle and user repository")
	}
	return &service{db: db, users: users, notifier: notifier, openingBalance: openingBalance}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validation.ValidEmail(email) {
		return nil, errs.ErrInvalidEmail
	}
	if !validation.StrongPassword(req.Password) {
		return nil, &errs.DomainError{
			Code:    "WEAK_PASSWORD",
			Message: "password must be at least 8 characters and contain a special character",
		}
	}
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, errs.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:       email,
		Password:    string(hashed),
		Name:        strings.TrimSpace(req.Name),
		Phone:       req.Phone,
		Address:     req.Address,
		Occupation:  req.Occupation,
		DateOfBirth: req.DateOfBirth,
		Status:      "active",
	}

	// The random account number can collide with an existing row; take a
	// fresh draw and retry before giving up. User and wallet are created
	// together; a half-registered account with no wallet must never be
	// observable.
	for attempt := 0; ; attempt++ {
		user.AccountNumber, err = utils.GenerateAccountNumber()
		if err != nil {
			return nil, fmt.Errorf("failed to generate account number: %w", err)
		}
		user.IBAN = utils.GenerateIBAN(user.AccountNumber)

		err = s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(user).Error; err != nil {
				return err
			}
			wallet := &models.Wallet{
				UserID:   user.ID,
				Balance:  s.openingBalance,
				Currency: "USD",
				Status:   "active",
			}
			if err := tx.Create(wallet).Error; err != nil {
				return err
			}
			user.WalletID = &wallet.ID
			user.Wallet = wallet
			return tx.Save(user).Error
		})
		if err == nil {
			break
		}
		// A concurrent signup can win the email between the pre-check and
		// the insert.
		if duplicateKey(err, "email") {
			return nil, errs.ErrEmailTaken
		}
		if !duplicateKey(err, "account_number") || attempt == accountNumberAttempts-1 {
			return nil, fmt.Errorf("failed to register user: %w", err)
		}
	}

	if s.notifier != nil {
		_ = s.notifier.Create(ctx, notification.AccountUpdate(user.ID,
			"Welcome to Bankee! Your account is ready.", time.Now().UTC()))
	}
	return user, nil
}

func (s *service) GetByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	sensitive := false
	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
		sensitive = true
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	if update.Occupation != nil {
		user.Occupation = *update.Occupation
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	if sensitive && s.notifier != nil {
		_ = s.notifier.Create(ctx, notification.AccountUpdate(user.ID,
			"Your account information has been updated", time.Now().UTC()))
	}
	return user, nil
}
