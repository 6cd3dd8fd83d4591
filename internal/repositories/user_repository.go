package repositories

import "bankee/internal/models"

// UserRepository handles account identity records.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByAccountNumber(accountNumber string) (*models.User, error)
	Update(user *models.User) error
	IncrementTokenVersion(userID uint) error
}
