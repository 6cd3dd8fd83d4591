package repositories

import (
	"fmt"
	"strings"

	"bankee/internal/models"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(contact *models.Contact) error
	Exists(ownerID, userID uint) (bool, error)
	ListByOwner(ownerID uint) ([]models.Contact, error)
	Delete(ownerID, contactID uint) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(contact *models.Contact) error {
	if err := r.db.Create(contact).Error; err != nil {
		// The (owner_id, user_id) unique index backs up the service-level
		// duplicate check under concurrent adds.
		if strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "duplicate key") {
			return ErrDuplicateContact
		}
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

func (r *contactRepository) Exists(ownerID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).
		Where("owner_id = ? AND user_id = ?", ownerID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check contact: %w", err)
	}
	return count > 0, nil
}

func (r *contactRepository) ListByOwner(ownerID uint) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Where("owner_id = ?", ownerID).Order("added_at DESC").Find(&contacts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (r *contactRepository) Delete(ownerID, contactID uint) error {
	result := r.db.Where("owner_id = ? AND id = ?", ownerID, contactID).Delete(&models.Contact{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
