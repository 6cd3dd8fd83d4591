// Package contact manages the per-account address book. Contact rows
// denormalize name and account number at add time; they do not follow later
// changes to the target account.
package contact

import (
	"context"
	"strings"
	"time"

	errs "bankee/internal/errors"
	"bankee/internal/models"
	"bankee/internal/repositories"
)

type Service interface {
	// AddContact resolves accountNumber to an account, rejecting unknown
	// numbers, self-addition and duplicates, then writes the contact row.
	AddContact(ctx context.Context, ownerID uint, name, accountNumber string) (*models.Contact, error)
	List(ctx context.Context, ownerID uint) ([]models.Contact, error)
	Remove(ctx context.Context, ownerID, contactID uint) error
}

type service struct {
	users    repositories.UserRepository
	contacts repositories.ContactRepository
}

func NewService(users repositories.UserRepository, contacts repositories.ContactRepository) Service {
	if users == nil || contacts == nil {
		panic("contact service requires user and contact repositories")
	}
	return &service{users: users, contacts: contacts}
}

func (s *service) AddContact(ctx context.Context, ownerID uint, name, accountNumber string) (*models.Contact, error) {
	name = strings.TrimSpace(name)
	accountNumber = strings.TrimSpace(accountNumber)
	if name == "" || accountNumber == "" {
		return nil, errs.ErrAccountNotFound
	}

	target, err := s.users.GetByAccountNumber(accountNumber)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, errs.ErrAccountNotFound
		}
		return nil, err
	}
	if target.ID == ownerID {
		return nil, errs.ErrSelfReference
	}

	exists, err := s.contacts.Exists(ownerID, target.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrDuplicateContact
	}

	contact := &models.Contact{
		OwnerID:       ownerID,
		UserID:        target.ID,
		Name:          name,
		AccountNumber: accountNumber,
		AddedAt:       time.Now().UTC(),
	}
	if err := s.contacts.Create(contact); err != nil {
		if err == repositories.ErrDuplicateContact {
			return nil, errs.ErrDuplicateContact
		}
		return nil, err
	}
	return contact, nil
}

func (s *service) List(ctx context.Context, ownerID uint) ([]models.Contact, error) {
	return s.contacts.ListByOwner(ownerID)
}

func (s *service) Remove(ctx context.Context, ownerID, contactID uint) error {
	return s.contacts.Delete(ownerID, contactID)
}
