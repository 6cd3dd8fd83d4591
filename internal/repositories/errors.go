package repositories

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrWalletNotFound       = errors.New("wallet not found")
	ErrContactNotFound      = errors.New("contact not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrDuplicateContact     = errors.New("contact already exists")
)
