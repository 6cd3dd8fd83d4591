// Package notification manages the advisory notification feed. Notifications
// are never required for ledger correctness; transfer-related ones are written
// inside the ledger's atomic unit, the rest through this service.
package notification

import (
	"context"

	"bankee/internal/models"
	"bankee/internal/repositories"
)

// FeedLimit bounds the notification feed, matching the client's recent view.
const FeedLimit = 50

type Service interface {
	Create(ctx context.Context, n *models.Notification) error
	List(ctx context.Context, userID uint) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, userID, notificationID uint) error
	UnreadCount(ctx context.Context, userID uint) (int64, error)
}

type service struct {
	repo repositories.NotificationRepository
}

func NewService(repo repositories.NotificationRepository) Service {
	if repo == nil {
		panic("notification repository is required")
	}
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, n *models.Notification) error {
	return s.repo.Create(n)
}

func (s *service) List(ctx context.Context, userID uint) ([]models.Notification, error) {
	return s.repo.ListByUser(userID, FeedLimit)
}

func (s *service) MarkAsRead(ctx context.Context, userID, notificationID uint) error {
	return s.repo.MarkRead(userID, notificationID)
}

func (s *service) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.repo.CountUnread(userID)
}
