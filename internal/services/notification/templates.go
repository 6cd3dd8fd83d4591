package notification

import (
	"fmt"
	"time"

	"bankee/internal/models"

	"github.com/shopspring/decimal"
)

// Presentation hint colors understood by the mobile client.
const (
	colorPrimary = "#6C63FF"
	colorSuccess = "#4CAF50"
	colorError   = "#FF5252"
)

// MoneySent builds the sender-side notification for a completed transfer.
func MoneySent(userID uint, amount decimal.Decimal, recipientName string, ts time.Time) *models.Notification {
	return &models.Notification{
		UserID:    userID,
		Title:     "Money Sent",
		Body:      fmt.Sprintf("You sent $%s to %s", amount.StringFixed(2), recipientName),
		Type:      models.NotificationTypeTransaction,
		Icon:      "paper-plane",
		Color:     colorPrimary,
		Timestamp: ts,
	}
}

// MoneyReceived builds the receiver-side notification for a completed transfer.
func MoneyReceived(userID uint, amount decimal.Decimal, senderName string, ts time.Time) *models.Notification {
	return &models.Notification{
		UserID:    userID,
		Title:     "Money Received",
		Body:      fmt.Sprintf("You received $%s from %s", amount.StringFixed(2), senderName),
		Type:      models.NotificationTypeTransaction,
		Icon:      "hand-holding-usd",
		Color:     colorSuccess,
		Timestamp: ts,
	}
}

// SubscriptionPurchased builds the notification for a new subscription.
func SubscriptionPurchased(userID uint, serviceName string, amount decimal.Decimal, ts time.Time) *models.Notification {
	return &models.Notification{
		UserID:    userID,
		Title:     "Subscription Activated",
		Body:      fmt.Sprintf("Your %s subscription for $%s has been activated", serviceName, amount.StringFixed(2)),
		Type:      models.NotificationTypeSubscription,
		Icon:      "credit-card",
		Color:     colorPrimary,
		Timestamp: ts,
	}
}

// BillPayment builds the notification for a paid bill.
func BillPayment(userID uint, billerName string, amount decimal.Decimal, ts time.Time) *models.Notification {
	return &models.Notification{
		UserID:    userID,
		Title:     "Bill Payment",
		Body:      fmt.Sprintf("Your %s bill payment of $%s was successful", billerName, amount.StringFixed(2)),
		Type:      models.NotificationTypeBill,
		Icon:      "file-invoice-dollar",
		Color:     colorPrimary,
		Timestamp: ts,
	}
}

// SecurityAlert builds a security notification.
func SecurityAlert(userID uint, message string, ts time.Time) *models.Notification {
	return &models.Notification{
		UserID:    userID,
		Title:     "Security Alert",
		Body:      message,
		Type:      models.NotificationTypeSecurity,
		Icon:      "shield-alt",
		Color:     colorError,
		Timestamp: ts,
	}
}

// AccountUpdate builds a notification for profile or credential changes.
func AccountUpdate(userID uint, message string, ts time.Time) *models.Notification {
	return &models.Notification{
		UserID:    userID,
		Title:     "Account Update",
		Body:      message,
		Type:      models.NotificationTypeAccount,
		Icon:      "user-circle",
		Color:     colorPrimary,
		Timestamp: ts,
	}
}
