package notification

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bankee/internal/models"
	"bankee/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	ts := time.Now().UTC()
	amount := decimal.RequireFromString("25.50")

	sent := MoneySent(1, amount, "Sara Ahmed", ts)
	assert.Equal(t, "Money Sent", sent.Title)
	assert.Equal(t, "You sent $25.50 to Sara Ahmed", sent.Body)
	assert.Equal(t, models.NotificationTypeTransaction, sent.Type)
	assert.NotEmpty(t, sent.Icon)
	assert.NotEmpty(t, sent.Color)

	received := MoneyReceived(2, amount, "Ali Khan", ts)
	assert.Equal(t, "You received $25.50 from Ali Khan", received.Body)
	assert.NotEqual(t, sent.Color, received.Color)

	bill := BillPayment(1, "K-Electric", amount, ts)
	assert.Equal(t, models.NotificationTypeBill, bill.Type)
	assert.Contains(t, bill.Body, "K-Electric")

	sub := SubscriptionPurchased(1, "Netflix", amount, ts)
	assert.Equal(t, models.NotificationTypeSubscription, sub.Type)
	assert.Contains(t, sub.Body, "Netflix")

	alert := SecurityAlert(1, "New device sign-in", ts)
	assert.Equal(t, models.NotificationTypeSecurity, alert.Type)
	assert.Equal(t, "New device sign-in", alert.Body)
}

func TestService_ListCappedAndOrdered(t *testing.T) {
	db := repositories.SetupTestDB(t)
	user := repositories.CreateTestUser(t, db, "Ali Khan", "ali@example.com", "1111222233334444", decimal.Zero)
	svc := NewService(repositories.NewNotificationRepository(db))

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < FeedLimit+5; i++ {
		err := svc.Create(context.Background(), &models.Notification{
			UserID:    user.ID,
			Title:     "Account Update",
			Body:      fmt.Sprintf("update %d", i),
			Type:      models.NotificationTypeAccount,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	list, err := svc.List(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, list, FeedLimit)
	assert.Equal(t, fmt.Sprintf("update %d", FeedLimit+4), list[0].Body, "newest first")
}

func TestService_MarkAsReadAndUnreadCount(t *testing.T) {
	db := repositories.SetupTestDB(t)
	ali := repositories.CreateTestUser(t, db, "Ali Khan", "ali@example.com", "1111222233334444", decimal.Zero)
	sara := repositories.CreateTestUser(t, db, "Sara Ahmed", "sara@example.com", "5555666677778888", decimal.Zero)
	svc := NewService(repositories.NewNotificationRepository(db))

	n := AccountUpdate(ali.ID, "welcome", time.Now().UTC())
	require.NoError(t, svc.Create(context.Background(), n))

	count, err := svc.UnreadCount(context.Background(), ali.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// Another user cannot mark it read.
	err = svc.MarkAsRead(context.Background(), sara.ID, n.ID)
	assert.ErrorIs(t, err, repositories.ErrNotificationNotFound)

	require.NoError(t, svc.MarkAsRead(context.Background(), ali.ID, n.ID))
	count, err = svc.UnreadCount(context.Background(), ali.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
