package history

import (
	"testing"

	"bankee/internal/services/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_DeliversToSubscriber(t *testing.T) {
	feed := NewFeed()
	ch, release := feed.Subscribe(1)
	defer release()

	event := ledger.Event{UserID: 1, Balance: decimal.RequireFromString("42.00")}
	feed.Publish(event)

	select {
	case got := <-ch:
		assert.Equal(t, uint(1), got.UserID)
		assert.True(t, got.Balance.Equal(event.Balance))
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestFeed_OnlyMatchingAccountReceives(t *testing.T) {
	feed := NewFeed()
	aliCh, releaseAli := feed.Subscribe(1)
	defer releaseAli()
	saraCh, releaseSara := feed.Subscribe(2)
	defer releaseSara()

	feed.Publish(ledger.Event{UserID: 1})

	assert.Len(t, aliCh, 1)
	assert.Empty(t, saraCh)
}

func TestFeed_ReleaseClosesAndRemoves(t *testing.T) {
	feed := NewFeed()
	ch, release := feed.Subscribe(1)
	require.Equal(t, 1, feed.Subscribers(1))

	release()
	assert.Equal(t, 0, feed.Subscribers(1))

	_, open := <-ch
	assert.False(t, open, "channel must be closed after release")

	// A second release is a no-op.
	release()
}

func TestFeed_SlowSubscriberDoesNotBlockPublisher(t *testing.T) {
	feed := NewFeed()
	ch, release := feed.Subscribe(1)
	defer release()

	// Overfill the buffer; extra events are dropped, not blocked on.
	for i := 0; i < subscriberBuffer+5; i++ {
		feed.Publish(ledger.Event{UserID: 1})
	}
	assert.Len(t, ch, subscriberBuffer)
}

func TestFeed_MultipleSubscribersSameAccount(t *testing.T) {
	feed := NewFeed()
	first, releaseFirst := feed.Subscribe(1)
	defer releaseFirst()
	second, releaseSecond := feed.Subscribe(1)
	defer releaseSecond()

	feed.Publish(ledger.Event{UserID: 1})

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}
