package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"bankee/internal/models"
	"bankee/internal/services/history"
	"bankee/internal/services/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// WatchHandler streams committed balance changes to the client as
// server-sent events, so the wallet screen updates without polling.
type WatchHandler struct {
	feed *history.Feed
}

func NewWatchHandler(feed *history.Feed) *WatchHandler {
	return &WatchHandler{feed: feed}
}

// heartbeatInterval keeps intermediaries from timing out an idle stream and
// lets the writer notice a dropped client.
const heartbeatInterval = 30 * time.Second

// Stream handles GET /api/watch. The subscription is released when the
// client disconnects.
func (h *WatchHandler) Stream(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	events, release := h.feed.Subscribe(claims.UserID)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer release()
		writeEvents(w, events, heartbeatInterval)
	}))
	return nil
}

// writeEvents forwards feed events as SSE data frames until the channel
// closes or a write fails.
func writeEvents(w *bufio.Writer, events <-chan ledger.Event, heartbeat time.Duration) {
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(watchView(ev))
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			if w.Flush() != nil {
				return
			}
		case <-ticker.C:
			fmt.Fprint(w, ": ping\n\n")
			if w.Flush() != nil {
				return
			}
		}
	}
}

func watchView(ev ledger.Event) fiber.Map {
	v := fiber.Map{"balance": ev.Balance.StringFixed(2)}
	if ev.Transaction != nil {
		v["transaction"] = transactionView(ev.Transaction)
	}
	return v
}
