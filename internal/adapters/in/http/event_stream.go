package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"canteen/internal/core/domain/events"

	"github.com/labstack/echo/v4"
)

// Subscriber hands out event channels for live order updates. Cancelling the
// returned function releases the subscription.
type Subscriber interface {
	Subscribe() (<-chan events.Event, func())
}

// StreamEvents handles GET /api/v1/events - a Server-Sent Events stream of
// order lifecycle updates. The connection stays open until the client goes
// away or the broadcaster shuts down.
func (s *Server) StreamEvents(ctx echo.Context) error {
	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	eventCh, cancel := s.subscriber.Subscribe()
	defer cancel()

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case event, ok := <-eventCh:
			if !ok {
				return nil
			}

			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			if _, err = fmt.Fprintf(resp, "event: %s\ndata: %s\n\n", event.Name, data); err != nil {
				return nil
			}
			resp.Flush()
		}
	}
}
