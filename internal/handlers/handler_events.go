package handlers

import (
	"log/slog"
	"net/http"

	"github.com/agarrido2001/XaveMarket/internal/middleware"
	"github.com/gin-gonic/gin"
)

// EventStreamer upgrades a request to a websocket carrying market events.
type EventStreamer interface {
	ServeWS(w http.ResponseWriter, r *http.Request) error
}

// streamEvents godoc
// @Summary Stream market events
// @Description Upgrades to a websocket that receives every listing change and purchase as JSON envelopes
// @Tags events
// @Success 101 "Switching Protocols"
// @Router /events/stream [get]
func streamEvents(streamer EventStreamer) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		if err := streamer.ServeWS(c.Writer, c.Request); err != nil {
			// The upgrader has already answered the client.
			logger.Warn("Event stream ended with error", slog.String("error", err.Error()))
		}
	}
}
