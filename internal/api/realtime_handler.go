package api

import (
	"alcyxob/workout-tracker/internal/logging"
	"alcyxob/workout-tracker/internal/realtime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
	logger   logging.Logger
}

func NewRealtimeHandler(hub *realtime.Hub, logger logging.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
		},
		logger: logger,
	}
}

// WorkoutsWS streams workout change events until the client disconnects.
func (h *RealtimeHandler) WorkoutsWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.logger.Debugf("websocket upgrade: %v", err)
		return
	}
	h.hub.Serve(conn)
}
