package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/jinwoo-p/sociogram/internal/chat"
	"github.com/jinwoo-p/sociogram/pkg/logger"
)

type WebSocketHandler struct {
	hub      *chat.Hub
	upgrader websocket.Upgrader
}

func NewWebSocketHandler(hub *chat.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// TODO: restrict origin once the frontend host is fixed
				return true
			},
		},
	}
}

// HandleWebSocket upgrades the connection and hands it to the chat hub.
// The chat identity is whatever name the client announces afterwards, not
// the authenticated account.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := chat.NewClient(h.hub, conn)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
