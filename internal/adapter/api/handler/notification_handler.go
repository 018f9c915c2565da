package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"jalsetu/internal/adapter/api/middleware"
	"jalsetu/internal/infrastructure/notify"
	"jalsetu/pkg/errors"
)

// NotificationHandler upgrades dashboard connections and hooks them into the
// notify hub. The socket is one-way: clients only receive lifecycle events.
type NotificationHandler struct {
	hub            *notify.Hub
	authMiddleware *middleware.AuthMiddleware
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // restrict in production
	},
}

func NewNotificationHandler(hub *notify.Hub, authMiddleware *middleware.AuthMiddleware) *NotificationHandler {
	return &NotificationHandler{
		hub:            hub,
		authMiddleware: authMiddleware,
	}
}

// Subscribe authenticates via the token query parameter since browsers
// cannot set headers on WebSocket upgrades.
func (h *NotificationHandler) Subscribe(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return errors.Unauthorized("Authentication required", nil)
	}

	uid, err := h.authMiddleware.GetUIDFromToken(c.Request().Context(), token)
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &notify.Client{
		ActorID: uid,
		Conn:    conn,
		Send:    make(chan []byte, 256),
	}

	h.hub.Register <- client

	go client.ReadPump(h.hub)
	go client.WritePump()

	return nil
}
