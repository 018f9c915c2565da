package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"jalsetu/internal/domain/entity"
	"jalsetu/pkg/logger"
)

// Client is one connected dashboard session.
type Client struct {
	ActorID string
	Conn    *websocket.Conn
	Send    chan []byte
}

// Hub fans complaint lifecycle events out to connected dashboards. Events
// are published after the owning operation has committed; a slow client is
// dropped rather than allowed to block the rest.
type Hub struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	directed   chan directedMessage
	mutex      sync.RWMutex
}

// directedMessage targets a single connected actor instead of the whole
// broadcast set.
type directedMessage struct {
	actorID string
	payload []byte
}

type complaintEvent struct {
	Type      string            `json:"type"`
	Complaint *entity.Complaint `json:"complaint"`
	Timestamp time.Time         `json:"timestamp"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		directed:   make(chan directedMessage, 64),
	}
}

// Start runs the hub's main loop in a goroutine.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				h.clients[client.ActorID] = client
				h.mutex.Unlock()
				logger.Info("notification client registered: %s", client.ActorID)

			case client := <-h.Unregister:
				h.mutex.Lock()
				if _, ok := h.clients[client.ActorID]; ok {
					delete(h.clients, client.ActorID)
					close(client.Send)
				}
				h.mutex.Unlock()
				logger.Info("notification client unregistered: %s", client.ActorID)

			case message := <-h.broadcast:
				h.mutex.Lock()
				for id, client := range h.clients {
					select {
					case client.Send <- message:
					default:
						close(client.Send)
						delete(h.clients, id)
					}
				}
				h.mutex.Unlock()

			case message := <-h.directed:
				h.mutex.Lock()
				if client, ok := h.clients[message.actorID]; ok {
					select {
					case client.Send <- message.payload:
					default:
						close(client.Send)
						delete(h.clients, message.actorID)
					}
				}
				h.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// PublishComplaintEvent satisfies usecase.Notifier. Marshalling failures
// are logged and swallowed; notification is best effort.
func (h *Hub) PublishComplaintEvent(eventType string, complaint *entity.Complaint) {
	payload, err := json.Marshal(complaintEvent{
		Type:      eventType,
		Complaint: complaint,
		Timestamp: time.Now(),
	})
	if err != nil {
		logger.Warn("failed to marshal complaint event: %v", err)
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		logger.Warn("notification buffer full, dropping %s event", eventType)
	}
}

// PublishComplaintEventTo delivers one event to a single actor, if that
// actor is connected. Delivery runs through the hub loop so it can never
// race a concurrent client drop.
func (h *Hub) PublishComplaintEventTo(actorID, eventType string, complaint *entity.Complaint) {
	payload, err := json.Marshal(complaintEvent{
		Type:      eventType,
		Complaint: complaint,
		Timestamp: time.Now(),
	})
	if err != nil {
		logger.Warn("failed to marshal complaint event: %v", err)
		return
	}

	select {
	case h.directed <- directedMessage{actorID: actorID, payload: payload}:
	default:
		logger.Warn("notification buffer full, dropping %s event for %s", eventType, actorID)
	}
}

// ReadPump drains the connection until it closes; inbound frames are
// ignored, the socket is notify-only.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("websocket read error: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued messages to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("websocket write error: %v", err)
			return
		}
	}
}
