package chat

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jinwoo-p/sociogram/pkg/logger"
)

// GlobalRoom is the reserved routing target meaning "everyone announced".
const GlobalRoom = "Global Chat"

type EventType string

const (
	TypeAnnounce EventType = "announce"
	TypeChat     EventType = "chat"
	TypePresence EventType = "presence_update"
)

// Message is the wire envelope for both inbound events and outbound
// deliveries.
type Message struct {
	Type      EventType `json:"type"`
	Name      string    `json:"name,omitempty"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to,omitempty"`
	Body      string    `json:"body,omitempty"`
	Names     []string  `json:"names,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type inbound struct {
	client *Client
	msg    *Message
}

// Hub owns the presence directory and routes chat events. Connection
// lifecycle and chat events are processed one at a time on the Run loop,
// so the directory is never mutated concurrently. The mutex only covers
// reads coming in from HTTP handlers.
type Hub struct {
	directory *Directory

	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	events     chan inbound

	mu sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(directory *Directory) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		directory:  directory,
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan inbound, 64),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case ev := <-h.events:
			h.handleEvent(ev.client, ev.msg)
		}
	}
}

func (h *Hub) Stop() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		close(client.Send)
		if client.Conn != nil {
			client.Conn.Close()
		}
	}
	h.clients = make(map[*Client]struct{})
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// OnlineNames is the read-side view for HTTP handlers.
func (h *Hub) OnlineNames() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.directory.Names()
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = struct{}{}
	logger.Debug("chat connection opened", "client", client.ID)
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)

	if h.directory.Remove(client) {
		logger.Info("chat user disconnected", "name", client.name)
		h.broadcastPresence()
	}
}

func (h *Hub) handleEvent(client *Client, msg *Message) {
	switch msg.Type {
	case TypeAnnounce:
		h.handleAnnounce(client, msg.Name)
	case TypeChat:
		h.handleChat(msg)
	default:
		logger.Debug("unknown chat event", "type", msg.Type)
	}
}

func (h *Hub) handleAnnounce(client *Client, name string) {
	if name == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// First announcement wins; a duplicate while the original is still
	// connected is dropped.
	if !h.directory.Announce(name, client) {
		return
	}
	client.name = name
	logger.Info("chat user announced", "name", name)
	h.broadcastPresence()
}

// handleChat fans a message out by the routing rules: the global room
// reaches every announced connection including the sender; a direct
// message goes to the recipient and echoes back to the sender so their
// own UI shows it. Either side missing from the directory is skipped
// silently.
func (h *Hub) handleChat(msg *Message) {
	if msg.To == "" {
		return
	}
	msg.Timestamp = time.Now()

	data, err := json.Marshal(msg)
	if err != nil {
		logger.Error("failed to marshal chat message", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if msg.To == GlobalRoom {
		for _, client := range h.directory.Announced() {
			h.trySend(client, data)
		}
		return
	}

	if sender, ok := h.directory.Lookup(msg.From); ok {
		h.trySend(sender, data)
	}
	if recipient, ok := h.directory.Lookup(msg.To); ok {
		h.trySend(recipient, data)
	}
}

// broadcastPresence pushes the current name list to every connection.
// Callers hold h.mu.
func (h *Hub) broadcastPresence() {
	msg := Message{
		Type:      TypePresence,
		Names:     h.directory.Names(),
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		logger.Error("failed to marshal presence update", "error", err)
		return
	}

	for client := range h.clients {
		h.trySend(client, data)
	}
}

func (h *Hub) trySend(client *Client, data []byte) {
	select {
	case client.Send <- data:
	default:
		logger.Warn("client send queue full, dropping message", "client", client.ID)
	}
}
