// Package websocket pushes room mutation events to connected members. The hub
// owns all client registrations; handlers publish events after a successful
// write and every client subscribed to the room receives them.
package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
)

type Hub struct {
	rooms      map[uuid.UUID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Event
	stop       chan struct{}
	done       chan struct{}
	stopped    bool
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Event, 64),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for _, clients := range h.rooms {
				for client := range clients {
					client.Close()
				}
			}
			h.rooms = make(map[uuid.UUID]map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				if h.rooms[client.roomID] == nil {
					h.rooms[client.roomID] = make(map[*Client]bool)
				}
				h.rooms[client.roomID][client] = true
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.roomID]; ok {
				if clients[client] {
					delete(clients, client)
					client.Close()
				}
				if len(clients) == 0 {
					delete(h.rooms, client.roomID)
				}
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				log.Printf("ERROR [websocket.Hub] failed to marshal event: %v", err)
				continue
			}
			h.mu.Lock()
			for client := range h.rooms[event.RoomID] {
				select {
				case client.send <- data:
				default:
					// Slow consumer, drop it
					delete(h.rooms[event.RoomID], client)
					client.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

// Stop gracefully shuts down the hub and disconnects all clients.
func (h *Hub) Stop() {
	close(h.stop)
	<-h.done
}

// Publish queues an event for every client subscribed to the room. Safe to
// call from any goroutine; events after Stop are discarded.
func (h *Hub) Publish(roomID uuid.UUID, eventType string, payload any) {
	event := &Event{Type: eventType, RoomID: roomID, Payload: payload}
	select {
	case h.broadcast <- event:
	case <-h.done:
	}
}
