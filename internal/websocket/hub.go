package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"cash-trader-be/internal/pkg/logger"
)

const clusterChannel = "pos_cluster_events"

// Hub fans console state and print results out to the displays attached to
// each station. A station can have several displays open at once.
type Hub struct {
	// Registered clients map: station id -> list of clients (multi-display)
	clients map[string][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.Station] = append(h.clients[client.Station], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Display registered", map[string]interface{}{"station": client.Station})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.Station]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.Station] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.Station]) == 0 {
					delete(h.clients, client.Station)
					h.logger.Info("Hub", "Station fully disconnected", map[string]interface{}{"station": client.Station})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Send delivers a typed message to every display attached to a station, both
// on this instance and, via Redis, on any other instance.
func (h *Hub) Send(station string, msgType string, payload interface{}) {
	data, err := json.Marshal(map[string]interface{}{
		"type": msgType,
		"data": payload,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal message", map[string]interface{}{"station": station, "error": err.Error()})
		return
	}

	h.sendLocal(station, data)

	if h.rdb != nil {
		envelope, _ := json.Marshal(map[string]interface{}{
			"target_station": station,
			"message":        json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), clusterChannel, envelope)
	}
}

func (h *Hub) sendLocal(station string, data []byte) {
	h.mu.RLock()
	clients := h.clients[station]
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Display buffer full, dropping connection", map[string]interface{}{"station": station})
			close(client.Send)
			h.unregister <- client
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			TargetStation string          `json:"target_station"`
			Message       json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		h.sendLocal(payload.TargetStation, payload.Message)
	}
}
