package websocket

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Hub 구독자 연결 관리 및 변경 이벤트 브로드캐스트
type Hub struct {
	// 구독자 id -> *Client
	clients map[string]*Client
	mu      sync.RWMutex

	broadcast chan *Message

	register   chan *Client
	unregister chan *Client

	// Run 종료 시 닫힘
	done chan struct{}

	logger *zap.Logger
}

// Message WebSocket 메시지
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// NewHub Hub 생성
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan *Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run Hub 실행, ctx가 끝나면 모든 연결을 닫고 반환
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// ClientCount 현재 연결된 구독자 수
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.id] = client
	h.logger.Info("WebSocket client registered",
		zap.String("clientId", client.id),
		zap.Int("totalClients", len(h.clients)))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.clients[client.id]; exists {
		delete(h.clients, client.id)
		close(client.send)
		h.logger.Info("WebSocket client unregistered",
			zap.String("clientId", client.id),
			zap.Int("totalClients", len(h.clients)))
	}
}

func (h *Hub) broadcastMessage(message *Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, client := range h.clients {
		select {
		case client.send <- message:
		default:
			// 느린 구독자는 끊는다
			h.logger.Warn("Client send channel full, dropping client",
				zap.String("clientId", id))
			delete(h.clients, id)
			close(client.send)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, client := range h.clients {
		delete(h.clients, id)
		close(client.send)
	}
}

// Broadcast 모든 구독자에게 메시지 전송 (큐가 가득 차면 버림)
func (h *Hub) Broadcast(msgType string, payload interface{}) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- &Message{Type: msgType, Payload: payload}:
	default:
		h.logger.Warn("Broadcast queue full, dropping event", zap.String("type", msgType))
	}
}
