package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kickoff-elo/kickoff-backend/internal/api/middleware"
	"github.com/kickoff-elo/kickoff-backend/internal/websocket"
)

type WebSocketHandler struct {
	hub            *websocket.Hub
	allowedOrigins []string
}

func NewWebSocketHandler(hub *websocket.Hub, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		hub:            hub,
		allowedOrigins: allowedOrigins,
	}
}

// HandleWebSocket 변경 이벤트 구독 (player/match/settings)
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	h.hub.ServeWs(c.Writer, c.Request, h.checkOrigin)
}

// checkOrigin Origin 헤더가 없으면 (non-browser) 허용
func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return middleware.OriginAllowed(h.allowedOrigins, origin)
}
