package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kickoff-elo/kickoff-backend/internal/models"
	"github.com/kickoff-elo/kickoff-backend/internal/service"
	"github.com/kickoff-elo/kickoff-backend/pkg/logger"
)

type PlayerHandler struct {
	playerService *service.PlayerService
}

func NewPlayerHandler(playerService *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// ListPlayers 플레이어 목록 (id 오름차순)
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	players, err := h.playerService.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list players", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list players",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"players": players,
		"total":   len(players),
	})
}

// CreatePlayer 플레이어 추가. 이미 있는 이름이면 200 과 기존 플레이어
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req models.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	player, created, err := h.playerService.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrInvalidName) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Player name must not be empty or contain , { } ( )",
			})
			return
		}
		logger.Error("Failed to create player", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create player",
		})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, player)
}

// DeletePlayer 플레이어 삭제 (관리자)
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.playerService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Player not found",
			})
			return
		}
		logger.Error("Failed to delete player", "playerId", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete player",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
