package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kickoff-elo/kickoff-backend/internal/models"
	"github.com/kickoff-elo/kickoff-backend/internal/service"
	"github.com/kickoff-elo/kickoff-backend/pkg/logger"
)

type MatchHandler struct {
	matchService *service.MatchService
}

func NewMatchHandler(matchService *service.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// ListMatches 매치 목록 (최신순)
func (h *MatchHandler) ListMatches(c *gin.Context) {
	matches, err := h.matchService.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list matches", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list matches",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matches": matches,
		"total":   len(matches),
	})
}

// CreateMatch 매치 결과 기록
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	match, err := h.matchService.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyTeam) ||
			errors.Is(err, service.ErrInvalidName) ||
			errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		logger.Error("Failed to create match", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create match",
		})
		return
	}

	c.JSON(http.StatusCreated, match)
}

// DeleteMatch 매치 삭제 (관리자)
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.matchService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Match not found",
			})
			return
		}
		logger.Error("Failed to delete match", "matchId", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete match",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
