package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kickoff-elo/kickoff-backend/internal/service"
	"github.com/kickoff-elo/kickoff-backend/pkg/logger"
)

const startTimeLayout = "2006-01-02"

type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// parseStartTime start_time 쿼리 (YYYY-MM-DD, UTC 자정). 없으면 zero time = 전체 기간
func parseStartTime(c *gin.Context) (time.Time, bool) {
	raw := c.Query("start_time")
	if raw == "" {
		return time.Time{}, true
	}

	since, err := time.Parse(startTimeLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "start_time must be YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return since, true
}

// GetPlayerLeaderboard 플레이어 승률 리더보드
func (h *LeaderboardHandler) GetPlayerLeaderboard(c *gin.Context) {
	since, ok := parseStartTime(c)
	if !ok {
		return
	}

	standings, err := h.leaderboardService.Players(c.Request.Context(), since)
	if err != nil {
		logger.Error("Failed to get player leaderboard", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get leaderboard",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": standings,
		"total":       len(standings),
	})
}

// GetTeamLeaderboard 클럽 리더보드
func (h *LeaderboardHandler) GetTeamLeaderboard(c *gin.Context) {
	since, ok := parseStartTime(c)
	if !ok {
		return
	}

	standings, err := h.leaderboardService.Clubs(c.Request.Context(), since)
	if err != nil {
		logger.Error("Failed to get team leaderboard", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get leaderboard",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": standings,
		"total":       len(standings),
	})
}

// GetDuoLeaderboard 라인업 리더보드
func (h *LeaderboardHandler) GetDuoLeaderboard(c *gin.Context) {
	since, ok := parseStartTime(c)
	if !ok {
		return
	}

	standings, err := h.leaderboardService.Duos(c.Request.Context(), since)
	if err != nil {
		logger.Error("Failed to get duo leaderboard", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get leaderboard",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": standings,
		"total":       len(standings),
	})
}
