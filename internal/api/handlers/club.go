package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kickoff-elo/kickoff-backend/internal/service"
	"github.com/kickoff-elo/kickoff-backend/pkg/logger"
)

type ClubHandler struct {
	clubService *service.ClubService
}

func NewClubHandler(clubService *service.ClubService) *ClubHandler {
	return &ClubHandler{clubService: clubService}
}

// ListClubs 클럽 목록 (tier, 이름 순)
func (h *ClubHandler) ListClubs(c *gin.Context) {
	clubs, err := h.clubService.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list clubs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list clubs",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clubs": clubs,
	})
}
