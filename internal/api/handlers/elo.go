package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kickoff-elo/kickoff-backend/internal/service"
	"github.com/kickoff-elo/kickoff-backend/pkg/logger"
)

type EloHandler struct {
	eloService *service.ELOService
}

func NewEloHandler(eloService *service.ELOService) *EloHandler {
	return &EloHandler{eloService: eloService}
}

// GetRatings godoc
// @Summary Current ELO ratings
// @Description Recomputes every player's rating from the full match history
// @Tags elo
// @Produce json
// @Success 200 {object} service.Ratings
// @Router /elo [get]
func (h *EloHandler) GetRatings(c *gin.Context) {
	ratings, err := h.eloService.ComputeRatings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute ratings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute ratings",
		})
		return
	}

	c.JSON(http.StatusOK, ratings)
}
