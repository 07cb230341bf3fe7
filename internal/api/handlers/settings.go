package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kickoff-elo/kickoff-backend/internal/models"
	"github.com/kickoff-elo/kickoff-backend/internal/service"
	"github.com/kickoff-elo/kickoff-backend/pkg/logger"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
}

func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetEloSettings 현재 K-factor
func (h *SettingsHandler) GetEloSettings(c *gin.Context) {
	kFactor, err := h.settingsService.GetKFactor(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get elo settings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get settings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"kFactor": kFactor,
	})
}

// UpdateEloSettings K-factor 변경 (관리자)
func (h *SettingsHandler) UpdateEloSettings(c *gin.Context) {
	var req models.UpdateEloSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	settings, err := h.settingsService.UpdateKFactor(c.Request.Context(), req.KFactor)
	if err != nil {
		if errors.Is(err, service.ErrInvalidKFactor) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("kFactor must be between %d and %d", service.MinKFactor, service.MaxKFactor),
			})
			return
		}
		logger.Error("Failed to update elo settings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update settings",
		})
		return
	}

	c.JSON(http.StatusOK, settings)
}
