package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kickoff-elo/kickoff-backend/internal/models"
	"github.com/kickoff-elo/kickoff-backend/internal/service"
	jwtutil "github.com/kickoff-elo/kickoff-backend/pkg/jwt"
	"github.com/kickoff-elo/kickoff-backend/pkg/logger"
)

type AuthHandler struct {
	adminService *service.AdminService
	jwtManager   *jwtutil.JWTManager
}

func NewAuthHandler(adminService *service.AdminService, jwtManager *jwtutil.JWTManager) *AuthHandler {
	return &AuthHandler{
		adminService: adminService,
		jwtManager:   jwtManager,
	}
}

// Login 관리자 로그인
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Admin password"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	token, err := h.adminService.Login(req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Admin login is not configured",
			})
		case errors.Is(err, service.ErrInvalidCredentials):
			logger.Warn("Admin login failed", "ip", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid password",
			})
		default:
			logger.Error("Failed to login", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to login",
			})
		}
		return
	}

	logger.Info("Admin logged in", "ip", c.ClientIP())

	c.JSON(http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.jwtManager.Duration().Seconds()),
	})
}
