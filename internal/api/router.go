package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/kickoff-elo/kickoff-backend/internal/api/handlers"
	"github.com/kickoff-elo/kickoff-backend/internal/api/middleware"
	"github.com/kickoff-elo/kickoff-backend/internal/config"
	"github.com/kickoff-elo/kickoff-backend/internal/repository"
	"github.com/kickoff-elo/kickoff-backend/internal/service"
	"github.com/kickoff-elo/kickoff-backend/internal/websocket"
	"github.com/kickoff-elo/kickoff-backend/pkg/database"
	jwtutil "github.com/kickoff-elo/kickoff-backend/pkg/jwt"
	"github.com/kickoff-elo/kickoff-backend/pkg/ratelimit"
)

// Services 라우터가 사용하는 서비스 묶음
type Services struct {
	Players     *service.PlayerService
	Clubs       *service.ClubService
	Matches     *service.MatchService
	Leaderboard *service.LeaderboardService
	ELO         *service.ELOService
	Settings    *service.SettingsService
	Admin       *service.AdminService
}

// SetupRouter DB 기반 Repository/Service 초기화 후 라우터 생성
func SetupRouter(cfg *config.Config, db *database.DB, hub *websocket.Hub, loginLimiter ratelimit.Limiter) (*gin.Engine, error) {
	jwtManager := jwtutil.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Repository 초기화
	playerRepo := repository.NewPlayerRepository(db)
	clubRepo := repository.NewClubRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	leaderboardRepo := repository.NewLeaderboardRepository(db)

	// Service 초기화
	adminService, err := service.NewAdminService(cfg.AdminPasswordHash, cfg.AdminPassword, jwtManager)
	if err != nil {
		return nil, fmt.Errorf("failed to init admin service: %w", err)
	}
	settingsService := service.NewSettingsService(settingsRepo, cfg.DefaultKFactor, hub)

	svc := &Services{
		Players:     service.NewPlayerService(playerRepo, hub),
		Clubs:       service.NewClubService(clubRepo),
		Matches:     service.NewMatchService(matchRepo, hub),
		Leaderboard: service.NewLeaderboardService(leaderboardRepo),
		ELO:         service.NewELOService(playerRepo, matchRepo, settingsService),
		Settings:    settingsService,
		Admin:       adminService,
	}

	return NewRouter(cfg, svc, jwtManager, hub, loginLimiter), nil
}

// NewRouter 라우트 및 미들웨어 등록
func NewRouter(cfg *config.Config, svc *Services, jwtManager *jwtutil.JWTManager, hub *websocket.Hub, loginLimiter ratelimit.Limiter) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 전역 미들웨어
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Handler 초기화
	authHandler := handlers.NewAuthHandler(svc.Admin, jwtManager)
	playerHandler := handlers.NewPlayerHandler(svc.Players)
	clubHandler := handlers.NewClubHandler(svc.Clubs)
	matchHandler := handlers.NewMatchHandler(svc.Matches)
	leaderboardHandler := handlers.NewLeaderboardHandler(svc.Leaderboard)
	eloHandler := handlers.NewEloHandler(svc.ELO)
	settingsHandler := handlers.NewSettingsHandler(svc.Settings)

	adminOnly := middleware.AdminAuth(jwtManager)

	// Health check
	router.GET("/health", handlers.HealthCheck)

	// API v1
	v1 := router.Group("/api/v1")
	{
		if hub != nil {
			wsHandler := handlers.NewWebSocketHandler(hub, cfg.CORSAllowedOrigins)
			v1.GET("/ws", wsHandler.HandleWebSocket)
		}

		// Auth routes
		auth := v1.Group("/auth")
		{
			if loginLimiter != nil {
				auth.POST("/login", middleware.RateLimit(loginLimiter, middleware.IPKeyFunc), authHandler.Login)
			} else {
				auth.POST("/login", authHandler.Login)
			}
		}

		// Player routes
		players := v1.Group("/players")
		{
			players.GET("", playerHandler.ListPlayers)
			players.POST("", playerHandler.CreatePlayer)
		}

		v1.GET("/clubs", clubHandler.ListClubs)

		// Match routes
		matches := v1.Group("/matches")
		{
			matches.GET("", matchHandler.ListMatches)
			matches.POST("", matchHandler.CreateMatch)
		}

		// Leaderboard routes
		leaderboard := v1.Group("/leaderboard")
		{
			leaderboard.GET("/players", leaderboardHandler.GetPlayerLeaderboard)
			leaderboard.GET("/teams", leaderboardHandler.GetTeamLeaderboard)
			leaderboard.GET("/duos", leaderboardHandler.GetDuoLeaderboard)
		}

		v1.GET("/elo", eloHandler.GetRatings)

		// Settings routes
		settings := v1.Group("/settings")
		{
			settings.GET("/elo", settingsHandler.GetEloSettings)
			settings.PUT("/elo", adminOnly, settingsHandler.UpdateEloSettings)
		}

		// Admin routes
		admin := v1.Group("/admin", adminOnly)
		{
			admin.DELETE("/players/:id", playerHandler.DeletePlayer)
			admin.DELETE("/matches/:id", matchHandler.DeleteMatch)
		}
	}

	return router
}
