package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kickoff-elo/kickoff-backend/internal/api"
	"github.com/kickoff-elo/kickoff-backend/internal/config"
	"github.com/kickoff-elo/kickoff-backend/internal/websocket"
	"github.com/kickoff-elo/kickoff-backend/pkg/database"
	"github.com/kickoff-elo/kickoff-backend/pkg/distributed"
	"github.com/kickoff-elo/kickoff-backend/pkg/logger"
	"github.com/kickoff-elo/kickoff-backend/pkg/ratelimit"
	"github.com/redis/go-redis/v9"
)

const (
	schemaLockKey   = "kickoff:lock:schema"
	loginLimit      = 5
	loginWindow     = time.Minute
	startupDeadline = time.Minute
)

func main() {
	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 로거 초기화
	logger.Init(cfg.LogLevel, cfg.Env)
	defer logger.Sync()

	logger.Info("Starting Kickoff ELO Backend",
		"port", cfg.Port,
		"env", cfg.Env,
	)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupDeadline)
	defer cancelStartup()

	// 데이터베이스 연결
	db, err := database.Connect(startupCtx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Redis (선택)
	redisClient := connectRedis(startupCtx, cfg.RedisURL)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// 스키마 초기화. 여러 인스턴스가 동시에 뜰 수 있으므로 Redis 락 아래에서 실행
	if err := bootstrapSchema(startupCtx, db, redisClient, cfg.DefaultKFactor); err != nil {
		logger.Fatal("Failed to bootstrap schema", "error", err)
	}

	// 로그인 Rate Limiter
	var loginLimiter ratelimit.Limiter = ratelimit.NewMemoryLimiter(loginLimit, loginWindow)
	if redisClient != nil {
		loginLimiter = ratelimit.NewRedisLimiter(redisClient, "kickoff:ratelimit:login:", loginLimit, loginWindow)
	}

	// WebSocket Hub 시작
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := websocket.NewHub(logger.L())
	go hub.Run(hubCtx)

	router, err := api.SetupRouter(cfg, db, hub, loginLimiter)
	if err != nil {
		logger.Fatal("Failed to setup router", "error", err)
	}

	// 서버 설정
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 서버 시작 (고루틴)
	go func() {
		logger.Info("Server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown 대기
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// 10초 타임아웃으로 종료
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	stopHub()

	logger.Info("Server exited")
}

// connectRedis REDIS_URL 이 비어 있거나 연결 실패 시 nil (Redis 기능 없이 동작)
func connectRedis(ctx context.Context, redisURL string) *redis.Client {
	if redisURL == "" {
		logger.Info("REDIS_URL not set, using in-process rate limiting")
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Warn("Invalid REDIS_URL, continuing without Redis", "error", err)
		return nil
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis not reachable, continuing without Redis", "addr", opts.Addr, "error", err)
		client.Close()
		return nil
	}

	logger.Info("Redis connection established", "addr", opts.Addr)
	return client
}

func bootstrapSchema(ctx context.Context, db *database.DB, redisClient *redis.Client, defaultKFactor int) error {
	ensure := func(ctx context.Context) error {
		return db.EnsureSchema(ctx, defaultKFactor)
	}

	if redisClient == nil {
		return ensure(ctx)
	}

	locks := distributed.NewLockManager(redisClient)
	logger.Debug("Acquiring schema lock", "owner", locks.Owner())
	return locks.WithLock(ctx, schemaLockKey, 30*time.Second, 60, 500*time.Millisecond, ensure)
}
