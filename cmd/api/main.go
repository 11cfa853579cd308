package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/PalakRajput2/real-estate/internal/config"
	"github.com/PalakRajput2/real-estate/internal/db"
	apihttp "github.com/PalakRajput2/real-estate/internal/http"
	"github.com/PalakRajput2/real-estate/internal/repository"
	"github.com/PalakRajput2/real-estate/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := db.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	postRepo := repository.NewPgPostRepository(pool)
	savedRepo := repository.NewPgSavedPostRepository(pool)
	chatRepo := repository.NewPgChatRepository(pool)

	var loginLimiter service.LoginRateLimiter = service.NewLoginRateLimiter(time.Minute, 10)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			loginLimiter = service.NewRedisLoginRateLimiter(redisClient, time.Minute, 10)
		}
		cancel()
	}

	tokenSvc := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLDays)*24*time.Hour)
	authSvc := service.NewAuthService(logger, userRepo, loginLimiter)
	userSvc := service.NewUserService(logger, userRepo)
	postSvc := service.NewPostService(logger, postRepo)
	savedSvc := service.NewSavedPostService(logger, savedRepo)
	notificationSvc := service.NewNotificationService(chatRepo)

	authHandler := apihttp.NewAuthHandler(logger, authSvc, tokenSvc)
	userHandler := apihttp.NewUserHandler(logger, userSvc, postSvc, savedSvc, notificationSvc)
	postHandler := apihttp.NewPostHandler(logger, postSvc, savedSvc, tokenSvc)
	router := apihttp.NewRouter(logger, tokenSvc, authHandler, userHandler, postHandler, cfg.CORSOrigins)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
