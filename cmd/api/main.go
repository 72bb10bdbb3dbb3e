package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"travelpal/internal/cache"
	"travelpal/internal/config"
	"travelpal/internal/db"
	"travelpal/internal/email"
	apihttp "travelpal/internal/http"
	"travelpal/internal/llm"
	"travelpal/internal/places"
	"travelpal/internal/repository"
	"travelpal/internal/service"
	"travelpal/internal/weather"

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

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	chatRepo := repository.NewPgChatRepository(pool)
	messageRepo := repository.NewPgMessageRepository(pool)
	itineraryRepo := repository.NewPgItineraryRepository(pool)
	waitlistRepo := repository.NewPgWaitlistRepository(pool)
	userRepo := repository.NewPgUserRepository(pool)

	var adapterCache *cache.Cache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, adapter cache disabled", zap.Error(err))
		} else {
			adapterCache = cache.New(redisClient, 30*time.Minute)
		}
		cancel()
	}

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.OpenAIAPIKey, cfg.LLMModel, logger)
	weatherClient := weather.NewClient(cfg.WeatherAPIKey, adapterCache, logger)
	placesClient := places.NewClient(cfg.PlacesAPIKey, adapterCache, logger)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured, login disabled")
	}

	chatSvc := service.NewChatService(logger, chatRepo, messageRepo, llmClient)
	itinerarySvc := service.NewItineraryService(logger, llmClient)
	waitlistSvc := service.NewWaitlistService(logger, waitlistRepo, emailSender)
	userSvc := service.NewUserService(logger, userRepo)

	healthH := apihttp.NewHealthHandler(logger, pool)
	waitlistH := apihttp.NewWaitlistHandler(logger, waitlistSvc)
	chatH := apihttp.NewChatHandler(logger, chatSvc)
	itineraryH := apihttp.NewItineraryHandler(logger, itineraryRepo, itinerarySvc)
	weatherH := apihttp.NewWeatherHandler(logger, weatherClient)
	placesH := apihttp.NewPlacesHandler(logger, placesClient)
	userH := apihttp.NewUserHandler(logger, userSvc, jwtSvc)

	router := apihttp.NewRouter(logger, jwtSvc, healthH, waitlistH, chatH, itineraryH, weatherH, placesH, userH)

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
