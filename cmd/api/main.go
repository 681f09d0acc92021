package main

// @title SkateSpot Service API
// @version 1.0.0
// @description Сервис скейт-сообщества: карта спотов с модерацией, посещаемость в реальном времени, поиск с фильтрами, маркетплейс снаряжения и автоматические турниры.
// @description
// @description Основные возможности:
// @description - Добавление спотов с фото и проверкой минимальной дистанции
// @description - Обратное геокодирование адресов через Nominatim с кешем
// @description - Отметки "я на споте" с автоматическим истечением
// @description - Поиск спотов по категории, городу, статусу и радиусу
// @description - Маркетплейс снаряжения с покупкой с внутреннего баланса
// @description - Турниры с заявками трюков и таблицей лидеров

// @contact.name API Support
// @contact.email support@skatespot.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/skatespot-service/docs"
	"github.com/skatespot-service/internal/config"
	httpDelivery "github.com/skatespot-service/internal/delivery/http"
	"github.com/skatespot-service/internal/delivery/http/handler"
	"github.com/skatespot-service/internal/infrastructure/mailer"
	"github.com/skatespot-service/internal/infrastructure/nominatim"
	"github.com/skatespot-service/internal/pkg/logger"
	"github.com/skatespot-service/internal/repository/cache"
	"github.com/skatespot-service/internal/repository/postgres"
	redisRepo "github.com/skatespot-service/internal/repository/redis"
	"github.com/skatespot-service/internal/repository/storage"
	"github.com/skatespot-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting SkateSpot Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	spotRepo := postgres.NewSpotRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	itemRepo := postgres.NewItemRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)
	tournamentRepo := postgres.NewTournamentRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	geocoderRepo := nominatim.NewClient(&cfg.Geocoder, log)

	storageRepo, err := storage.NewMinioStorage(&cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	mail := mailer.New(&cfg.SMTP, log)
	geocodeUC := usecase.NewGeocodeUseCase(geocoderRepo, cacheRepo, &cfg.Geocoder, log)
	spotUC := usecase.NewSpotUseCase(spotRepo, storageRepo, streamRepo, profileRepo, geocodeUC, mail, &cfg.Discovery, log)
	attendanceUC := usecase.NewAttendanceUseCase(attendanceRepo, spotRepo, streamRepo, log)
	discoveryUC := usecase.NewDiscoveryUseCase(spotRepo, attendanceRepo, geocodeUC, &cfg.Discovery, log)
	marketUC := usecase.NewMarketUseCase(itemRepo, profileRepo, favoriteRepo, storageRepo, mail, log)
	tournamentUC := usecase.NewTournamentUseCase(tournamentRepo, log)
	commentUC := usecase.NewCommentUseCase(commentRepo, spotRepo, log)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	spotHandler := handler.NewSpotHandler(spotUC, log)
	discoveryHandler := handler.NewDiscoveryHandler(discoveryUC, log)
	attendanceHandler := handler.NewAttendanceHandler(attendanceUC, log)
	marketHandler := handler.NewMarketHandler(marketUC, log)
	tournamentHandler := handler.NewTournamentHandler(tournamentUC, log)
	commentHandler := handler.NewCommentHandler(commentUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		spotHandler,
		discoveryHandler,
		attendanceHandler,
		marketHandler,
		tournamentHandler,
		commentHandler,
		statsHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
