package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/skatespot-service/internal/config"
	"github.com/skatespot-service/internal/infrastructure/nominatim"
	"github.com/skatespot-service/internal/pkg/logger"
	"github.com/skatespot-service/internal/repository/cache"
	"github.com/skatespot-service/internal/repository/postgres"
	redisRepo "github.com/skatespot-service/internal/repository/redis"
	"github.com/skatespot-service/internal/usecase"
	"github.com/skatespot-service/internal/worker"
	attendanceWorker "github.com/skatespot-service/internal/worker/attendance"
	geocodeWorker "github.com/skatespot-service/internal/worker/geocode"
	tournamentWorker "github.com/skatespot-service/internal/worker/tournament"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting SkateSpot workers")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Duration("sweep_interval", cfg.Worker.SweepInterval),
		zap.Duration("tournament_interval", cfg.Worker.TournamentInterval))

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

	// 5. Initialize repositories
	spotRepo := postgres.NewSpotRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	tournamentRepo := postgres.NewTournamentRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	geocoderRepo := nominatim.NewClient(&cfg.Geocoder, log)

	// 6. Initialize use cases
	geocodeUC := usecase.NewGeocodeUseCase(geocoderRepo, cacheRepo, &cfg.Geocoder, log)
	attendanceUC := usecase.NewAttendanceUseCase(attendanceRepo, spotRepo, streamRepo, log)
	tournamentUC := usecase.NewTournamentUseCase(tournamentRepo, log)

	// 7. Initialize workers
	prefetch := geocodeWorker.NewPrefetchWorker(
		streamRepo,
		spotRepo,
		geocodeUC,
		cfg.Worker.ConsumerGroup,
		cfg.Discovery.ChangeDebounceWindow,
		log,
	)
	sweeper := attendanceWorker.NewSweeper(attendanceUC, cfg.Worker.SweepInterval, log)
	scheduler := tournamentWorker.NewScheduler(tournamentUC, cfg.Worker.TournamentInterval, log)

	// 8. Create worker manager and register workers
	manager := worker.NewManager(log)
	manager.Register(prefetch)
	manager.Register(sweeper)
	manager.Register(scheduler)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := manager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
