package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/config"
	"github.com/skatespot-service/internal/delivery/http/handler"
	"github.com/skatespot-service/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	spotHandler       *handler.SpotHandler
	discoveryHandler  *handler.DiscoveryHandler
	attendanceHandler *handler.AttendanceHandler
	marketHandler     *handler.MarketHandler
	tournamentHandler *handler.TournamentHandler
	commentHandler    *handler.CommentHandler
	statsHandler      *handler.StatsHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	spotHandler *handler.SpotHandler,
	discoveryHandler *handler.DiscoveryHandler,
	attendanceHandler *handler.AttendanceHandler,
	marketHandler *handler.MarketHandler,
	tournamentHandler *handler.TournamentHandler,
	commentHandler *handler.CommentHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "SkateSpot Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		spotHandler:       spotHandler,
		discoveryHandler:  discoveryHandler,
		attendanceHandler: attendanceHandler,
		marketHandler:     marketHandler,
		tournamentHandler: tournamentHandler,
		commentHandler:    commentHandler,
		statsHandler:      statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(middleware.Identity())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Spot routes. Статические пути идут раньше параметризованных.
	api.Get("/spots", s.discoveryHandler.Discover)
	api.Post("/spots", s.spotHandler.Create)
	api.Get("/spots/categories", s.spotHandler.GetCategories)
	api.Get("/spots/pending", s.spotHandler.GetPending)
	api.Get("/spots/:id", s.spotHandler.GetByID)
	api.Delete("/spots/:id", s.spotHandler.Delete)
	api.Post("/spots/:id/approve", s.spotHandler.Approve)

	// Attendance routes
	api.Post("/spots/:id/attend", s.attendanceHandler.Attend)
	api.Delete("/spots/:id/attend", s.attendanceHandler.Leave)
	api.Get("/spots/:id/attendance", s.attendanceHandler.GetForSpot)

	// Comment routes
	api.Post("/spots/:id/comments", s.commentHandler.Add)
	api.Get("/spots/:id/comments", s.commentHandler.GetForSpot)
	api.Delete("/comments/:id", s.commentHandler.Delete)

	// Cities
	api.Get("/cities", s.discoveryHandler.Cities)

	// Market routes
	api.Get("/items", s.marketHandler.GetItems)
	api.Post("/items", s.marketHandler.CreateItem)
	api.Get("/items/mine", s.marketHandler.GetMyItems)
	api.Get("/items/favorites", s.marketHandler.GetFavorites)
	api.Get("/items/:id", s.marketHandler.GetItem)
	api.Delete("/items/:id", s.marketHandler.DeleteItem)
	api.Post("/items/:id/purchase", s.marketHandler.Purchase)
	api.Post("/items/:id/favorite", s.marketHandler.ToggleFavorite)

	// Tournament routes
	api.Get("/tournaments", s.tournamentHandler.GetOpen)
	api.Post("/tournaments/:id/submissions", s.tournamentHandler.SubmitTrick)
	api.Get("/tournaments/:id/submissions/pending", s.tournamentHandler.GetPendingSubmissions)
	api.Get("/tournaments/:id/leaderboard", s.tournamentHandler.GetLeaderboard)
	api.Post("/submissions/:id/review", s.tournamentHandler.ReviewSubmission)

	// Stats
	api.Get("/stats", s.statsHandler.GetStatistics)
	api.Post("/stats/refresh", s.statsHandler.Refresh)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
