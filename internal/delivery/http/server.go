package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/fuelpark-service/internal/config"
	"github.com/fuelpark-service/internal/delivery/http/handler"
	"github.com/fuelpark-service/internal/delivery/http/middleware"
	"github.com/fuelpark-service/internal/pkg/errors"
	"github.com/fuelpark-service/internal/pkg/utils"
)

// Handlers - обработчики, которые регистрирует сервер
type Handlers struct {
	GasStation *handler.GasStationHandler
	Parking    *handler.ParkingHandler
	Auth       *handler.AuthHandler
	Loyalty    *handler.LoyaltyHandler
	Health     *handler.HealthHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "FuelPark API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - fiber.App для тестов через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.handlers.Health.Health)

	// Gas stations
	stations := api.Group("/gas-stations")
	stations.Get("/provinces", s.handlers.GasStation.ListProvinces)
	stations.Get("/localities", s.handlers.GasStation.ListLocalities)
	stations.Get("/nearby", s.handlers.GasStation.Nearby)
	stations.Get("/:id", s.handlers.GasStation.Get)
	api.Get("/gas-stations", s.handlers.GasStation.List)

	api.Get("/parkings", s.handlers.Parking.List)
	api.Get("/parkings/:id", s.handlers.Parking.Get)

	auth := api.Group("/auth")
	auth.Post("/register", s.handlers.Auth.Register)
	auth.Post("/login", s.handlers.Auth.Login)
	auth.Post("/password", s.handlers.Auth.ChangePassword)

	loyalty := api.Group("/loyalty")
	loyalty.Get("/:user_id", s.handlers.Loyalty.GetBalance)
	loyalty.Post("/:user_id/scan", s.handlers.Loyalty.ScanReceipt)
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

// customErrorHandler - ошибки, дошедшие до fiber (404 маршрута, паники,
// AppError из middleware), в том же формате, что и utils.SendError
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := errors.As(err); ok {
			return c.Status(appErr.StatusCode).JSON(utils.ErrorResponse{Error: appErr})
		}

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
			return c.Status(code).JSON(utils.ErrorResponse{Error: errors.ErrInternalServer})
		}

		return c.Status(code).JSON(utils.ErrorResponse{
			Error: errors.New(errorCode(code), err.Error(), code),
		})
	}
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	default:
		return "BAD_REQUEST"
	}
}
