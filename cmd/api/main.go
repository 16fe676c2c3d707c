package main

// @title FuelPark API
// @version 1.0.0
// @description Поиск заправок и парковок рядом с пользователем и программа лояльности.
// @description
// @description Основные возможности:
// @description - Провинции и населённые пункты из справочника цен на топливо
// @description - Заправки населённого пункта или в радиусе, сортировка по расстоянию или цене
// @description - Парковки с сортировкой по расстоянию, цене или свободным местам
// @description - Регистрация, вход и начисление баллов за сканы чеков

// @contact.name API Support

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

	_ "github.com/fuelpark-service/docs"
	"github.com/fuelpark-service/internal/config"
	httpDelivery "github.com/fuelpark-service/internal/delivery/http"
	"github.com/fuelpark-service/internal/delivery/http/handler"
	"github.com/fuelpark-service/internal/pkg/logger"
	"github.com/fuelpark-service/internal/repository/cache"
	"github.com/fuelpark-service/internal/repository/postgres"
	redisRepo "github.com/fuelpark-service/internal/repository/redis"
	"github.com/fuelpark-service/internal/usecase"
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

	log.Info("Starting FuelPark API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	log.Info("Redis connected")

	// 5. Initialize repositories
	gasStationRepo := postgres.NewGasStationRepository(db)
	parkingRepo := postgres.NewParkingRepository(db)
	userRepo := postgres.NewUserRepository(db)
	loyaltyRepo := postgres.NewLoyaltyRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Initialize use cases
	gasStationUC := usecase.NewGasStationUseCase(
		gasStationRepo,
		cacheRepo,
		logger.Named(log, "gas-stations"),
		cfg.Cache.LocalityCacheTTL,
		cfg.Cache.LRUSize,
		cfg.Search.NearbyRadiusKm,
	)
	parkingUC := usecase.NewParkingUseCase(parkingRepo, logger.Named(log, "parkings"))
	authUC := usecase.NewAuthUseCase(userRepo, loyaltyRepo, logger.Named(log, "auth"), cfg.Loyalty.WelcomePoints)
	loyaltyUC := usecase.NewLoyaltyUseCase(loyaltyRepo, streamRepo, logger.Named(log, "loyalty"), cfg.Loyalty.PointsPerReceipt, cfg.Loyalty.RewardPoints)

	// 7. Initialize HTTP handlers
	healthHandler := handler.NewHealthHandler(log,
		handler.HealthCheck{Name: "postgres", Check: db.Health},
		handler.HealthCheck{Name: "redis", Check: redisClient.Health},
	)
	handlers := httpDelivery.Handlers{
		GasStation: handler.NewGasStationHandler(gasStationUC, log),
		Parking:    handler.NewParkingHandler(parkingUC, log),
		Auth:       handler.NewAuthHandler(authUC, log),
		Loyalty:    handler.NewLoyaltyHandler(loyaltyUC, log),
		Health:     healthHandler,
	}

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, handlers)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
