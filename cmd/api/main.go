package main

// @title Places Directory Service API
// @version 1.0.0
// @description Service for browsing city places by category with live open/closed status. Keeps a directory of cafes, restaurants, parks and bars, evaluates each place's weekly opening hours against the reference-timezone clock and synchronizes map markers for the selected category.
// @description
// @description Main capabilities:
// @description - Category summaries with open/total place counts
// @description - Normalized place lists per category with current open status
// @description - Single-category selection with marker reconciliation deltas
// @description - Map camera state, independent of marker synchronization
// @description - Manual and periodic re-evaluation of the directory

// @contact.name API Support
// @contact.email support@places-directory.com

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

	_ "github.com/places-directory/docs"
	"github.com/places-directory/internal/config"
	httpDelivery "github.com/places-directory/internal/delivery/http"
	"github.com/places-directory/internal/delivery/http/handler"
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/infrastructure/geocoding"
	"github.com/places-directory/internal/pkg/logger"
	"github.com/places-directory/internal/repository/cache"
	"github.com/places-directory/internal/repository/file"
	"github.com/places-directory/internal/repository/postgres"
	"github.com/places-directory/internal/usecase"
	"github.com/places-directory/internal/worker"
	"github.com/places-directory/internal/worker/refresh"
	"go.uber.org/zap"
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

	log.Info("Starting Places Directory Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("places_source", cfg.Places.Source),
		zap.String("timezone", cfg.Clock.Timezone),
	)

	// 3. Reference timezone for all open/closed evaluation
	location, err := time.LoadLocation(cfg.Clock.Timezone)
	if err != nil {
		log.Fatal("Failed to load reference timezone", zap.Error(err))
	}

	// 4. Connect to Redis (geocode cache)
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

	// 5. Place source: JSON exports on disk or PostgreSQL
	var placeSource repository.PlaceSourceRepository
	var db *postgres.DB

	switch cfg.Places.Source {
	case "postgres":
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		placeSource = postgres.NewPlaceSourceRepository(db)
		log.Info("PostgreSQL connected")
	default:
		placeSource = file.NewPlaceSourceRepository(cfg.Places.DataDir, log)
		log.Info("File place source initialized", zap.String("data_dir", cfg.Places.DataDir))
	}

	// 6. Health checks
	healthCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(healthCtx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	if db != nil {
		if err := db.Health(healthCtx); err != nil {
			log.Fatal("PostgreSQL health check failed", zap.Error(err))
		}
	}
	log.Info("All connections healthy")

	// 7. Initialize Repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	geocoder := geocoding.NewClient(&cfg.Geocoding, log)

	log.Info("Repositories initialized")

	// 8. Initialize Use Cases
	ingestUC := usecase.NewIngestUseCase(
		placeSource,
		geocoder,
		cacheRepo,
		log,
		cfg.Cache.GeocodeCacheTTL,
	)

	directoryUC := usecase.NewDirectoryUseCase(ingestUC, log)

	markerUC := usecase.NewMarkerUseCase(domain.CameraState{
		Center: domain.Coordinate{Lon: cfg.Map.CenterLng, Lat: cfg.Map.CenterLat},
		Zoom:   cfg.Map.Zoom,
		Pitch:  cfg.Map.Pitch,
	}, log)

	selectionUC := usecase.NewSelectionUseCase(directoryUC, markerUC, log)

	log.Info("Use cases initialized")

	// 9. Initial directory build
	buildCtx, cancelBuild := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancelBuild()

	if err := directoryUC.Refresh(buildCtx, domain.InstantAt(time.Now(), location)); err != nil {
		log.Fatal("Initial directory refresh failed", zap.Error(err))
	}
	log.Info("Directory built", zap.Any("instant", directoryUC.Instant()))

	// 10. Initialize HTTP Handlers
	placeHandler := handler.NewPlaceHandler(directoryUC, selectionUC, location, log)
	selectionHandler := handler.NewSelectionHandler(selectionUC, log)
	markerHandler := handler.NewMarkerHandler(markerUC, selectionUC, log)

	log.Info("HTTP handlers initialized")

	// 11. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		placeHandler,
		selectionHandler,
		markerHandler,
	)

	log.Info("HTTP server initialized")

	// 12. Start background workers
	var manager *worker.Manager
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	if cfg.Worker.Enabled {
		manager = worker.NewManager(log)
		manager.Register(refresh.NewWorker(
			directoryUC,
			selectionUC,
			location,
			cfg.Clock.RefreshInterval,
			log,
		))

		if err := manager.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	// 13. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 14. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	if manager != nil {
		cancelWorkers()
		if err := manager.Stop(); err != nil {
			log.Error("Worker shutdown error", zap.Error(err))
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
