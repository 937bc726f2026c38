package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/cadetnet/dutylog-api/internal/config"
	"github.com/cadetnet/dutylog-api/internal/database"
	"github.com/cadetnet/dutylog-api/internal/handler"
	"github.com/cadetnet/dutylog-api/internal/middleware"
	"github.com/cadetnet/dutylog-api/internal/models"
	"github.com/cadetnet/dutylog-api/internal/repository"
	"github.com/cadetnet/dutylog-api/internal/router"
	"github.com/cadetnet/dutylog-api/internal/service"
	"github.com/cadetnet/dutylog-api/pkg/msgraph"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("invalid timezone %q: %v", cfg.Timezone, err)
	}

	manager := database.NewManager(database.PostgresOpener(cfg), database.PoolConfig{
		MaxOpen:     cfg.PoolMaxOpen,
		MinIdle:     cfg.PoolMinIdle,
		IdleTimeout: cfg.PoolIdleTimeout,
	}, logger)
	defer manager.Close()

	// The manager connects lazily, so a store outage at boot does not keep
	// the service down; migration is retried implicitly once the first
	// operation reconnects against an already-provisioned schema.
	if db, err := manager.Acquire(context.Background()); err != nil {
		logger.Error().Err(err).Msg("store unreachable at startup, continuing with lazy connect")
	} else if err := db.AutoMigrate(&models.LogEntry{}, &models.Image{}, &models.InspectionComment{}, &models.AdminUser{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	graph, err := msgraph.New(cfg.GraphBaseURL, logger)
	if err != nil {
		log.Fatalf("failed to create graph client: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	logRepo := repository.NewLogRepository(manager)
	imageRepo := repository.NewImageRepository(manager)
	commentRepo := repository.NewCommentRepository(manager)
	adminRepo := repository.NewAdminRepository(manager)

	logService := service.NewLogService(logRepo, validate, location, logger)
	imageService := service.NewImageService(imageRepo, location, logger)
	commentService := service.NewCommentService(commentRepo, validate, location, logger)
	authService := service.NewAuthService(adminRepo, logger)

	logHandler := handler.NewLogHandler(logService, logger)
	imageHandler := handler.NewImageHandler(imageService, cfg.UploadDir, logger)
	commentHandler := handler.NewCommentHandler(commentService, logger)
	adminHandler := handler.NewAdminHandler(authService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		BodyLimit:    32 * 1024 * 1024,
	})

	middleware.Register(app, middleware.Config{
		Logger:       &logger,
		AllowOrigins: cfg.AllowedOrigins,
	})

	router.Register(app, cfg, router.Dependencies{
		LogHandler:     logHandler,
		ImageHandler:   imageHandler,
		CommentHandler: commentHandler,
		AdminHandler:   adminHandler,
		Identity:       middleware.VerifyIdentity(graph, middleware.IdentityOptions{RequiredDomain: cfg.AllowedEmailDomain}, logger),
		AdminIdentity:  middleware.VerifyIdentity(graph, middleware.IdentityOptions{}, logger),
	})

	go func() {
		if cfg.TLSEnabled() {
			if err := app.ListenTLS(cfg.HTTPAddress(), cfg.TLSCertFile, cfg.TLSKeyFile); err != nil {
				log.Fatalf("failed to start server: %v", err)
			}
			return
		}
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
