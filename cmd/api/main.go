package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/akshayk/webapp-backend/internal/config"
	"github.com/akshayk/webapp-backend/internal/handler"
	"github.com/akshayk/webapp-backend/internal/middleware"
	"github.com/akshayk/webapp-backend/internal/repository"
	"github.com/akshayk/webapp-backend/internal/service"
	"github.com/akshayk/webapp-backend/pkg/database"
	"github.com/akshayk/webapp-backend/pkg/email"
	"github.com/akshayk/webapp-backend/pkg/logger"
	"github.com/akshayk/webapp-backend/pkg/storage"
	"github.com/akshayk/webapp-backend/pkg/utils"
)

func main() {
	// .env is optional; containers inject the environment directly
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("failed to initialize database", zap.Error(err))
	}

	objectStorage, err := storage.NewS3Storage(cfg)
	if err != nil {
		zapLogger.Fatal("failed to initialize object storage", zap.Error(err))
	}

	emailService := email.NewEmailService(
		cfg.Email.ResendAPIKey,
		cfg.Email.FromAddress,
		cfg.Email.FromName,
		cfg.Email.VerifyURL,
	)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	sentEmailRepo := repository.NewSentEmailRepository(db)

	// Services
	userService := service.NewUserService(userRepo, sentEmailRepo, objectStorage, emailService, zapLogger)
	verificationService := service.NewVerificationService(sentEmailRepo, userRepo)
	healthService := service.NewHealthService(db)

	validator := utils.NewValidator()

	// Handlers
	userHandler := handler.NewUserHandler(userService, validator)
	verificationHandler := handler.NewVerificationHandler(verificationService)
	healthHandler := handler.NewHealthHandler(healthService)

	app := fiber.New()

	app.Use(middleware.RequestLogger(zapLogger))
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	handler.RegisterRoutes(app, userHandler, verificationHandler, healthHandler, middleware.BasicAuth(userRepo))

	zapLogger.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
