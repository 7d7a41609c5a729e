package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/paperball/backend/internal/handlers"
	"github.com/paperball/backend/internal/middleware"
	"github.com/paperball/backend/internal/models"
	"github.com/paperball/backend/internal/repositories"
	"github.com/paperball/backend/internal/services"
	"github.com/paperball/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) error {
	// AutoMigrate models
	err := db.AutoMigrate(
		&models.User{},
		&models.Paper{},
		&models.Comment{},
		&models.Like{},
		&models.Message{},
	)
	if err != nil {
		return err
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/api/health", handlers.HealthCheck)

	// Uploaded media is served statically
	e.Static("/uploads", cfg.UploadDir)

	// --- Initialize repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	paperRepo := repositories.NewPostgresPaperRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	messageRepo := repositories.NewPostgresMessageRepository(db)

	// --- Domain services ---
	normalizer := services.NewThreadNormalizer(commentRepo)
	notifications := services.NewNotificationPolicy(messageRepo)

	// --- Unprotected routes for authentication ---
	public := e.Group("/api")
	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(public)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api group.")

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(api)
	log.Println("User profile routes configured.")

	paperHandler := handlers.NewPaperHandler(paperRepo, commentRepo, userRepo)
	paperHandler.RegisterPaperRoutes(api)
	log.Println("Paper routes configured.")

	commentHandler := handlers.NewCommentHandler(commentRepo, paperRepo, userRepo, normalizer, notifications)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	likeHandler := handlers.NewLikeHandler(likeRepo, paperRepo, notifications)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	messageHandler := handlers.NewMessageHandler(messageRepo)
	messageHandler.RegisterMessageRoutes(api)
	log.Println("Message routes configured.")

	uploadHandler, err := handlers.NewUploadHandler(cfg.UploadDir)
	if err != nil {
		return err
	}
	uploadHandler.RegisterUploadRoutes(api)
	log.Println("Upload routes configured.")

	log.Println("All routes configured.")
	return nil
}
