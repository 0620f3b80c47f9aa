package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Sulav-subedi/BNKS-Student-voice/internal/auth"
	"github.com/Sulav-subedi/BNKS-Student-voice/internal/catalog"
	"github.com/Sulav-subedi/BNKS-Student-voice/internal/handlers"
	"github.com/Sulav-subedi/BNKS-Student-voice/internal/middleware"
	"github.com/Sulav-subedi/BNKS-Student-voice/internal/repositories"
	"github.com/Sulav-subedi/BNKS-Student-voice/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, cfg *config.Config) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORSWithConfig(eMiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *mongo.Database, cfg *config.Config, logger *zap.Logger) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Shared infrastructure ---
	groupCatalog := catalog.Default()
	tokenService := auth.NewTokenService(cfg.JWTSecret, auth.DefaultTokenTTL)

	// --- Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)
	commentRepo := repositories.NewMongoCommentRepository(db)
	conversationRepo := repositories.NewMongoConversationRepository(db)
	messageRepo := repositories.NewMongoMessageRepository(db)

	// --- Route groups ---
	// Registration, login and the public feedback/group listings skip
	// identity resolution; everything else resolves the caller first.
	public := e.Group("/api")
	protected := e.Group("/api")
	protected.Use(middleware.AuthMiddleware(tokenService, userRepo))

	authHandler := handlers.NewAuthHandler(userRepo, tokenService)
	authHandler.RegisterPublicRoutes(public)
	authHandler.RegisterProtectedRoutes(protected)

	postHandler := handlers.NewPostHandler(postRepo, groupCatalog)
	postHandler.RegisterPublicRoutes(public)
	postHandler.RegisterProtectedRoutes(protected)

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterPublicRoutes(public)
	commentHandler.RegisterProtectedRoutes(protected)

	groupHandler := handlers.NewGroupHandler(postRepo, groupCatalog)
	groupHandler.RegisterPublicRoutes(public)

	conversationHandler := handlers.NewConversationHandler(conversationRepo, userRepo)
	conversationHandler.RegisterProtectedRoutes(protected)

	messageHandler := handlers.NewMessageHandler(messageRepo, conversationRepo)
	messageHandler.RegisterProtectedRoutes(protected)

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProtectedRoutes(protected)

	logger.Info("routes configured", zap.Int("catalog_groups", len(groupCatalog.Entries())))
}
