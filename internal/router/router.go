package router

import (
	"log"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/markabahub/backend/internal/handlers"
	"github.com/markabahub/backend/internal/middleware"
	"github.com/markabahub/backend/internal/models"
	"github.com/markabahub/backend/internal/repositories"
	"github.com/markabahub/backend/internal/ws"
	"github.com/markabahub/backend/pkg/config"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, cfg *config.Config) {
	e.HTTPErrorHandler = errorHandler
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst).Middleware())
	log.Println("Global middleware configured.")
}

// errorHandler renders every error as {"success": false, "message": ...}.
func errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, echo.Map{"success": false, "message": message})
}

// AutoMigrate runs the schema migrations for every model
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Favorite{},
		&models.Subscription{},
		&models.MarketplaceFavorite{},
		&models.Friend{},
		&models.Post{},
		&models.PostLike{},
		&models.PostComment{},
		&models.Story{},
		&models.StoryView{},
		&models.MarketplaceItem{},
		&models.Notification{},
		&models.Chat{},
		&models.ChatMessage{},
	)
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, firebaseAuthClient *auth.Client, hub *ws.Hub, cfg *config.Config) {
	if err := AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	friendRepo := repositories.NewPostgresFriendRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	storyRepo := repositories.NewPostgresStoryRepository(db)
	marketplaceRepo := repositories.NewPostgresMarketplaceRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)
	chatRepo := repositories.NewPostgresChatRepository(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authHandler.RegisterProtectedAuthRoutes(api.Group("/auth"))

	userHandler := handlers.NewUserHandler(userRepo, friendRepo, postRepo, marketplaceRepo)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	friendHandler := handlers.NewFriendHandler(friendRepo, userRepo, notificationRepo)
	friendHandler.RegisterFriendRoutes(api)
	log.Println("Friend routes configured.")

	postHandler := handlers.NewPostHandler(postRepo, userRepo, friendRepo, notificationRepo)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	feedHandler := handlers.NewFeedHandler(postRepo, userRepo, friendRepo)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	storyHandler := handlers.NewStoryHandler(storyRepo, friendRepo, userRepo)
	storyHandler.RegisterStoryRoutes(api)
	log.Println("Story routes configured.")

	marketplaceHandler := handlers.NewMarketplaceHandler(marketplaceRepo)
	marketplaceHandler.RegisterMarketplaceRoutes(api)
	log.Println("Marketplace routes configured.")

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	chatHandler := handlers.NewChatHandler(chatRepo, userRepo, notificationRepo, hub)
	chatHandler.RegisterChatRoutes(api)
	log.Println("Chat routes configured.")

	// Websocket endpoint authenticates via token query parameter; the JWT
	// header middleware does not apply here.
	e.GET("/ws", ws.ServeWS(hub, cfg.JWTSecret))
	log.Println("Websocket endpoint configured.")

	log.Println("All routes configured.")
}
