package main

import (
	"context"
	"log"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/markabahub/backend/internal/jobs"
	"github.com/markabahub/backend/internal/repositories"
	"github.com/markabahub/backend/internal/router"
	"github.com/markabahub/backend/internal/ws"
	"github.com/markabahub/backend/pkg/config"
	"github.com/markabahub/backend/pkg/firebase"
	"github.com/markabahub/backend/pkg/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg.PostgresConnStr)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Initialize Firebase; Google sign-in is disabled when no credentials
	// are configured
	var firebaseAuthClient *auth.Client
	if cfg.FirebaseCredentialsPath != "" {
		ctx := context.Background()
		firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		firebaseAuthClient = firebaseApp.AuthClient
	} else {
		log.Println("Firebase credentials not configured; Google sign-in disabled.")
	}

	// Websocket hub
	hub := ws.NewHub()
	go hub.Run()
	defer hub.Stop()

	// Expired-story sweeper
	storyCleanup := jobs.NewStoryCleanupJob(repositories.NewPostgresStoryRepository(db.Postgres), time.Hour)
	storyCleanup.Start()
	defer storyCleanup.Stop()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e, cfg)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, firebaseAuthClient, hub, cfg)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
