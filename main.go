package main

import (
	"context"
	"os"

	"github.com/ShalinTimalsina/AssetTracker-Test/cmd"
	"github.com/ShalinTimalsina/AssetTracker-Test/internal/container"
	"github.com/ShalinTimalsina/AssetTracker-Test/internal/database"
	"github.com/ShalinTimalsina/AssetTracker-Test/internal/logger"
	"github.com/ShalinTimalsina/AssetTracker-Test/internal/middleware"
	"github.com/ShalinTimalsina/AssetTracker-Test/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	// Load .env file, but don't overwrite system environment variables.
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, falling back to system environment variables")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmd.Execute(ctx)

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		log.Fatal("failed to connect to the database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Connected to the database successfully")

	appContainer := container.NewAppContainer(db, log)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware(log))

	routes.RegisterPublicRoutes(router, appContainer)
	routes.RegisterProtectedRoutes(router, appContainer)
	routes.RegisterUtilityRoutes(router, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("Starting server", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
