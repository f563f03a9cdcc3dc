package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/staffing-go/internal/api/middleware"
	"github.com/linskybing/staffing-go/internal/api/routes"
	"github.com/linskybing/staffing-go/internal/application"
	"github.com/linskybing/staffing-go/internal/config"
	"github.com/linskybing/staffing-go/internal/config/db"
	"github.com/linskybing/staffing-go/internal/config/logger"
	"github.com/linskybing/staffing-go/pkg/minio"
	"go.uber.org/zap"
)

// @title Staffing Forms API
// @version 1.0
// @description Business contract forms for agencies, businesses and workers.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()
	logger.Init(config.IsProduction, config.LogLevel)
	defer logger.Sync()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()

	var archive application.FormArchiver
	if config.MinioEnabled {
		a, err := minio.NewArchive(context.Background())
		if err != nil {
			logger.Log.Fatal("Failed to initialize form archive", zap.Error(err))
		}
		archive = a
	}

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())

	routes.RegisterRoutes(router, db.DB, archive)

	port := ":" + config.ServerPort
	logger.Log.Info("Starting API server", zap.String("addr", port))
	if err := router.Run(port); err != nil {
		logger.Log.Fatal("Failed to start", zap.Error(err))
	}
}
