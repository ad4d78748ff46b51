package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/terms-api/api/swagger"
	"github.com/noah-isme/terms-api/internal/handler"
	"github.com/noah-isme/terms-api/internal/middleware"
	"github.com/noah-isme/terms-api/internal/repository"
	"github.com/noah-isme/terms-api/internal/service"
	"github.com/noah-isme/terms-api/pkg/config"
	"github.com/noah-isme/terms-api/pkg/database"
	"github.com/noah-isme/terms-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/terms-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/terms-api/pkg/middleware/requestid"
)

// @title Terms API
// @version 1.0.0
// @description Read-only JSON:API resource exposing academic term records
// @BasePath /v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()
	termRepo := repository.NewTermRepository(db)
	termSvc := service.NewTermService(termRepo, nil, logr, metricsSvc, cfg.APIBaseURL, cfg.Terms.Location())

	termHandler := handler.NewTermHandler(termSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	api.GET("/terms", termHandler.List)
	api.GET("/terms/:termCode", termHandler.GetByCode)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
