package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/classdeck/classdeck-api/api/swagger"
	"github.com/classdeck/classdeck-api/internal/handler"
	"github.com/classdeck/classdeck-api/internal/middleware"
	"github.com/classdeck/classdeck-api/internal/repository"
	"github.com/classdeck/classdeck-api/internal/router"
	"github.com/classdeck/classdeck-api/internal/service"
	"github.com/classdeck/classdeck-api/pkg/cache"
	"github.com/classdeck/classdeck-api/pkg/config"
	"github.com/classdeck/classdeck-api/pkg/database"
	"github.com/classdeck/classdeck-api/pkg/export"
	"github.com/classdeck/classdeck-api/pkg/logger"
	corsmiddleware "github.com/classdeck/classdeck-api/pkg/middleware/cors"
	reqidmiddleware "github.com/classdeck/classdeck-api/pkg/middleware/requestid"
	"github.com/classdeck/classdeck-api/pkg/storage"
)

// @title ClassDeck API
// @version 1.0.0
// @description Classroom task management: published tasks, student submissions and announcements
// @BasePath /
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to redis", "error", err)
	}
	defer redisClient.Close() //nolint:errcheck

	uploads, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare upload directory", "error", err)
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient)

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(userRepo, sessionRepo, logr, service.AuthConfig{
		Secret: cfg.Session.Secret,
		TTL:    cfg.Session.TTL,
		Issuer: cfg.Session.Issuer,
	})
	taskSvc := service.NewTaskService(taskRepo, uploads, logr)
	submissionSvc := service.NewSubmissionService(submissionRepo, taskRepo, uploads, export.NewCSVExporter(), export.NewPDFExporter(), logr)
	announcementSvc := service.NewAnnouncementService(announcementRepo, logr)

	validate := validator.New()

	handlers := router.Handlers{
		Auth:          handler.NewAuthHandler(authSvc, validate),
		Dashboard:     handler.NewDashboardHandler(taskSvc, announcementSvc),
		Tasks:         handler.NewTaskHandler(taskSvc, validate),
		Submissions:   handler.NewSubmissionHandler(submissionSvc, metricsSvc),
		Announcements: handler.NewAnnouncementHandler(announcementSvc, validate),
		Metrics:       handler.NewMetricsHandler(metricsSvc),
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	router.Register(r, handlers, authSvc)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
