package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/wordup-api/api/swagger"
	"github.com/noah-isme/wordup-api/internal/handler"
	"github.com/noah-isme/wordup-api/internal/middleware"
	"github.com/noah-isme/wordup-api/internal/repository"
	"github.com/noah-isme/wordup-api/internal/service"
	"github.com/noah-isme/wordup-api/pkg/cache"
	"github.com/noah-isme/wordup-api/pkg/config"
	"github.com/noah-isme/wordup-api/pkg/database"
	"github.com/noah-isme/wordup-api/pkg/export"
	"github.com/noah-isme/wordup-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/wordup-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/wordup-api/pkg/middleware/requestid"
)

// @title WordUp API
// @version 1.0.0
// @description Vocabulary learning backend for students, teachers and admins
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var wordColumnWeights = map[string]float64{
	"word_id":  0.6,
	"content":  1.5,
	"speech":   0.7,
	"meaning":  3,
	"is_wrong": 0.7,
}

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		logr.Fatal("failed to ensure schema", zap.Error(err))
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, continuing without cache and token deny-list", zap.Error(err))
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	validate := service.NewValidator()

	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	wordRepo := repository.NewWordRepository(db)
	tokenRepo := repository.NewTokenRepository(redisClient)
	cacheRepo := repository.NewCacheRepository(redisClient, "wordup", logr)

	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.WordCache.TTL, logr, cfg.WordCache.Enabled && redisClient != nil)
	authSvc := service.NewAuthService(studentRepo, teacherRepo, adminRepo, tokenRepo, validate, logr, service.AuthConfig{
		Secret: cfg.JWT.Secret,
		Expiry: cfg.JWT.Expiration,
		Issuer: cfg.JWT.Issuer,
	})
	wordSvc := service.NewWordService(wordRepo, cacheSvc, metricsSvc, validate, logr)
	exportSvc := service.NewExportService(wordSvc, export.NewCSVExporter(), export.NewPDFExporter(cfg.Export.PDFFontPath, wordColumnWeights), logr)
	userSvc := service.NewUserService(studentRepo, teacherRepo, adminRepo, validate, logr)
	classSvc := service.NewClassService(repository.NewClassRepository(db), validate, logr)
	taskSvc := service.NewTaskService(repository.NewTaskRepository(db), validate, logr)
	scoreSvc := service.NewScoreService(repository.NewScoreRepository(db), validate, logr)
	wrongBookSvc := service.NewWrongBookService(repository.NewWrongBookRepository(db))
	statusSvc := service.NewStatusService(repository.NewStatusRepository(db), metricsSvc, cfg.Version, logr)

	metricsHandler := handler.NewMetricsHandler(metricsSvc, statusSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	handler.RegisterRoutes(r.Group(cfg.APIPrefix), handler.Handlers{
		Auth:    handler.NewAuthHandler(authSvc),
		Word:    handler.NewWordHandler(wordSvc, exportSvc),
		User:    handler.NewUserHandler(userSvc),
		Class:   handler.NewClassHandler(classSvc),
		Task:    handler.NewTaskHandler(taskSvc),
		Score:   handler.NewScoreHandler(scoreSvc, wrongBookSvc),
		Metrics: metricsHandler,
	}, authSvc)

	if cfg.Metrics.Enabled {
		r.GET("/metrics", metricsHandler.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if cfg.StaticDir != "" {
		handler.RegisterStatic(r, cfg.StaticDir, cfg.APIPrefix)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
