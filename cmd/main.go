package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/disasterconnect/disaster_coordination_system/internal/config"
	v1 "github.com/disasterconnect/disaster_coordination_system/internal/handler/http/v1"
	"github.com/disasterconnect/disaster_coordination_system/internal/repository"
	"github.com/disasterconnect/disaster_coordination_system/internal/service"
	"github.com/disasterconnect/disaster_coordination_system/internal/webhook"
	"github.com/disasterconnect/disaster_coordination_system/pkg/logger"
	"github.com/disasterconnect/disaster_coordination_system/pkg/mongodb"
	redisclient "github.com/disasterconnect/disaster_coordination_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/disasterconnect/disaster_coordination_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title DisasterConnect Coordination API
// @version 1.0
// @description Backend for the DisasterConnect disaster-response coordination system.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Подключение к MongoDB. Один клиент живет весь процесс
	// и прокидывается в репозитории через конструкторы
	mongoClient, db, err := mongodb.NewMongoDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.WithError(err).Error("Failed to disconnect from MongoDB")
		}
	}()
	log.Info("Successfully connected to MongoDB")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(db, redisClient, cfg.CacheTTL)
	resourceRepo := repository.NewResourceRepository(db, redisClient, cfg.CacheTTL)
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db, redisClient, cfg.CacheTTL)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentRepo, log)
	resourceService := service.NewResourceService(resourceRepo, log)
	assignmentService := service.NewAssignmentService(incidentService, resourceService, webhookPublisher, log)
	authService := service.NewAuthService(userRepo, log, cfg)
	reportService := service.NewReportService(reportRepo, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, resourceService, assignmentService, authService, reportService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
