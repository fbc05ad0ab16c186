package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/JetJerry/River-Flood-Predictor/internal/backend"
	"github.com/JetJerry/River-Flood-Predictor/internal/config"
	v1 "github.com/JetJerry/River-Flood-Predictor/internal/handler/http/v1"
	"github.com/JetJerry/River-Flood-Predictor/internal/observability"
	"github.com/JetJerry/River-Flood-Predictor/internal/service"
	"github.com/JetJerry/River-Flood-Predictor/internal/view"
	"github.com/JetJerry/River-Flood-Predictor/pkg/logger"

	_ "github.com/JetJerry/River-Flood-Predictor/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title River Flood Predictor API
// @version 1.0
// @description Gateway for submitting flood prediction requests to the ML backend.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Инициализация метрик
	metrics := observability.NewMetrics()

	// Инициализация клиента бэкенда предсказаний
	backendClient := backend.NewHTTPClient(cfg.BackendURL, cfg.BackendTimeout, log)

	// Инициализация рендерера и уведомлений
	clock := clockwork.NewRealClock()
	renderer := view.NewRenderer(clock)
	notifier := view.NewNotifier(cfg.NotificationTTL, clock)

	// Инициализация сервисов
	predictionService := service.NewPredictionService(backendClient, renderer, notifier, metrics, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(predictionService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Маршрут метрик Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Стартовый опрос бэкенда: статус и метаданные загружаются параллельно
	go func() {
		probeCtx, probeCancel := context.WithTimeout(context.Background(), cfg.BackendTimeout)
		defer probeCancel()

		var wg sync.WaitGroup
		wg.Add(3)
		go func() {
			defer wg.Done()
			status := predictionService.Status(probeCtx)
			log.WithField("status", status.Label).Info("Initial backend status")
		}()
		go func() {
			defer wg.Done()
			info := predictionService.Info(probeCtx)
			log.WithFields(logrus.Fields{
				"api_name": info.APIName,
				"version":  info.Version,
				"fallback": info.Fallback,
			}).Info("Initial backend info")
		}()
		go func() {
			defer wg.Done()
			model := predictionService.ModelInfo(probeCtx)
			log.WithFields(logrus.Fields{
				"model":    model.ModelName,
				"fallback": model.Fallback,
			}).Info("Initial model info")
		}()
		wg.Wait()
	}()

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
