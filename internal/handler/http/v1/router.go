package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты отправки и отображения предсказаний
	predictions := api.Group("/predictions")
	{
		predictions.POST("", h.submitPrediction)
		predictions.POST("/form", h.submitPredictionForm)
		predictions.GET("/sample", h.getSampleData)
		predictions.GET("/current", h.getCurrentResult)
		predictions.DELETE("/current", h.clearResult)
	}

	// Маршруты состояния бэкенда и метаданных
	system := api.Group("/system")
	{
		system.GET("/status", h.getStatus)
		system.GET("/info", h.getInfo)
		system.GET("/models", h.getModels)
		system.GET("/health", h.healthCheck)
	}

	// Маршрут активных уведомлений
	api.GET("/notifications", h.listNotifications)
}
