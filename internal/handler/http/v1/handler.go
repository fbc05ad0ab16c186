package v1

import (
	"errors"
	"net/http"

	"github.com/JetJerry/River-Flood-Predictor/internal/config"
	"github.com/JetJerry/River-Flood-Predictor/internal/service"
	"github.com/JetJerry/River-Flood-Predictor/internal/validation"
	"github.com/JetJerry/River-Flood-Predictor/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	predictionService service.PredictionService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(predictionService service.PredictionService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		predictionService: predictionService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// @Summary Submit a prediction request
// @Description Submit a typed flood prediction request to the prediction backend
// @Tags Predictions
// @Accept json
// @Produce json
// @Param prediction body PredictionRequestDTO true "Prediction request"
// @Success 200 {object} view.ResultView
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Another submission is in flight"
// @Failure 502 {object} map[string]string "Prediction backend unavailable"
// @Router /predictions [post]
func (h *Handler) submitPrediction(c *gin.Context) {
	var input PredictionRequestDTO
	log := h.logger.WithField("method", "submitPrediction")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.predictionService.Submit(c.Request.Context(), DTOToPredictionRequest(input))
	if err != nil {
		h.respondSubmitError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// @Summary Submit a prediction from raw form fields
// @Description Submit urlencoded form fields; values are validated and coerced before the backend call
// @Tags Predictions
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 200 {object} view.ResultView
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Another submission is in flight"
// @Failure 502 {object} map[string]string "Prediction backend unavailable"
// @Router /predictions/form [post]
func (h *Handler) submitPredictionForm(c *gin.Context) {
	log := h.logger.WithField("method", "submitPredictionForm")

	if err := c.Request.ParseForm(); err != nil {
		log.WithError(err).Warn("Failed to parse form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	raw := make(map[string]string, len(c.Request.PostForm))
	for field := range c.Request.PostForm {
		raw[field] = c.Request.PostForm.Get(field)
	}

	card, err := h.predictionService.SubmitForm(c.Request.Context(), raw)
	if err != nil {
		h.respondSubmitError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// @Summary Get the current prediction result
// @Description Get the most recent prediction result card, if one is displayed
// @Tags Predictions
// @Produce json
// @Success 200 {object} view.ResultView
// @Failure 404 {object} map[string]string "No current prediction"
// @Router /predictions/current [get]
func (h *Handler) getCurrentResult(c *gin.Context) {
	card := h.predictionService.CurrentResult()
	if card == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no current prediction"})
		return
	}
	c.JSON(http.StatusOK, card)
}

// @Summary Clear the current result
// @Description Hide the current prediction result and dismiss all notifications
// @Tags Predictions
// @Produce json
// @Success 204 "No Content"
// @Router /predictions/current [delete]
func (h *Handler) clearResult(c *gin.Context) {
	h.predictionService.Clear()
	c.Status(http.StatusNoContent)
}

// @Summary Get sample prediction data
// @Description Get a fixed demo record that passes all validation checks
// @Tags Predictions
// @Produce json
// @Success 200 {object} models.PredictionRequest
// @Router /predictions/sample [get]
func (h *Handler) getSampleData(c *gin.Context) {
	c.JSON(http.StatusOK, h.predictionService.SampleData())
}

// @Summary Get prediction backend status
// @Description Probe the prediction backend health endpoint and report the indicator state
// @Tags System
// @Produce json
// @Success 200 {object} view.StatusView
// @Router /system/status [get]
func (h *Handler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.predictionService.Status(c.Request.Context()))
}

// @Summary Get prediction backend info
// @Description Get backend metadata; falls back to defaults when the backend is unreachable
// @Tags System
// @Produce json
// @Success 200 {object} view.InfoView
// @Router /system/info [get]
func (h *Handler) getInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.predictionService.Info(c.Request.Context()))
}

// @Summary Get model information
// @Description Get details of the model serving predictions; falls back to defaults when unavailable
// @Tags System
// @Produce json
// @Success 200 {object} view.ModelInfoView
// @Router /system/models [get]
func (h *Handler) getModels(c *gin.Context) {
	c.JSON(http.StatusOK, h.predictionService.ModelInfo(c.Request.Context()))
}

// @Summary Get active notifications
// @Description Get error notifications that have not yet expired
// @Tags Notifications
// @Produce json
// @Success 200 {array} view.Notification
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	notifications := h.predictionService.Notifications()
	if notifications == nil {
		notifications = []view.Notification{}
	}
	c.JSON(http.StatusOK, notifications)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondSubmitError отображает ошибки отправки в HTTP-статусы:
// валидация - 400, занятость - 409, недоступность бэкенда - 502
func (h *Handler) respondSubmitError(c *gin.Context, log *logrus.Entry, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		log.WithField("field", verr.Field).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, service.ErrSubmissionInFlight):
		log.Warn("Submission dropped: already in flight")
		c.JSON(http.StatusConflict, gin.H{"error": "a prediction is already in progress"})
	default:
		log.WithError(err).Error("Failed to get prediction from service")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to get prediction. Please check if the API is running."})
	}
}
