package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/JetJerry/River-Flood-Predictor/internal/models"
	"github.com/JetJerry/River-Flood-Predictor/internal/observability"
	"github.com/JetJerry/River-Flood-Predictor/internal/validation"
	"github.com/JetJerry/River-Flood-Predictor/internal/view"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrSubmissionInFlight возвращается, когда предсказание уже выполняется.
// Повторная отправка отбрасывается, а не ставится в очередь.
var ErrSubmissionInFlight = errors.New("service: submission already in flight")

// Сообщение об ошибке предсказания для пользователя
const predictionFailedMessage = "Failed to get prediction. Please check if the API is running."

// BackendClient определяет контракт для обращения к сервису предсказаний
type BackendClient interface {
	CheckHealth(ctx context.Context) models.BackendStatus
	GetInfo(ctx context.Context) (*models.ServiceInfo, error)
	GetModels(ctx context.Context) (*models.ModelCatalog, error)
	Predict(ctx context.Context, request *models.PredictionRequest) (*models.PredictionResult, error)
}

// PredictionService определяет контракт бизнес-логики клиента предсказаний
type PredictionService interface {
	Submit(ctx context.Context, request *models.PredictionRequest) (*view.ResultView, error)
	SubmitForm(ctx context.Context, raw map[string]string) (*view.ResultView, error)
	CurrentResult() *view.ResultView
	Clear()
	SampleData() *models.PredictionRequest
	Status(ctx context.Context) view.StatusView
	Info(ctx context.Context) view.InfoView
	ModelInfo(ctx context.Context) view.ModelInfoView
	Notifications() []view.Notification
}

type predictionService struct {
	backend  BackendClient
	renderer *view.Renderer
	notifier *view.Notifier
	metrics  *observability.Metrics
	logger   *logrus.Logger

	// busy - единственный флаг занятости: Idle (false) / Submitting (true)
	busy atomic.Bool

	mu      sync.Mutex
	current *view.ResultView
}

func NewPredictionService(
	backend BackendClient,
	renderer *view.Renderer,
	notifier *view.Notifier,
	metrics *observability.Metrics,
	logger *logrus.Logger,
) PredictionService {
	return &predictionService{
		backend:  backend,
		renderer: renderer,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Submit выполняет предсказание для уже типизированного запроса.
// Проверка диапазонов идет до сетевого вызова; занятый сервис
// отбрасывает отправку без обращения к бэкенду.
func (s *predictionService) Submit(ctx context.Context, request *models.PredictionRequest) (*view.ResultView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "prediction",
		"method":  "Submit",
	})

	if verr := validation.CheckRanges(request); verr != nil {
		s.rejectValidation(log, verr)
		return nil, verr
	}

	if !s.busy.CompareAndSwap(false, true) {
		log.Warn("Submission dropped: another prediction is in flight")
		s.metrics.SubmissionsTotal.WithLabelValues("dropped").Inc()
		return nil, ErrSubmissionInFlight
	}
	// Флаг занятости снимается при любом исходе запроса
	defer s.busy.Store(false)

	s.metrics.SubmissionsInFlight.Set(1)
	defer s.metrics.SubmissionsInFlight.Set(0)

	submissionID := uuid.New().String()
	log = log.WithField("submission_id", submissionID)
	log.Info("Submitting prediction request")

	start := time.Now()
	result, err := s.backend.Predict(ctx, request)
	s.metrics.BackendDuration.WithLabelValues("predict").Observe(time.Since(start).Seconds())

	if err != nil {
		log.WithError(err).Error("Failed to get prediction from backend")
		s.metrics.SubmissionsTotal.WithLabelValues("error").Inc()
		s.pushNotification(predictionFailedMessage)
		return nil, fmt.Errorf("service: could not get prediction: %w", err)
	}

	card := s.renderer.Result(submissionID, result)

	s.mu.Lock()
	s.current = &card
	s.mu.Unlock()

	s.metrics.SubmissionsTotal.WithLabelValues("success").Inc()
	log.WithFields(logrus.Fields{
		"prediction":  result.Prediction,
		"probability": result.Probability,
		"confidence":  result.Confidence,
	}).Info("Prediction completed successfully")

	return &card, nil
}

// SubmitForm валидирует сырые поля формы и выполняет предсказание
func (s *predictionService) SubmitForm(ctx context.Context, raw map[string]string) (*view.ResultView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "prediction",
		"method":  "SubmitForm",
	})

	// Быстрый отказ до валидации, как и при отправке формы в UI
	if s.busy.Load() {
		log.Warn("Submission dropped: another prediction is in flight")
		s.metrics.SubmissionsTotal.WithLabelValues("dropped").Inc()
		return nil, ErrSubmissionInFlight
	}

	request, verr := validation.Validate(raw)
	if verr != nil {
		s.rejectValidation(log, verr)
		return nil, verr
	}

	return s.Submit(ctx, request)
}

// CurrentResult возвращает последнюю отображенную карточку предсказания
func (s *predictionService) CurrentResult() *view.ResultView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Clear скрывает результат и уведомления. Идемпотентна.
func (s *predictionService) Clear() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.notifier.Clear()
	s.logger.WithField("service", "prediction").Debug("Cleared current result and notifications")
}

// SampleData возвращает фиксированную демонстрационную запись
func (s *predictionService) SampleData() *models.PredictionRequest {
	return &models.PredictionRequest{
		Latitude:          28.6139,
		Longitude:         77.2090,
		Elevation:         216.0,
		Rainfall:          150.5,
		Temperature:       25.3,
		Humidity:          65.0,
		RiverDischarge:    2500.0,
		WaterLevel:        5.2,
		LandCover:         "Urban",
		SoilType:          "Clay",
		PopulationDensity: 5000.0,
		Infrastructure:    1,
		HistoricalFloods:  0,
	}
}

// Status опрашивает /health бэкенда и отображает индикатор.
// Результат каждой проверки замещает предыдущий, история не хранится.
func (s *predictionService) Status(ctx context.Context) view.StatusView {
	start := time.Now()
	status := s.backend.CheckHealth(ctx)
	s.metrics.BackendDuration.WithLabelValues("health").Observe(time.Since(start).Seconds())

	s.logger.WithFields(logrus.Fields{
		"service": "prediction",
		"method":  "Status",
		"status":  status,
	}).Debug("Backend health checked")

	return s.renderer.Status(status)
}

// Info возвращает метаданные бэкенда. Ошибка загрузки деградирует
// до отображения значений по умолчанию, а не до баннера ошибки.
func (s *predictionService) Info(ctx context.Context) view.InfoView {
	log := s.logger.WithFields(logrus.Fields{
		"service": "prediction",
		"method":  "Info",
	})

	start := time.Now()
	info, err := s.backend.GetInfo(ctx)
	s.metrics.BackendDuration.WithLabelValues("info").Observe(time.Since(start).Seconds())

	if err != nil {
		log.WithError(err).Warn("Failed to load API info, falling back to defaults")
		return s.renderer.Info(nil)
	}

	return s.renderer.Info(info)
}

// ModelInfo возвращает сведения о модели с той же политикой деградации
func (s *predictionService) ModelInfo(ctx context.Context) view.ModelInfoView {
	log := s.logger.WithFields(logrus.Fields{
		"service": "prediction",
		"method":  "ModelInfo",
	})

	start := time.Now()
	catalog, err := s.backend.GetModels(ctx)
	s.metrics.BackendDuration.WithLabelValues("models").Observe(time.Since(start).Seconds())

	if err != nil {
		log.WithError(err).Warn("Failed to load model info, falling back to defaults")
		return s.renderer.ModelInfo(nil)
	}

	return s.renderer.ModelInfo(catalog)
}

// Notifications возвращает активные уведомления об ошибках
func (s *predictionService) Notifications() []view.Notification {
	return s.notifier.Active()
}

func (s *predictionService) rejectValidation(log *logrus.Entry, verr *validation.Error) {
	log.WithFields(logrus.Fields{
		"field":  verr.Field,
		"reason": verr.Kind,
	}).Warn("Validation failed, request not sent")

	s.metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
	s.metrics.ValidationRejections.WithLabelValues(string(verr.Kind)).Inc()
	s.pushNotification(verr.Message)
}

func (s *predictionService) pushNotification(message string) {
	s.notifier.Push(message)
	s.metrics.NotificationsPushed.Inc()
}
