package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/JetJerry/River-Flood-Predictor/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	healthPath  = "/health"
	infoPath    = "/info"
	modelsPath  = "/predictions/models/available"
	predictPath = "/predict"
)

// HTTPClient - клиент сервиса предсказаний, работающий поверх REST API.
// Каждый вызов выполняется ровно один раз, без повторных попыток.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *logrus.Logger
}

// NewHTTPClient создает клиент бэкенда с заданным таймаутом
func NewHTTPClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// healthResponse - полезная нагрузка GET /health
type healthResponse struct {
	Status string `json:"status"`
}

// CheckHealth опрашивает /health и сводит результат к трем состояниям:
// connected - транспорт успешен, 2xx и status == "healthy";
// error - бэкенд доступен, но нездоров;
// offline - транспортная ошибка.
func (c *HTTPClient) CheckHealth(ctx context.Context) models.BackendStatus {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return models.StatusOffline
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.WithError(err).Debug("Health check transport failure")
		return models.StatusOffline
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.StatusError
	}

	var health healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		c.logger.WithError(err).Debug("Health check decode failure")
		return models.StatusError
	}

	// Единственное распознаваемое значение успеха - "healthy"
	if health.Status != "healthy" {
		return models.StatusError
	}

	return models.StatusConnected
}

// GetInfo запрашивает информационную запись бэкенда из GET /info
func (c *HTTPClient) GetInfo(ctx context.Context) (*models.ServiceInfo, error) {
	var info models.ServiceInfo
	if err := c.getJSON(ctx, infoPath, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetModels запрашивает каталог доступных моделей
func (c *HTTPClient) GetModels(ctx context.Context) (*models.ModelCatalog, error) {
	var catalog models.ModelCatalog
	if err := c.getJSON(ctx, modelsPath, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Predict отправляет запрос предсказания и декодирует результат.
// Схема ответа сверх доступа к полям не проверяется: отсутствующие
// опциональные поля получают значения по умолчанию при отображении.
func (c *HTTPClient) Predict(ctx context.Context, request *models.PredictionRequest) (*models.PredictionResult, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prediction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+predictPath, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prediction request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("prediction service returned status: %d", resp.StatusCode)
	}

	var result models.PredictionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode prediction response: %w", err)
	}

	return &result, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code from %s: %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}
