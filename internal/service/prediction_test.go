package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/JetJerry/River-Flood-Predictor/internal/models"
	"github.com/JetJerry/River-Flood-Predictor/internal/observability"
	"github.com/JetJerry/River-Flood-Predictor/internal/service/mocks"
	"github.com/JetJerry/River-Flood-Predictor/internal/validation"
	"github.com/JetJerry/River-Flood-Predictor/internal/view"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPredictionService(t *testing.T) (PredictionService, *mocks.MockBackendClient, *view.Notifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackendClient(ctrl)

	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC))
	notifier := view.NewNotifier(5*time.Second, clock)

	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := NewPredictionService(
		backend,
		view.NewRenderer(clock),
		notifier,
		observability.NewMetricsForTesting(),
		log,
	)

	return svc, backend, notifier
}

func validRequest() *models.PredictionRequest {
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

func TestSubmit_Success(t *testing.T) {
	svc, backend, _ := newTestPredictionService(t)
	request := validRequest()

	backend.EXPECT().
		Predict(gomock.Any(), request).
		Return(&models.PredictionResult{Prediction: 1, Probability: 0.82, Confidence: "High"}, nil)

	card, err := svc.Submit(context.Background(), request)

	require.NoError(t, err)
	require.NotNil(t, card)
	assert.True(t, card.Flood)
	assert.Equal(t, 82, card.ProbabilityPercent)
	assert.NotEmpty(t, card.SubmissionID)

	// Карточка становится текущим результатом
	current := svc.CurrentResult()
	require.NotNil(t, current)
	assert.Equal(t, card.SubmissionID, current.SubmissionID)
}

func TestSubmit_BackendError(t *testing.T) {
	svc, backend, notifier := newTestPredictionService(t)

	backend.EXPECT().
		Predict(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	card, err := svc.Submit(context.Background(), validRequest())

	require.Error(t, err)
	assert.Nil(t, card)
	assert.Nil(t, svc.CurrentResult())

	active := notifier.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Failed to get prediction. Please check if the API is running.", active[0].Message)
}

func TestSubmit_RangeViolationSkipsBackend(t *testing.T) {
	svc, _, notifier := newTestPredictionService(t)

	// Predict не ожидается: запрос с нарушением диапазона не уходит в сеть
	request := validRequest()
	request.Latitude = 91

	card, err := svc.Submit(context.Background(), request)

	require.Error(t, err)
	assert.Nil(t, card)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindOutOfRange, verr.Kind)
	assert.Equal(t, "Latitude must be between -90 and 90", verr.Message)

	active := notifier.Active()
	require.Len(t, active, 1)
	assert.Equal(t, verr.Message, active[0].Message)
}

func TestSubmit_ConcurrentSubmissionDropped(t *testing.T) {
	svc, backend, _ := newTestPredictionService(t)

	started := make(chan struct{})
	release := make(chan struct{})

	// Первый запрос удерживает флаг занятости, пока не закроется release
	backend.EXPECT().
		Predict(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, request *models.PredictionRequest) (*models.PredictionResult, error) {
			close(started)
			<-release
			return &models.PredictionResult{Prediction: 0, Probability: 0.1, Confidence: "Low"}, nil
		}).
		Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Submit(context.Background(), validRequest())
		assert.NoError(t, err)
	}()

	<-started
	_, err := svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	_, err = svc.SubmitForm(context.Background(), map[string]string{})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	wg.Wait()
}

func TestSubmitForm_Success(t *testing.T) {
	svc, backend, _ := newTestPredictionService(t)

	backend.EXPECT().
		Predict(gomock.Any(), gomock.Any()).
		Return(&models.PredictionResult{Prediction: 0, Probability: 0.15, Confidence: "Low"}, nil)

	raw := map[string]string{
		"latitude":           "28.6139",
		"longitude":          "77.2090",
		"elevation":          "216.0",
		"rainfall":           "150.5",
		"temperature":        "25.3",
		"humidity":           "65.0",
		"river_discharge":    "2500.0",
		"water_level":        "5.2",
		"land_cover":         "Urban",
		"soil_type":          "Clay",
		"population_density": "5000.0",
		"infrastructure":     "1",
		"historical_floods":  "0",
	}

	card, err := svc.SubmitForm(context.Background(), raw)

	require.NoError(t, err)
	require.NotNil(t, card)
	assert.False(t, card.Flood)
	assert.Equal(t, "NO FLOOD RISK", card.Banner)
}

func TestSubmitForm_MissingFieldSkipsBackend(t *testing.T) {
	svc, _, notifier := newTestPredictionService(t)

	// Predict не ожидается: невалидная форма отклоняется до сети
	card, err := svc.SubmitForm(context.Background(), map[string]string{"latitude": "28.6"})

	require.Error(t, err)
	assert.Nil(t, card)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindMissingField, verr.Kind)

	assert.Len(t, notifier.Active(), 1)
}

func TestClear_IsIdempotent(t *testing.T) {
	svc, backend, notifier := newTestPredictionService(t)

	backend.EXPECT().
		Predict(gomock.Any(), gomock.Any()).
		Return(&models.PredictionResult{Prediction: 1, Probability: 0.9, Confidence: "High"}, nil)

	_, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	notifier.Push("stale error")

	svc.Clear()
	assert.Nil(t, svc.CurrentResult())
	assert.Empty(t, svc.Notifications())

	// Повторная очистка без результата не меняет состояние
	svc.Clear()
	assert.Nil(t, svc.CurrentResult())
}

func TestSampleData(t *testing.T) {
	svc, _, _ := newTestPredictionService(t)

	sample := svc.SampleData()

	require.NotNil(t, sample)
	assert.Equal(t, 28.6139, sample.Latitude)
	assert.Equal(t, 77.2090, sample.Longitude)
	assert.Equal(t, "Urban", sample.LandCover)
	assert.Equal(t, "Clay", sample.SoilType)
	assert.Equal(t, 1, sample.Infrastructure)
	assert.Equal(t, 0, sample.HistoricalFloods)

	// Проверка диапазонов проходит для демонстрационной записи
	assert.Nil(t, validation.CheckRanges(sample))
}

func TestStatus(t *testing.T) {
	svc, backend, _ := newTestPredictionService(t)

	backend.EXPECT().CheckHealth(gomock.Any()).Return(models.StatusConnected)
	status := svc.Status(context.Background())
	assert.Equal(t, "API Connected", status.Label)

	backend.EXPECT().CheckHealth(gomock.Any()).Return(models.StatusOffline)
	status = svc.Status(context.Background())
	assert.Equal(t, "API Offline", status.Label)
}

func TestInfo_FallbackOnBackendError(t *testing.T) {
	svc, backend, _ := newTestPredictionService(t)

	backend.EXPECT().GetInfo(gomock.Any()).Return(nil, errors.New("timeout"))

	block := svc.Info(context.Background())

	// Ошибка метаданных деградирует до значений по умолчанию без баннера
	assert.True(t, block.Fallback)
	assert.Equal(t, "River Flood Prediction API", block.APIName)
	assert.Empty(t, svc.Notifications())
}

func TestInfo_Success(t *testing.T) {
	svc, backend, _ := newTestPredictionService(t)

	backend.EXPECT().GetInfo(gomock.Any()).Return(&models.ServiceInfo{
		APIName:     "River Flood Prediction API",
		Version:     "2.1.0",
		ModelLoaded: true,
		Features:    []string{"latitude", "longitude"},
	}, nil)

	block := svc.Info(context.Background())

	assert.False(t, block.Fallback)
	assert.Equal(t, "2.1.0", block.Version)
	assert.Equal(t, "Loaded", block.ModelStatus)
}

func TestModelInfo_FallbackOnBackendError(t *testing.T) {
	svc, backend, _ := newTestPredictionService(t)

	backend.EXPECT().GetModels(gomock.Any()).Return(nil, errors.New("timeout"))

	block := svc.ModelInfo(context.Background())

	assert.True(t, block.Fallback)
	assert.Equal(t, "Neural Network Classifier", block.ModelName)
	assert.Equal(t, "v7", block.Version)
}
