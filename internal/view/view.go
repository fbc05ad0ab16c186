package view

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/JetJerry/River-Flood-Predictor/internal/models"
	"github.com/jonboulle/clockwork"
)

// Цвета индикатора вероятности по уровням
const (
	colorHighAlert = "#e74c3c" // probability > 0.7
	colorMedium    = "#f39c12" // probability > 0.4
	colorLow       = "#27ae60"
)

// Значения по умолчанию для отсутствующих метаданных бэкенда
const (
	fallbackAPIName      = "River Flood Prediction API"
	fallbackAPIVersion   = "1.0.0"
	fallbackModelName    = "Neural Network Classifier"
	fallbackModelVersion = "v7"
	fallbackModelType    = "Binary Classification"
	fallbackModelUsed    = "Neural Network Classifier v7"
	fallbackFeatureCount = 13
)

// StatusView - отображаемое состояние индикатора доступности бэкенда
type StatusView struct {
	Status models.BackendStatus `json:"status"`
	Label  string               `json:"label"`
}

// InfoView - блок метаданных бэкенда для отображения
type InfoView struct {
	APIName     string `json:"api_name"`
	Version     string `json:"version"`
	ModelStatus string `json:"model_status"`
	Features    string `json:"features"`
	Fallback    bool   `json:"fallback"` // true, если показаны значения по умолчанию
}

// ModelInfoView - блок сведений о модели для отображения
type ModelInfoView struct {
	ModelName string `json:"model_name"`
	Version   string `json:"version"`
	Type      string `json:"type"`
	Features  string `json:"features"`
	Fallback  bool   `json:"fallback"`
}

// ResultView - карточка результата предсказания
type ResultView struct {
	SubmissionID       string    `json:"submission_id"`
	Flood              bool      `json:"flood"`
	Banner             string    `json:"banner"`
	ProbabilityPercent int       `json:"probability_percent"`
	BarColor           string    `json:"bar_color"`
	ConfidenceBadge    string    `json:"confidence_badge"`
	ConfidenceLabel    string    `json:"confidence_label"`
	ModelUsed          string    `json:"model_used"`
	ProcessingTime     string    `json:"processing_time"`
	Timestamp          time.Time `json:"timestamp"`
}

// Renderer преобразует структурированные данные в модели отображения.
// Не имеет побочных эффектов; время берется из внедренных часов.
type Renderer struct {
	clock clockwork.Clock
}

// NewRenderer создает рендерер с заданным источником времени
func NewRenderer(clock clockwork.Clock) *Renderer {
	return &Renderer{clock: clock}
}

// Status отображает тройственное состояние индикатора
func (r *Renderer) Status(status models.BackendStatus) StatusView {
	view := StatusView{Status: status}
	switch status {
	case models.StatusConnected:
		view.Label = "API Connected"
	case models.StatusOffline:
		view.Label = "API Offline"
	default:
		view.Label = "API Error"
	}
	return view
}

// Info отображает метаданные бэкенда. При nil подставляется
// жестко заданный блок по умолчанию; отсутствующие поля получают
// значения по умолчанию по отдельности.
func (r *Renderer) Info(info *models.ServiceInfo) InfoView {
	if info == nil {
		return InfoView{
			APIName:     fallbackAPIName,
			Version:     fallbackAPIVersion,
			ModelStatus: "Not Loaded",
			Features:    featureLabel(fallbackFeatureCount),
			Fallback:    true,
		}
	}

	view := InfoView{
		APIName:     info.APIName,
		Version:     info.Version,
		ModelStatus: "Not Loaded",
		Features:    featureLabel(fallbackFeatureCount),
	}
	if view.APIName == "" {
		view.APIName = fallbackAPIName
	}
	if view.Version == "" {
		view.Version = fallbackAPIVersion
	}
	if info.ModelLoaded {
		view.ModelStatus = "Loaded"
	}
	if len(info.Features) > 0 {
		view.Features = featureLabel(len(info.Features))
	}
	return view
}

// ModelInfo отображает сведения о первой доступной модели
func (r *Renderer) ModelInfo(catalog *models.ModelCatalog) ModelInfoView {
	if catalog == nil {
		return ModelInfoView{
			ModelName: fallbackModelName,
			Version:   fallbackModelVersion,
			Type:      fallbackModelType,
			Features:  featureLabel(fallbackFeatureCount),
			Fallback:  true,
		}
	}

	view := ModelInfoView{
		ModelName: fallbackModelName,
		Version:   fallbackModelVersion,
		Type:      fallbackModelType,
		Features:  featureLabel(fallbackFeatureCount),
	}
	if len(catalog.AvailableModels) > 0 {
		first := catalog.AvailableModels[0]
		if first.Name != "" {
			view.ModelName = first.Name
		}
		if first.Version != "" {
			view.Version = first.Version
		}
		if first.Type != "" {
			view.Type = first.Type
		}
	}
	if len(catalog.FeaturesUsed) > 0 {
		view.Features = featureLabel(len(catalog.FeaturesUsed))
	}
	return view
}

// Result отображает карточку предсказания. Значения по умолчанию
// для опциональных полей подставляются здесь, а не в API-клиенте.
func (r *Renderer) Result(submissionID string, result *models.PredictionResult) ResultView {
	view := ResultView{
		SubmissionID:       submissionID,
		Flood:              result.IsFlood(),
		Banner:             "NO FLOOD RISK",
		ProbabilityPercent: int(math.Round(result.Probability * 100)),
		BarColor:           probabilityColor(result.Probability),
		ConfidenceBadge:    strings.ToLower(result.Confidence),
		ConfidenceLabel:    result.Confidence + " Confidence",
		ModelUsed:          result.ModelUsed,
		ProcessingTime:     "N/A",
		Timestamp:          r.clock.Now(),
	}
	if view.Flood {
		view.Banner = "FLOOD RISK DETECTED"
	}
	if view.ModelUsed == "" {
		view.ModelUsed = fallbackModelUsed
	}
	if result.ProcessingTime != nil {
		view.ProcessingTime = fmt.Sprintf("%.3f seconds", *result.ProcessingTime)
	}
	return view
}

// probabilityColor возвращает цвет индикатора по трехуровневой политике
func probabilityColor(probability float64) string {
	switch {
	case probability > 0.7:
		return colorHighAlert
	case probability > 0.4:
		return colorMedium
	default:
		return colorLow
	}
}

func featureLabel(count int) string {
	return fmt.Sprintf("%d parameters", count)
}
