package models

// ServiceInfo - информационная запись о бэкенде, получаемая из GET /info.
// Используется только для отображения, инварианты не проверяются.
type ServiceInfo struct {
	APIName     string   `json:"api_name"`
	Version     string   `json:"version"`
	ModelLoaded bool     `json:"model_loaded"`
	Features    []string `json:"features"`
}

// ModelInfo - описание одной доступной модели
type ModelInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Type    string `json:"type"`
}

// ModelCatalog - ответ бэкенда на GET /predictions/models/available
type ModelCatalog struct {
	AvailableModels []ModelInfo `json:"available_models"`
	FeaturesUsed    []string    `json:"features_used"`
}
