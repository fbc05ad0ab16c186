package models

// PredictionRequest - запись из 13 входных параметров риска наводнения.
// Имена полей в snake_case соответствуют контракту бэкенда.
type PredictionRequest struct {
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	Elevation         float64 `json:"elevation"`
	Rainfall          float64 `json:"rainfall"`
	Temperature       float64 `json:"temperature"`
	Humidity          float64 `json:"humidity"`
	RiverDischarge    float64 `json:"river_discharge"`
	WaterLevel        float64 `json:"water_level"`
	LandCover         string  `json:"land_cover"`
	SoilType          string  `json:"soil_type"`
	PopulationDensity float64 `json:"population_density"`
	Infrastructure    int     `json:"infrastructure"`
	HistoricalFloods  int     `json:"historical_floods"`
}

// PredictionResult - ответ бэкенда на запрос предсказания.
// Опциональные поля могут отсутствовать; значения по умолчанию
// подставляются на границе отображения, а не при декодировании.
type PredictionResult struct {
	Prediction     int      `json:"prediction"` // 0 - нет наводнения, 1 - наводнение
	Probability    float64  `json:"probability"`
	Confidence     string   `json:"confidence"` // Low, Medium, High
	ModelUsed      string   `json:"model_used,omitempty"`
	ProcessingTime *float64 `json:"processing_time,omitempty"`
}

// IsFlood сообщает, предсказано ли наводнение
func (r *PredictionResult) IsFlood() bool {
	return r.Prediction == 1
}
