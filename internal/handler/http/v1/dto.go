package v1

// PredictionRequestDTO DTO для запроса предсказания наводнения.
// Числовые поля объявлены указателями, чтобы required отличал
// отсутствующее поле от допустимого нулевого значения.
// @Description DTO для запроса предсказания наводнения
type PredictionRequestDTO struct {
	Latitude          *float64 `json:"latitude" validate:"required"`
	Longitude         *float64 `json:"longitude" validate:"required"`
	Elevation         *float64 `json:"elevation" validate:"required"`
	Rainfall          *float64 `json:"rainfall" validate:"required"`
	Temperature       *float64 `json:"temperature" validate:"required"`
	Humidity          *float64 `json:"humidity" validate:"required"`
	RiverDischarge    *float64 `json:"river_discharge" validate:"required"`
	WaterLevel        *float64 `json:"water_level" validate:"required"`
	LandCover         string   `json:"land_cover" validate:"required"`
	SoilType          string   `json:"soil_type" validate:"required"`
	PopulationDensity *float64 `json:"population_density" validate:"required"`
	Infrastructure    *int     `json:"infrastructure" validate:"required"`
	HistoricalFloods  *int     `json:"historical_floods" validate:"required"`
}
