package v1

import "github.com/JetJerry/River-Flood-Predictor/internal/models"

// DTOToPredictionRequest преобразует DTO запроса в доменную модель.
// Вызывается после проверки required, поэтому указатели не nil.
func DTOToPredictionRequest(dto PredictionRequestDTO) *models.PredictionRequest {
	return &models.PredictionRequest{
		Latitude:          *dto.Latitude,
		Longitude:         *dto.Longitude,
		Elevation:         *dto.Elevation,
		Rainfall:          *dto.Rainfall,
		Temperature:       *dto.Temperature,
		Humidity:          *dto.Humidity,
		RiverDischarge:    *dto.RiverDischarge,
		WaterLevel:        *dto.WaterLevel,
		LandCover:         dto.LandCover,
		SoilType:          dto.SoilType,
		PopulationDensity: *dto.PopulationDensity,
		Infrastructure:    *dto.Infrastructure,
		HistoricalFloods:  *dto.HistoricalFloods,
	}
}
