package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/JetJerry/River-Flood-Predictor/internal/models"
)

// Kind - категория ошибки валидации
type Kind string

const (
	KindMissingField Kind = "missing_field"
	KindInvalidType  Kind = "invalid_type"
	KindOutOfRange   Kind = "out_of_range"
)

// Error - первая нарушенная проверка для одного поля.
// Ошибки не агрегируются: валидация прерывается на первом нарушении.
type Error struct {
	Field   string
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// requiredFields - все 13 обязательных полей в фиксированном порядке проверки
var requiredFields = []string{
	"latitude", "longitude", "elevation", "rainfall", "temperature",
	"humidity", "river_discharge", "water_level", "land_cover",
	"soil_type", "population_density", "infrastructure", "historical_floods",
}

// rangeRule - допустимый диапазон числового поля (границы включительно)
type rangeRule struct {
	field   string
	min     float64
	max     float64
	message string
	value   func(*models.PredictionRequest) float64
}

// rangeRules проверяются строго в этом порядке, побеждает первое нарушение.
// Категориальные поля и целочисленные флаги проверяются только на наличие.
var rangeRules = []rangeRule{
	{"latitude", -90, 90, "Latitude must be between -90 and 90",
		func(r *models.PredictionRequest) float64 { return r.Latitude }},
	{"longitude", -180, 180, "Longitude must be between -180 and 180",
		func(r *models.PredictionRequest) float64 { return r.Longitude }},
	{"elevation", 0, 10000, "Elevation must be between 0 and 10,000 meters",
		func(r *models.PredictionRequest) float64 { return r.Elevation }},
	{"rainfall", 0, 1000, "Rainfall must be between 0 and 1,000 mm",
		func(r *models.PredictionRequest) float64 { return r.Rainfall }},
	{"temperature", -50, 60, "Temperature must be between -50 and 60°C",
		func(r *models.PredictionRequest) float64 { return r.Temperature }},
	{"humidity", 0, 100, "Humidity must be between 0 and 100%",
		func(r *models.PredictionRequest) float64 { return r.Humidity }},
	{"river_discharge", 0, 10000, "River discharge must be between 0 and 10,000 m³/s",
		func(r *models.PredictionRequest) float64 { return r.RiverDischarge }},
	{"water_level", 0, 50, "Water level must be between 0 and 50 meters",
		func(r *models.PredictionRequest) float64 { return r.WaterLevel }},
	{"population_density", 0, 50000, "Population density must be between 0 and 50,000",
		func(r *models.PredictionRequest) float64 { return r.PopulationDensity }},
}

// Validate преобразует сырые значения полей формы в типизированный запрос.
// Порядок проверок: наличие всех полей, числовое приведение, диапазоны.
// Возвращает типизированный запрос либо первую нарушенную проверку.
func Validate(raw map[string]string) (*models.PredictionRequest, *Error) {
	for _, field := range requiredFields {
		if strings.TrimSpace(raw[field]) == "" {
			return nil, &Error{
				Field:   field,
				Kind:    KindMissingField,
				Message: fmt.Sprintf("Please fill in all required fields. Missing: %s", field),
			}
		}
	}

	req := &models.PredictionRequest{
		LandCover: strings.TrimSpace(raw["land_cover"]),
		SoilType:  strings.TrimSpace(raw["soil_type"]),
	}

	floatTargets := []struct {
		field string
		dst   *float64
	}{
		{"latitude", &req.Latitude},
		{"longitude", &req.Longitude},
		{"elevation", &req.Elevation},
		{"rainfall", &req.Rainfall},
		{"temperature", &req.Temperature},
		{"humidity", &req.Humidity},
		{"river_discharge", &req.RiverDischarge},
		{"water_level", &req.WaterLevel},
		{"population_density", &req.PopulationDensity},
	}

	for _, target := range floatTargets {
		value, err := strconv.ParseFloat(strings.TrimSpace(raw[target.field]), 64)
		// NaN и Inf проходят strconv, но непредставимы для бэкенда
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, invalidType(target.field)
		}
		*target.dst = value
	}

	intTargets := []struct {
		field string
		dst   *int
	}{
		{"infrastructure", &req.Infrastructure},
		{"historical_floods", &req.HistoricalFloods},
	}

	for _, target := range intTargets {
		value, err := strconv.Atoi(strings.TrimSpace(raw[target.field]))
		if err != nil {
			return nil, invalidType(target.field)
		}
		*target.dst = value
	}

	if verr := CheckRanges(req); verr != nil {
		return nil, verr
	}

	return req, nil
}

// CheckRanges проверяет диапазоны уже типизированного запроса.
// Используется также JSON-путем хэндлера, чтобы оба пути отдавали
// одинаковые сообщения об ошибках.
func CheckRanges(req *models.PredictionRequest) *Error {
	for _, rule := range rangeRules {
		value := rule.value(req)
		if value < rule.min || value > rule.max {
			return &Error{
				Field:   rule.field,
				Kind:    KindOutOfRange,
				Message: rule.message,
			}
		}
	}
	return nil
}

func invalidType(field string) *Error {
	return &Error{
		Field:   field,
		Kind:    KindInvalidType,
		Message: fmt.Sprintf("%s must be a number", field),
	}
}
