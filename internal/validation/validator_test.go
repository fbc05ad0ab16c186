package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleRawFields - корректный набор сырых полей формы
func sampleRawFields() map[string]string {
	return map[string]string{
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
}

func TestValidate_Success(t *testing.T) {
	req, verr := Validate(sampleRawFields())

	require.Nil(t, verr)
	require.NotNil(t, req)

	// Значения передаются в запрос поле в поле, без преобразований
	assert.Equal(t, 28.6139, req.Latitude)
	assert.Equal(t, 77.2090, req.Longitude)
	assert.Equal(t, 216.0, req.Elevation)
	assert.Equal(t, 150.5, req.Rainfall)
	assert.Equal(t, 25.3, req.Temperature)
	assert.Equal(t, 65.0, req.Humidity)
	assert.Equal(t, 2500.0, req.RiverDischarge)
	assert.Equal(t, 5.2, req.WaterLevel)
	assert.Equal(t, "Urban", req.LandCover)
	assert.Equal(t, "Clay", req.SoilType)
	assert.Equal(t, 5000.0, req.PopulationDensity)
	assert.Equal(t, 1, req.Infrastructure)
	assert.Equal(t, 0, req.HistoricalFloods)
}

func TestValidate_MissingField(t *testing.T) {
	// Отсутствие любого из 13 полей должно давать ошибку с именем поля
	for _, field := range requiredFields {
		raw := sampleRawFields()
		delete(raw, field)

		req, verr := Validate(raw)

		require.NotNil(t, verr, "field %s", field)
		assert.Nil(t, req)
		assert.Equal(t, KindMissingField, verr.Kind)
		assert.Equal(t, field, verr.Field)
		assert.Equal(t, fmt.Sprintf("Please fill in all required fields. Missing: %s", field), verr.Message)
	}
}

func TestValidate_EmptyFieldTreatedAsMissing(t *testing.T) {
	raw := sampleRawFields()
	raw["rainfall"] = "   "

	req, verr := Validate(raw)

	require.NotNil(t, verr)
	assert.Nil(t, req)
	assert.Equal(t, KindMissingField, verr.Kind)
	assert.Equal(t, "rainfall", verr.Field)
}

func TestValidate_InvalidNumericText(t *testing.T) {
	raw := sampleRawFields()
	raw["elevation"] = "high"

	req, verr := Validate(raw)

	require.NotNil(t, verr)
	assert.Nil(t, req)
	assert.Equal(t, KindInvalidType, verr.Kind)
	assert.Equal(t, "elevation", verr.Field)
	assert.Equal(t, "elevation must be a number", verr.Message)
}

func TestValidate_NaNRejected(t *testing.T) {
	// strconv принимает "NaN", но такой ввод непредставим для бэкенда
	raw := sampleRawFields()
	raw["water_level"] = "NaN"

	_, verr := Validate(raw)

	require.NotNil(t, verr)
	assert.Equal(t, KindInvalidType, verr.Kind)
	assert.Equal(t, "water_level", verr.Field)
}

func TestValidate_InvalidIntegerFlag(t *testing.T) {
	raw := sampleRawFields()
	raw["infrastructure"] = "yes"

	_, verr := Validate(raw)

	require.NotNil(t, verr)
	assert.Equal(t, KindInvalidType, verr.Kind)
	assert.Equal(t, "infrastructure", verr.Field)
}

func TestValidate_RangeBounds(t *testing.T) {
	// Значения на границах проходят, на единицу за границей - нет
	cases := []struct {
		field   string
		lower   float64
		upper   float64
		message string
	}{
		{"latitude", -90, 90, "Latitude must be between -90 and 90"},
		{"longitude", -180, 180, "Longitude must be between -180 and 180"},
		{"elevation", 0, 10000, "Elevation must be between 0 and 10,000 meters"},
		{"rainfall", 0, 1000, "Rainfall must be between 0 and 1,000 mm"},
		{"temperature", -50, 60, "Temperature must be between -50 and 60°C"},
		{"humidity", 0, 100, "Humidity must be between 0 and 100%"},
		{"river_discharge", 0, 10000, "River discharge must be between 0 and 10,000 m³/s"},
		{"water_level", 0, 50, "Water level must be between 0 and 50 meters"},
		{"population_density", 0, 50000, "Population density must be between 0 and 50,000"},
	}

	for _, tc := range cases {
		for _, boundary := range []float64{tc.lower, tc.upper} {
			raw := sampleRawFields()
			raw[tc.field] = fmt.Sprintf("%v", boundary)

			_, verr := Validate(raw)
			assert.Nil(t, verr, "field %s at boundary %v must pass", tc.field, boundary)
		}

		for _, outside := range []float64{tc.lower - 1, tc.upper + 1} {
			raw := sampleRawFields()
			raw[tc.field] = fmt.Sprintf("%v", outside)

			_, verr := Validate(raw)
			require.NotNil(t, verr, "field %s outside bound %v must fail", tc.field, outside)
			assert.Equal(t, KindOutOfRange, verr.Kind)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, tc.message, verr.Message)
		}
	}
}

func TestValidate_FirstRangeViolationWins(t *testing.T) {
	// При нескольких нарушениях возвращается первое по фиксированному порядку
	raw := sampleRawFields()
	raw["latitude"] = "91"
	raw["humidity"] = "150"

	_, verr := Validate(raw)

	require.NotNil(t, verr)
	assert.Equal(t, "latitude", verr.Field)
}

func TestCheckRanges_Success(t *testing.T) {
	req, verr := Validate(sampleRawFields())
	require.Nil(t, verr)

	assert.Nil(t, CheckRanges(req))
}
