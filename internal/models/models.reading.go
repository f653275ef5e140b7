// FilePath: internal/models/models.reading.go
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Fallback values applied when the device omits a categorical field.
const (
	DefaultAirQuality = "Unknown"
	DefaultFanState   = "OFF"
	DefaultFanMode    = "AUTO"
	DefaultBuzzer     = "OFF"
	DefaultBuzzerMode = "MANUAL"
)

// Reading is one parsed sensor sample plus the peripheral state the device
// reported alongside it. A Reading is never mutated after construction;
// CapturedAt is assigned client-side at parse time, not taken from the device.
type Reading struct {
	CO2         float64            `json:"co2"`
	Ammonia     float64            `json:"ammonia"`
	NO2         float64            `json:"no2"`
	Benzene     float64            `json:"benzene"`
	Temperature float64            `json:"temperature"`
	Humidity    float64            `json:"humidity"`
	AirQuality  string             `json:"air_quality"`
	Fan         string             `json:"fan"`
	FanMode     string             `json:"fan_mode"`
	Buzzer      string             `json:"buzzer"`
	BuzzerMode  string             `json:"buzzer_mode"`
	Thresholds  map[string]float64 `json:"thresholds"`
	CapturedAt  time.Time          `json:"captured_at"`
}

// ParseReading builds a Reading from a raw /sensor response body.
// Every measurement defaults to 0 and every categorical field to its fixed
// fallback when absent or of the wrong type. The Thresholds object is the one
// required field: a missing or non-object Thresholds fails the whole parse.
func ParseReading(body []byte) (*Reading, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("invalid sensor payload: %w", err)
	}

	thresholds, err := parseThresholds(payload["Thresholds"])
	if err != nil {
		return nil, err
	}

	return &Reading{
		CO2:         numberField(payload, "CO2"),
		Ammonia:     numberField(payload, "Ammonia"),
		NO2:         numberField(payload, "NO2"),
		Benzene:     numberField(payload, "Benzene"),
		Temperature: numberField(payload, "Temperature"),
		Humidity:    numberField(payload, "Humidity"),
		AirQuality:  stringField(payload, "AirQuality", DefaultAirQuality),
		Fan:         stringField(payload, "Fan", DefaultFanState),
		FanMode:     stringField(payload, "FanMode", DefaultFanMode),
		Buzzer:      stringField(payload, "Buzzer", DefaultBuzzer),
		BuzzerMode:  stringField(payload, "BuzzerMode", DefaultBuzzerMode),
		Thresholds:  thresholds,
		CapturedAt:  time.Now(),
	}, nil
}

func parseThresholds(raw any) (map[string]float64, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("sensor payload is missing a Thresholds object")
	}

	thresholds := make(map[string]float64, len(obj))
	for key, value := range obj {
		// Non-numeric values are skipped; the object shape is what matters.
		if limit, ok := asFloat(value); ok {
			thresholds[key] = limit
		}
	}
	return thresholds, nil
}

func numberField(payload map[string]any, key string) float64 {
	if value, ok := asFloat(payload[key]); ok {
		return value
	}
	return 0
}

func stringField(payload map[string]any, key, fallback string) string {
	if value, ok := payload[key].(string); ok && value != "" {
		return value
	}
	return fallback
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
