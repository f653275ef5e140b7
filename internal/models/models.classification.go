// FilePath: internal/models/models.classification.go
package models

// Level is a qualitative air-quality severity, ordered Good < Moderate <
// Unhealthy < Hazardous.
type Level string

const (
	LevelGood      Level = "Good"
	LevelModerate  Level = "Moderate"
	LevelUnhealthy Level = "Unhealthy"
	LevelHazardous Level = "Hazardous"
	LevelUnknown   Level = "Unknown"
)

// Classify maps four pollutant concentrations to a severity level. Bands are
// checked from most severe to least severe and the first match wins, so a
// single pollutant over its Hazardous limit makes the whole reading Hazardous.
// All comparisons are strict. Temperature and humidity never participate.
func Classify(co2, ammonia, no2, benzene float64) Level {
	switch {
	case co2 > 5000 || ammonia > 10000 || no2 > 1000 || benzene > 1000:
		return LevelHazardous
	case co2 > 3000 || ammonia > 7000 || no2 > 600 || benzene > 800:
		return LevelUnhealthy
	case co2 > 1500 || ammonia > 3000 || no2 > 300 || benzene > 400:
		return LevelModerate
	default:
		return LevelGood
	}
}

// Classify returns the severity level for this reading's pollutant values.
func (r *Reading) Classify() Level {
	return Classify(r.CO2, r.Ammonia, r.NO2, r.Benzene)
}

// LevelInfo carries the display metadata for a severity level.
type LevelInfo struct {
	Level       Level  `json:"level"`
	Accent      string `json:"accent"`
	Description string `json:"description"`
}

// Meta returns the display accent and one-sentence description for a level.
// Unrecognized values fall back to the Unknown entry.
func Meta(level Level) LevelInfo {
	switch level {
	case LevelGood:
		return LevelInfo{
			Level:       LevelGood,
			Accent:      "#4CAF50",
			Description: "Air quality is satisfactory and poses little or no risk.",
		}
	case LevelModerate:
		return LevelInfo{
			Level:       LevelModerate,
			Accent:      "#FFC107",
			Description: "Air quality is acceptable but sensitive people may notice effects.",
		}
	case LevelUnhealthy:
		return LevelInfo{
			Level:       LevelUnhealthy,
			Accent:      "#FF7043",
			Description: "Everyone may begin to experience health effects; limit exposure.",
		}
	case LevelHazardous:
		return LevelInfo{
			Level:       LevelHazardous,
			Accent:      "#D32F2F",
			Description: "Health warning of emergency conditions; ventilate immediately.",
		}
	default:
		return LevelInfo{
			Level:       LevelUnknown,
			Accent:      "#9E9E9E",
			Description: "No recent reading is available to assess air quality.",
		}
	}
}
