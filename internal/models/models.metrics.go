// FilePath: internal/models/models.metrics.go
package models

// MetricField identifies one of the six charted measurements of a Reading.
type MetricField string

const (
	FieldCO2         MetricField = "co2"
	FieldAmmonia     MetricField = "ammonia"
	FieldNO2         MetricField = "no2"
	FieldBenzene     MetricField = "benzene"
	FieldTemperature MetricField = "temperature"
	FieldHumidity    MetricField = "humidity"
)

// DefaultField is the field charted when no selection has been made yet.
const DefaultField = FieldCO2

// MetricFields lists the selectable fields in display order.
var MetricFields = []MetricField{
	FieldCO2,
	FieldAmmonia,
	FieldNO2,
	FieldBenzene,
	FieldTemperature,
	FieldHumidity,
}

// Valid reports whether f names a known metric field.
func (f MetricField) Valid() bool {
	switch f {
	case FieldCO2, FieldAmmonia, FieldNO2, FieldBenzene, FieldTemperature, FieldHumidity:
		return true
	}
	return false
}

// Value returns the reading's measurement for the given field. Unknown fields
// yield 0; callers are expected to validate the field first.
func (r *Reading) Value(f MetricField) float64 {
	switch f {
	case FieldCO2:
		return r.CO2
	case FieldAmmonia:
		return r.Ammonia
	case FieldNO2:
		return r.NO2
	case FieldBenzene:
		return r.Benzene
	case FieldTemperature:
		return r.Temperature
	case FieldHumidity:
		return r.Humidity
	}
	return 0
}

// SeriesPoint is one chart point: the reading's position in the history store
// (0-based, chronological) and its value for the selected field.
type SeriesPoint struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}
