// FilePath: api/resources/api.resource.readings.go
package resources

import (
	"encoding/json"
	"net/http"

	nuts "github.com/vaudience/go-nuts"

	"github.com/airsentry/hub/internal/errors"
	"github.com/airsentry/hub/internal/hubservice"
	"github.com/airsentry/hub/internal/models"
)

// ReadingHandlers encapsulates the reading- and chart-related HTTP handlers
type ReadingHandlers struct {
	hubservice *hubservice.HubService
}

// ReadingsQuery filters the history snapshot.
type ReadingsQuery struct {
	Limit int `schema:"limit"`
}

// SeriesQuery selects the charted field for one series extraction.
type SeriesQuery struct {
	Field string `schema:"field"`
}

// @Summary List recent readings
// @Description Get the current history snapshot, oldest first
// @Tags readings
// @Produce json
// @Param limit query int false "Maximum number of readings, newest kept"
// @Success 200 {array} models.Reading
// @Router /readings [get]
func (h *ReadingHandlers) ListReadings(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var query ReadingsQuery
	if err := queryDecoder.Decode(&query, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, h.hubservice.Snapshot(query.Limit))
}

// @Summary Get the latest reading
// @Description Get the most recent sensor reading
// @Tags readings
// @Produce json
// @Success 200 {object} models.Reading
// @Failure 404 {object} errors.APIError
// @Router /readings/latest [get]
func (h *ReadingHandlers) GetLatestReading(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	reading, ok := h.hubservice.Latest()
	if !ok {
		respondWithError(w, errors.NewNotFoundError("no reading received yet", nil).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, reading)
}

// @Summary Get current air-quality status
// @Description Classify the latest reading into a severity level with accent and description
// @Tags readings
// @Produce json
// @Success 200 {object} hubservice.AirStatus
// @Router /status [get]
func (h *ReadingHandlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.hubservice.CurrentStatus())
}

// seriesResponse pairs the extracted points with the field they describe.
type seriesResponse struct {
	Field  models.MetricField   `json:"field"`
	Points []models.SeriesPoint `json:"points"`
}

// @Summary Get a chart series
// @Description Extract the chart series for one metric field; defaults to the selected field
// @Tags readings
// @Produce json
// @Param field query string false "Metric field (co2|ammonia|no2|benzene|temperature|humidity)"
// @Success 200 {object} seriesResponse
// @Failure 400 {object} errors.APIError
// @Router /series [get]
func (h *ReadingHandlers) GetSeries(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var query SeriesQuery
	if err := queryDecoder.Decode(&query, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	field := models.MetricField(query.Field)
	points, err := h.hubservice.Series(field)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid series field", err).WithRequestID(requestID))
		return
	}

	if field == "" {
		field = h.hubservice.SelectedField()
	}
	respondWithJSON(w, http.StatusOK, seriesResponse{Field: field, Points: points})
}

type selectFieldRequest struct {
	Field models.MetricField `json:"field"`
}

// @Summary Select the charted field
// @Description Change which metric field the dashboard chart follows
// @Tags readings
// @Accept json
// @Produce json
// @Param selection body selectFieldRequest true "Field selection"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Router /series/field [put]
func (h *ReadingHandlers) SelectField(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req selectFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if err := h.hubservice.SelectField(req.Field); err != nil {
		respondWithError(w, errors.NewValidationError("invalid field selection", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"field": string(req.Field)})
}

// @Summary Trigger a manual refresh
// @Description Run one fetch cycle immediately and wait for it; the periodic timer is unaffected
// @Tags readings
// @Produce json
// @Success 200 {object} poller.Outcome
// @Router /refresh [post]
func (h *ReadingHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	// A failed fetch still answers 200: the caller's spinner awaits the
	// attempt, not a success guarantee.
	respondWithJSON(w, http.StatusOK, h.hubservice.Refresh(r.Context()))
}
