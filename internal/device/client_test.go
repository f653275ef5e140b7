package device

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airsentry/hub/internal/config"
	"github.com/airsentry/hub/internal/errors"
)

const sensorPayload = `{
	"CO2": 612, "Ammonia": 4, "NO2": 11, "Benzene": 0.4,
	"Temperature": 22.5, "Humidity": 48,
	"AirQuality": "Good", "Fan": "OFF", "FanMode": "AUTO",
	"Buzzer": "OFF", "BuzzerMode": "MANUAL",
	"Thresholds": {"co2": 1500}
}`

func newClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(config.DeviceConfig{
		BaseURL: ts.URL,
		Timeout: 2 * time.Second,
	}), ts
}

func TestFetchReading(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sensor", r.URL.Path)
		w.Write([]byte(sensorPayload))
	}))

	reading, err := c.FetchReading(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 612.0, reading.CO2)
	assert.Equal(t, 48.0, reading.Humidity)
	assert.Equal(t, map[string]float64{"co2": 1500}, reading.Thresholds)
}

func TestFetchReadingNon200IsHTTPStatusFailure(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.FetchReading(context.Background())
	require.Error(t, err)
	assert.Equal(t, string(errors.ErrorTypeHTTPStatus), errors.FailureKind(err))
}

func TestFetchReadingMissingThresholdsIsParseFailure(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"CO2": 400}`))
	}))

	_, err := c.FetchReading(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsParse(err))
}

func TestFetchReadingConnectionErrorIsNetworkFailure(t *testing.T) {
	c, ts := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	_, err := c.FetchReading(context.Background())
	require.Error(t, err)
	assert.Equal(t, string(errors.ErrorTypeNetwork), errors.FailureKind(err))
}

func TestCommandSuccess(t *testing.T) {
	var gotPath string
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status": "success", "extra": "ignored"}`))
	}))

	require.NoError(t, c.SetFan(context.Background(), ActionOn))
	assert.Equal(t, "/fan/on", gotPath)

	require.NoError(t, c.SetBuzzer(context.Background(), ActionAuto))
	assert.Equal(t, "/buzzer/auto", gotPath)
}

func TestCommandRejectedOn200WithFailedStatus(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "failed"}`))
	}))

	err := c.SetFan(context.Background(), ActionOff)
	require.Error(t, err)
	assert.True(t, errors.IsCommandRejected(err))
}

func TestCommandNon200IsHTTPStatusFailure(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	err := c.SetBuzzer(context.Background(), ActionOn)
	require.Error(t, err)
	assert.Equal(t, string(errors.ErrorTypeHTTPStatus), errors.FailureKind(err))
}

func TestCommandMalformedBodyIsParseFailure(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))

	err := c.SetFan(context.Background(), ActionOn)
	require.Error(t, err)
	assert.True(t, errors.IsParse(err))
}

func TestParseAction(t *testing.T) {
	for _, raw := range []string{"on", "off", "auto"} {
		action, err := ParseAction(raw)
		require.NoError(t, err)
		assert.Equal(t, Action(raw), action)
	}

	_, err := ParseAction("toggle")
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}
