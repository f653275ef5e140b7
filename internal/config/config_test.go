package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithDeviceHostFromEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("AIRSENTRY_DEVICE__BASE_URL", "http://192.168.4.1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://192.168.4.1", cfg.Device.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Device.PollInterval)
	assert.Equal(t, 5*time.Second, cfg.Device.Timeout)
	assert.Equal(t, 50, cfg.History.Capacity)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Monitoring.LogLevel)
}

func TestLoadFailsWithoutDeviceHost(t *testing.T) {
	viper.Reset()

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device base URL")
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("AIRSENTRY_DEVICE__BASE_URL", "http://airnode.local")
	t.Setenv("AIRSENTRY_DEVICE__POLL_INTERVAL", "3s")
	t.Setenv("AIRSENTRY_HISTORY__CAPACITY", "20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.Device.PollInterval)
	assert.Equal(t, 20, cfg.History.Capacity)
}
