package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-clock/internal/config"
)

func TestDefaults_Valid(t *testing.T) {
	s := config.Defaults()

	require.NoError(t, s.Validate())
	assert.Equal(t, config.DefaultTickInterval, s.TickInterval)
	assert.Equal(t, config.MinuteStyleTapered, s.MinuteStyle)
	assert.Equal(t, config.DefaultPort, s.ServerPort)
	assert.False(t, s.ServerEnabled)
}

func TestLoad_NoEnvironment(t *testing.T) {
	s, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), s)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("GOCLOCK_TICK_INTERVAL", "50ms")
	t.Setenv("GOCLOCK_MINUTE_STYLE", config.MinuteStyleLine)
	t.Setenv("GOCLOCK_SHOW_SECONDS", "false")
	t.Setenv("GOCLOCK_SERVER_ENABLED", "true")
	t.Setenv("GOCLOCK_SERVER_PORT", "19000")
	t.Setenv("GOCLOCK_LANGUAGE", "fr")

	s, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 50*time.Millisecond, s.TickInterval)
	assert.Equal(t, config.MinuteStyleLine, s.MinuteStyle)
	assert.False(t, s.ShowSeconds)
	assert.True(t, s.ServerEnabled)
	assert.Equal(t, "19000", s.ServerPort)
	assert.Equal(t, "fr", s.Language)
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"TickTooFast", "GOCLOCK_TICK_INTERVAL", "1ms"},
		{"TickTooSlow", "GOCLOCK_TICK_INTERVAL", "5s"},
		{"UnknownStyle", "GOCLOCK_MINUTE_STYLE", "roman"},
		{"PortRange", "GOCLOCK_SERVER_PORT", "70000"},
		{"PortNotNumber", "GOCLOCK_SERVER_PORT", "http"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.ErrorIs(t, err, config.ErrInvalidSettings)
		})
	}
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		port string
		want string
	}{
		{"18081", ""},
		{"1024", ""},
		{"65535", ""},
		{"", config.ErrPortRequired},
		{"abc", config.ErrPortNumber},
		{"0", config.ErrPortRange},
		{"65536", config.ErrPortRange},
	}

	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			err := config.ValidatePort(tt.port)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.want)
		})
	}
}
