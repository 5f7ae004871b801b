package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// ErrInvalidSettings is wrapped by every validation failure in Load.
var ErrInvalidSettings = errors.New(ErrConfigInvalid)

// Settings are the startup defaults of the application. They can be
// overridden per machine through GOCLOCK_* environment variables; the
// settings window then overrides them per user through Fyne preferences.
type Settings struct {
	TickInterval  time.Duration `koanf:"tick_interval"`
	MinuteStyle   string        `koanf:"minute_style"`
	ShowSeconds   bool          `koanf:"show_seconds"`
	ServerEnabled bool          `koanf:"server_enabled"`
	ServerPort    string        `koanf:"server_port"`
	Language      string        `koanf:"language"`
}

// Defaults returns the compiled default settings.
func Defaults() *Settings {
	return &Settings{
		TickInterval:  DefaultTickInterval,
		MinuteStyle:   MinuteStyleTapered,
		ShowSeconds:   DefaultShowSeconds,
		ServerEnabled: DefaultServerEnabled,
		ServerPort:    DefaultPort,
		Language:      DefaultLanguage,
	}
}

// Load reads the settings with the precedence environment > defaults.
// GOCLOCK_TICK_INTERVAL=50ms maps to TickInterval, and so on.
func Load() (*Settings, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrConfigLoad, err)
	}

	s := Defaults()
	if err := k.Unmarshal("", s); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrConfigLoad, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks ranges that would otherwise surface as runtime errors.
func (s *Settings) Validate() error {
	if s.TickInterval < MinTickMillis*time.Millisecond || s.TickInterval > MaxTickMillis*time.Millisecond {
		return fmt.Errorf("%w: %s (%s)", ErrInvalidSettings, ErrTickRange, s.TickInterval)
	}
	switch s.MinuteStyle {
	case MinuteStyleTapered, MinuteStyleLine:
	default:
		return fmt.Errorf("%w: minute_style %q", ErrInvalidSettings, s.MinuteStyle)
	}
	if err := ValidatePort(s.ServerPort); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// ValidatePort checks that port is a decimal number in [MinPort, MaxPort].
func ValidatePort(port string) error {
	if port == "" {
		return errors.New(ErrPortRequired)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return errors.New(ErrPortNumber)
	}
	if n < MinPort || n > MaxPort {
		return errors.New(ErrPortRange)
	}
	return nil
}
