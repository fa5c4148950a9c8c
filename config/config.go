package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pevans/nova"
)

// Built-in defaults, used when neither the config file, the environment nor
// a flag sets a value.
const (
	DefaultTimezone = "Canada/Atlantic"
	DefaultURL      = nova.DefaultURL
	DefaultTimeout  = 10 * time.Second
)

// Environment variables read by ApplyEnv.
const (
	EnvTimezone = "NOVA_TIMEZONE"
	EnvOffset   = "NOVA_OFFSET"
	EnvURL      = "NOVA_URL"
	EnvTimeout  = "NOVA_TIMEOUT"
)

// Settings is the resolved configuration of the nova command. Timezone is
// still a name at this point; it is validated by the caller.
type Settings struct {
	Timezone  string
	Offset    int
	URL       string
	UserAgent string
	Timeout   time.Duration
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Timezone: DefaultTimezone,
		URL:      DefaultURL,
		Timeout:  DefaultTimeout,
	}
}

// Merge overlays the values present in a config file. A nil file leaves the
// settings unchanged.
func (s Settings) Merge(file *FileConfig) (Settings, error) {
	if file == nil {
		return s, nil
	}

	if file.Timezone != nil {
		s.Timezone = *file.Timezone
	}
	if file.Offset != nil {
		s.Offset = *file.Offset
	}
	if file.URL != nil {
		s.URL = *file.URL
	}
	if file.UserAgent != nil {
		s.UserAgent = *file.UserAgent
	}
	if file.Timeout != nil {
		d, err := time.ParseDuration(*file.Timeout)
		if err != nil {
			return s, fmt.Errorf("invalid timeout in config file: %w", err)
		}
		s.Timeout = d
	}

	return s, nil
}

// ApplyEnv overlays the values set in the environment, read through getenv
// (os.Getenv in production).
func (s Settings) ApplyEnv(getenv func(string) string) (Settings, error) {
	if value := getenv(EnvTimezone); value != "" {
		s.Timezone = value
	}
	if value := getenv(EnvURL); value != "" {
		s.URL = value
	}
	if value := getenv(EnvOffset); value != "" {
		offset, err := strconv.Atoi(value)
		if err != nil {
			return s, fmt.Errorf("invalid %s: %w", EnvOffset, err)
		}
		s.Offset = offset
	}
	if value := getenv(EnvTimeout); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			return s, fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		s.Timeout = d
	}

	return s, nil
}

// Load resolves settings from the defaults, the config file at path and the
// environment, in that order of increasing precedence.
func Load(path string, getenv func(string) string) (Settings, error) {
	file, err := LoadConfigFileFrom(path)
	if err != nil {
		return Settings{}, err
	}

	s, err := Defaults().Merge(file)
	if err != nil {
		return Settings{}, err
	}

	return s.ApplyEnv(getenv)
}
