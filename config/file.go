package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig represents the structure of ~/.nova/config.yaml. Fields left
// out of the file are nil and keep their defaults.
type FileConfig struct {
	Timezone  *string `yaml:"timezone"`
	Offset    *int    `yaml:"offset"`
	URL       *string `yaml:"url"`
	UserAgent *string `yaml:"user_agent"`
	Timeout   *string `yaml:"timeout"` // Go duration, e.g. "10s"
}

// ConfigFilePath returns the location of the config file in the user's home
// directory.
func ConfigFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".nova", "config.yaml"), nil
}

// LoadConfigFile loads configuration from ~/.nova/config.yaml. Returns nil if
// the file doesn't exist (not an error). Returns error if the file exists but
// cannot be parsed.
func LoadConfigFile() (*FileConfig, error) {
	configPath, err := ConfigFilePath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFileFrom(configPath)
}

// LoadConfigFileFrom loads configuration from the given path, with the same
// missing-file behavior as LoadConfigFile.
func LoadConfigFileFrom(configPath string) (*FileConfig, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return nil, nil // File doesn't exist -- not an error
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
