package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/WaferDice/internal/model"
)

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.waferdice/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".waferdice")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	// Ensure RecentPlans is never nil
	if config.RecentPlans == nil {
		config.RecentPlans = []string{}
	}
	return config, nil
}

// AddRecentPlan prepends a plan path to the recent list, dropping
// duplicates and keeping at most max entries.
func AddRecentPlan(config *model.AppConfig, path string, max int) {
	recent := []string{path}
	for _, p := range config.RecentPlans {
		if p != path {
			recent = append(recent, p)
		}
	}
	if max > 0 && len(recent) > max {
		recent = recent[:max]
	}
	config.RecentPlans = recent
}
