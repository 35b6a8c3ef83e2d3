package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const tuningFile = "pet.yaml"

// LoadTuning loads simulation tuning.
// Search order: customPath -> ~/.pocketpet/configs/pet.yaml -> ./configs/pet.yaml -> embedded default
func LoadTuning(customPath string) (Tuning, error) {
	var cfg Tuning

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(tuningFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", tuningFile)); err == nil {
		cfg = Tuning{}
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg = Tuning{}
	if err := yaml.Unmarshal(defaultTuningYAML, &cfg); err != nil {
		return DefaultTuning(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadRuntime reads runtime settings from the environment.
func LoadRuntime() (Runtime, error) {
	var rt Runtime
	if err := env.Parse(&rt); err != nil {
		return rt, fmt.Errorf("parse env: %w", err)
	}
	return rt, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pocketpet", "configs", filename)
}
