// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds pydep configuration
type Config struct {
	// PythonVersion selects the major-version-suffixed binaries to
	// target (e.g. "3"). Empty defers to the environment selector.
	PythonVersion string `yaml:"python_version"`

	// AsRoot elevates install commands with the sudo command
	AsRoot bool `yaml:"as_root"`

	// Quiet passes -q to every install command
	Quiet bool `yaml:"quiet"`

	// RulesPath is the directory of dependency-key rule files
	RulesPath string `yaml:"rules_path"`

	// Debug enables debug logging
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		PythonVersion: "",
		AsRoot:        true,
		Quiet:         false,
		RulesPath:     getDefaultRulesPath(),
		Debug:         false,
	}
}

// LoadConfig loads configuration from file. A missing file yields the
// defaults; absent keys keep their default values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "pydep", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "pydep", "config.yaml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func getDefaultRulesPath() string {
	if path := os.Getenv("PYDEP_RULES_PATH"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "/etc/pydep/rules"
	}

	return filepath.Join(home, ".config", "pydep", "rules")
}
