package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: variant defaults < file < flags.
// The variant comes from the --variant flag, else the file, else classic.
func Load() (*Config, error) {
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	variant := *flagVariant
	if variant == "" && configPath != "" {
		v, err := fileVariant(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
		variant = v
	}

	cfg, err := ForVariant(variant)
	if err != nil {
		return nil, err
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
		// A file naming one variant never switches the preset applied above.
		if variant != "" {
			cfg.Cube.Variant = variant
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// fileVariant extracts cube.variant without applying the rest of the file.
func fileVariant(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var peek struct {
		Cube struct {
			Variant string `yaml:"variant"`
		} `yaml:"cube"`
	}
	if err := yaml.Unmarshal(data, &peek); err != nil {
		return "", err
	}
	return peek.Cube.Variant, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "CubeTweaks")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "CubeTweaks")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "cube-tweaks")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "cube-tweaks")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
