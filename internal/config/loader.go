package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when no config file was found.
const SourceEmbedded = "embedded"

// localConfigPath is checked relative to the working directory.
var localConfigPath = filepath.Join("configs", "colors.yaml")

// Result is a loaded configuration and where it came from.
type Result struct {
	Config  Config
	Source  string  // File path, or SourceEmbedded
	Skipped []error // Search path files that exist but could not be used
}

// Load loads the configuration and reports where it came from.
// Search order: customPath -> ~/.namedcolors/config.yaml -> ./configs/colors.yaml -> embedded default
//
// Values missing from a file keep their defaults. Only an explicit
// customPath that cannot be read or parsed is an error; broken files on
// the search path are skipped and listed in Result.Skipped.
func Load(customPath string) (Result, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Result{Config: Default()}, err
		}
		if err := cfg.Validate(); err != nil {
			return Result{Config: Default()}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return Result{Config: cfg, Source: customPath}, nil
	}

	// Try user config directory, then local configs directory
	var skipped []error
	for _, path := range []string{userConfigPath("config.yaml"), localConfigPath} {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err == nil {
			if verr := cfg.Validate(); verr != nil {
				err = fmt.Errorf("config %s: %w", path, verr)
			}
		}
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		return Result{Config: cfg, Source: path, Skipped: skipped}, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		cfg = Default() // Fallback to hardcoded if embed fails
	}
	return Result{Config: cfg, Source: SourceEmbedded, Skipped: skipped}, nil
}

// loadFile reads and parses a config file.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML on top of the defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".namedcolors", filename)
}
