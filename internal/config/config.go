package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	ccaterrors "github.com/adversing/ccat/pkg/errors"
)

// DefaultTheme is the theme used when none is requested.
const DefaultTheme = "base16-ocean.dark"

// Config carries the options for one highlighting run. It is created by the
// caller and read-only for the duration of the run.
type Config struct {
	// Theme names the color palette to apply. A missing theme is an error;
	// no substitute is picked.
	Theme string `yaml:"theme" validate:"required"`

	// LineNumbers prepends a right-aligned line number column to every line.
	LineNumbers bool `yaml:"line_numbers"`

	// Syntax forces a specific grammar by display name, bypassing detection
	// entirely. Empty means automatic detection.
	Syntax string `yaml:"syntax"`

	// LogLevel controls CLI diagnostics. Not consumed by the highlighting
	// core itself.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Theme:    DefaultTheme,
		LogLevel: "info",
	}
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a configuration file from disk, validates it, and returns the
// resulting Config merged over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ccaterrors.NewParseError(path, 0, err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, ccaterrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultPath returns the user-level config file location, or an empty string
// when the home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ccat", "config.yaml")
}

// LoadDefault loads the user-level config file if present, falling back to
// the built-in defaults when the file does not exist.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		cfg := Defaults()
		return &cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			cfg := Defaults()
			return &cfg, nil
		}
		return nil, ccaterrors.NewParseError(path, 0, err)
	}

	return Load(path)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
