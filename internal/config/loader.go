package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Load reads the trainer configuration.
// Search order: customPath -> ~/.division/config.yaml -> ./configs/division.yaml -> embedded default.
// Files are layered over the built-in defaults, so a file may set only the
// keys it cares about. The result is validated.
func Load(customPath string) (DivisionConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DivisionConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		return parse(customPath, data)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return parse(userCfgPath, data)
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "division.yaml")); err == nil {
		return parse("configs/division.yaml", data)
	}

	// Use embedded default YAML
	cfg, err := parse("embedded defaults", defaultDivisionYAML)
	if err != nil {
		return DefaultDivisionConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML layered over the defaults and validates the result.
func Parse(data []byte) (DivisionConfig, error) {
	return parse("input", data)
}

func parse(source string, data []byte) (DivisionConfig, error) {
	cfg := DefaultDivisionConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DivisionConfig{}, fmt.Errorf("config: cannot parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return DivisionConfig{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".division", filename)
}

// Env holds runtime settings that may come from the environment.
// Zero values mean "not set".
type Env struct {
	ConfigPath string `env:"DIVISION_CONFIG"`
	Locale     string `env:"DIVISION_LOCALE"`
	Seed       int64  `env:"DIVISION_SEED"`
	TickRate   int    `env:"DIVISION_TICK_RATE"`
	LogLevel   string `env:"DIVISION_LOG_LEVEL"`
	LogFile    string `env:"DIVISION_LOG_FILE"`
}

// ParseEnv loads runtime settings from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}

// Apply layers the environment settings that map onto the file config.
func (e Env) Apply(cfg *DivisionConfig) {
	if e.Locale != "" {
		cfg.Display.Locale = e.Locale
	}
}
