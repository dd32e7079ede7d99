// Package config resolves runtime configuration from ATELIER_* environment
// variables and an optional YAML settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/atelier/internal/swot"
	"gopkg.in/yaml.v3"
)

// Settings is the content of the YAML settings file.
type Settings struct {
	// DefaultPlan is the short id used when a command gets no --plan flag.
	DefaultPlan string      `yaml:"default_plan"`
	Swot        swot.Config `yaml:"swot"`
}

// Config holds everything the binary needs at startup.
type Config struct {
	DBPath       string
	SettingsPath string
	LogUseCases  bool
	Settings     Settings
}

// DefaultConfig returns the configuration used when nothing is set. Files
// live under ~/.atelier, or the working directory when no home is known.
func DefaultConfig() Config {
	dir := ".atelier"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".atelier")
	}
	return Config{
		DBPath:       filepath.Join(dir, "atelier.db"),
		SettingsPath: filepath.Join(dir, "settings.yaml"),
		Settings: Settings{
			Swot: swot.DefaultConfig(),
		},
	}
}

// LoadConfig applies environment overrides to DefaultConfig and then reads
// the settings file. A missing settings file is not an error.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("ATELIER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ATELIER_SETTINGS"); v != "" {
		cfg.SettingsPath = v
	}
	if v := os.Getenv("ATELIER_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	s, err := LoadSettings(cfg.SettingsPath)
	if err != nil {
		return cfg, err
	}
	if s != nil {
		if err := s.Swot.Validate(); err != nil {
			return cfg, fmt.Errorf("settings %s: %w", cfg.SettingsPath, err)
		}
		cfg.Settings = *s
	}
	cfg.Settings.Swot = cfg.Settings.Swot.WithDefaults()

	if v := os.Getenv("ATELIER_PLAN"); v != "" {
		cfg.Settings.DefaultPlan = v
	}
	cfg.Settings.DefaultPlan = strings.ToUpper(strings.TrimSpace(cfg.Settings.DefaultPlan))
	return cfg, nil
}

// LoadSettings reads the YAML file at path. Returns nil (not an error) if
// the file does not exist.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return &s, nil
}
