package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
	LLM     LLMConfig     `yaml:"llm"`
	Weather WeatherConfig `yaml:"weather"`
	Places  PlacesConfig  `yaml:"places"`
	Server  ServerConfig  `yaml:"server"`
}

// CatalogConfig holds trail catalog settings.
type CatalogConfig struct {
	Format string `yaml:"format"` // "csv" or "sqlite"
	Path   string `yaml:"path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Server LogSettings `yaml:"server"`
}

// LogSettings holds settings for a specific logger.
type LogSettings struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// LLMConfig holds settings for the Large Language Model provider.
type LLMConfig struct {
	Provider string            `yaml:"provider"` // "gemini", "none"
	Model    string            `yaml:"model"`
	Key      string            `yaml:"key"`
	Timeout  Duration          `yaml:"timeout"`
	LogPath  string            `yaml:"log_path"`
	Profiles map[string]string `yaml:"profiles"` // intent -> model
}

// WeatherConfig holds settings for the Open-Meteo lookup.
type WeatherConfig struct {
	Endpoint string   `yaml:"endpoint"`
	Timeout  Duration `yaml:"timeout"`
}

// PlacesConfig holds settings for the Overpass amenity lookup.
type PlacesConfig struct {
	Endpoint string   `yaml:"endpoint"`
	RadiusM  int      `yaml:"radius_m"`
	Timeout  Duration `yaml:"timeout"`
}

// ServerConfig holds HTTP server settings for --serve mode.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Format: "csv",
			Path:   "data/trails.csv",
		},
		Log: LogConfig{
			Server: LogSettings{
				Path:  "./logs/trailbuddy.log",
				Level: "INFO",
			},
		},
		LLM: LLMConfig{
			Provider: "gemini",
			Model:    "gemini-2.5-flash-lite",
			Key:      "",
			Timeout:  Duration(60 * time.Second),
			LogPath:  "./logs/gemini.log",
			Profiles: map[string]string{
				"selection": "gemini-2.5-flash-lite",
				"narration": "gemini-2.5-flash-lite",
			},
		},
		Weather: WeatherConfig{
			Endpoint: "https://api.open-meteo.com/v1/forecast",
			Timeout:  Duration(5 * time.Second),
		},
		Places: PlacesConfig{
			Endpoint: "https://overpass-api.de/api/interpreter",
			RadiusM:  20000,
			Timeout:  Duration(30 * time.Second),
		},
		Server: ServerConfig{
			Address: "localhost:1930",
		},
	}
}

// Load loads the configuration from the given path. If the file does not
// exist, it is created with default values. Existing files are merged over
// the defaults but never written back, preserving user formatting.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else {
		if err := GenerateDefault(path); err != nil {
			return nil, err
		}
	}

	// Env fallback for the API key; never saved back to disk.
	if cfg.LLM.Key == "" {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			cfg.LLM.Key = key
		}
	}

	return cfg, nil
}

// GenerateDefault writes the default configuration to the given path.
func GenerateDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
