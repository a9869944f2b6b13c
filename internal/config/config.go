// Package config loads service settings from an optional YAML file with
// environment-variable overrides on top.
package config

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "SEOANALYZER_CONFIG"
	portEnv        = "PORT"
	dbPathEnv      = "DB_PATH"
	geminiKeyEnv   = "GEMINI_API_KEY"
	geminiModelEnv = "GEMINI_MODEL"
	ollamaURLEnv   = "OLLAMA_URL"
	ollamaModelEnv = "OLLAMA_MODEL"
	useOllamaEnv   = "USE_OLLAMA"
)

// Config holds high-level settings required across the application.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Ollama   OllamaConfig   `yaml:"ollama"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// DatabaseConfig selects the store. An empty path or "memory" keeps
// analyses in process memory; any other value is a SQLite file path.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// GeminiConfig defines how to contact the Gemini API. An empty APIKey
// leaves the provider unconfigured.
type GeminiConfig struct {
	APIKey  string `yaml:"apiKey"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"baseUrl"`
}

// OllamaConfig wires the local Ollama fallback provider.
type OllamaConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Model   string `yaml:"model"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			slog.Warn("cannot read config file, falling back to defaults", "path", path, "error", err)
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			slog.Warn("cannot parse config file, falling back to defaults", "path", path, "error", err)
			cfg = defaultConfig()
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(portEnv); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv(dbPathEnv); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(geminiKeyEnv); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv(geminiModelEnv); v != "" {
		c.Gemini.Model = v
	}
	if v := os.Getenv(ollamaURLEnv); v != "" {
		c.Ollama.URL = v
	}
	if v := os.Getenv(ollamaModelEnv); v != "" {
		c.Ollama.Model = v
	}
	if v := os.Getenv(useOllamaEnv); v == "true" || v == "1" {
		c.Ollama.Enabled = true
	}
}

func defaultConfig() Config {
	return Config{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{Path: "memory"},
		Gemini:   GeminiConfig{},
		Ollama:   OllamaConfig{URL: "http://localhost:11434"},
	}
}
