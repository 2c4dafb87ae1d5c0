package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Forecast ForecastConfig `yaml:"forecast"`
	LLM      LLMConfig      `yaml:"llm"`
	Web      WebConfig      `yaml:"web"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string        `yaml:"address"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
}

// ForecastConfig points at the upstream avalanche forecast API.
type ForecastConfig struct {
	APIURL  string        `yaml:"apiUrl"`
	Timeout time.Duration `yaml:"timeout"`
}

// LLMConfig contains Gemini settings.
type LLMConfig struct {
	APIKey  string        `yaml:"apiKey"`
	BaseURL string        `yaml:"baseUrl"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// WebConfig locates the static assets served at the root route.
type WebConfig struct {
	Dir string `yaml:"dir"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		if len(origins) > 0 {
			cfg.HTTP.AllowedOrigins = origins
		}
	}
	if v := os.Getenv("AVALANCHE_API_URL"); v != "" {
		cfg.Forecast.APIURL = v
	}
	if v := os.Getenv("AVALANCHE_API_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Forecast.Timeout = parsed
		}
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("GEMINI_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("GEMINI_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.LLM.Timeout = parsed
		}
	}
	if v := os.Getenv("WEB_DIR"); v != "" {
		cfg.Web.Dir = v
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 90 * time.Second,
			AllowedOrigins: []string{
				"*",
			},
		},
		Forecast: ForecastConfig{
			APIURL:  "https://api.avalanche.ca/forecasts/en/products/point?lat=50.11367&long=-122.95477",
			Timeout: 10 * time.Second,
		},
		LLM: LLMConfig{
			BaseURL: "https://generativelanguage.googleapis.com",
			Model:   "gemini-2.5-flash-preview-09-2025",
			Timeout: 60 * time.Second,
		},
		Web: WebConfig{
			Dir: "web",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.ReadTimeout <= 0 {
		return errors.New("http.readTimeout must be positive")
	}
	if c.HTTP.WriteTimeout <= 0 {
		return errors.New("http.writeTimeout must be positive")
	}
	if len(c.HTTP.AllowedOrigins) == 0 {
		return errors.New("http.allowedOrigins cannot be empty")
	}
	if strings.TrimSpace(c.Forecast.APIURL) == "" {
		return errors.New("forecast.apiUrl cannot be empty")
	}
	if c.Forecast.Timeout <= 0 {
		return errors.New("forecast.timeout must be positive")
	}
	if strings.TrimSpace(c.LLM.BaseURL) == "" {
		return errors.New("llm.baseUrl cannot be empty")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.LLM.Timeout <= 0 {
		return errors.New("llm.timeout must be positive")
	}
	// llm.apiKey may be empty at boot; the briefing flow reports a missing
	// key in its response body instead of failing startup.
	if strings.TrimSpace(c.Web.Dir) == "" {
		return errors.New("web.dir cannot be empty")
	}
	return nil
}
