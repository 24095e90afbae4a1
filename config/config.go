package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppName    string `envconfig:"APP_NAME" default:"weather-chat"`
	AppVersion string `envconfig:"APP_VERSION" default:"1.0.0"`
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	Port       string `envconfig:"PORT" default:"8080"`

	Weather WeatherConfig `yaml:"weather"`
	Geocode GeocodeConfig `yaml:"geocode"`
	LLM     LLMConfig     `yaml:"llm"`
	Sentry  SentryConfig  `yaml:"sentry"`
}

// WeatherConfig configures the NWS client.
type WeatherConfig struct {
	BaseURL   string  `yaml:"base_url" envconfig:"NWS_BASE_URL"`
	UserAgent string  `yaml:"user_agent" envconfig:"NWS_USER_AGENT"`
	Timeout   int     `yaml:"timeout" envconfig:"NWS_TIMEOUT"`
	RPS       float64 `yaml:"rps" envconfig:"NWS_RPS"`
	Burst     int     `yaml:"burst" envconfig:"NWS_BURST"`
}

// GeocodeConfig configures the Nominatim client.
type GeocodeConfig struct {
	BaseURL   string  `yaml:"base_url" envconfig:"GEOCODE_BASE_URL"`
	UserAgent string  `yaml:"user_agent" envconfig:"GEOCODE_USER_AGENT"`
	Timeout   int     `yaml:"timeout" envconfig:"GEOCODE_TIMEOUT"`
	RPS       float64 `yaml:"rps" envconfig:"GEOCODE_RPS"`
}

// LLMConfig configures the language-model strategy. With Enabled false (or
// a model that fails to initialize) the service answers with rules only.
type LLMConfig struct {
	Enabled bool   `yaml:"enabled" envconfig:"USE_AI_MODEL"`
	BaseURL string `yaml:"base_url" envconfig:"LLM_BASE_URL"`
	APIKey  string `yaml:"api_key" envconfig:"LLM_API_KEY"`
	Model   string `yaml:"model" envconfig:"LLM_MODEL"`
}

type SentryConfig struct {
	DSN string `yaml:"dsn" envconfig:"SENTRY_DSN"`
}

func NewConfig() *Config {
	return newConfigFromFile("config/config.yaml")
}

func newConfigFromFile(path string) *Config {
	var cnf Config

	// Read from YAML file first
	if yamlData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			panic(fmt.Sprintf("failed to parse YAML config: %v", err))
		}
	}

	// Override with environment variables
	if err := envconfig.Process("", &cnf); err != nil {
		panic(fmt.Errorf("error environment variable parsing: %w", err))
	}

	cnf.applyDefaults()

	return &cnf
}

func (c *Config) applyDefaults() {
	if c.Weather.UserAgent == "" {
		c.Weather.UserAgent = "weather-chat/1.0"
	}
	if c.Weather.Timeout == 0 {
		c.Weather.Timeout = 10
	}
	if c.Weather.RPS == 0 {
		c.Weather.RPS = 4
	}
	if c.Weather.Burst == 0 {
		c.Weather.Burst = 4
	}
	if c.Geocode.UserAgent == "" {
		c.Geocode.UserAgent = "weather-chat/1.0"
	}
	if c.Geocode.Timeout == 0 {
		c.Geocode.Timeout = 10
	}
	if c.Geocode.RPS == 0 {
		c.Geocode.RPS = 1
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
}
