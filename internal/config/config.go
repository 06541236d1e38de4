// ABOUTME: Centralized configuration for the travel planner
// ABOUTME: Layered loading: struct defaults, optional YAML file, environment
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/travel-planner/config.yaml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "TRAVEL_CONFIG_PATH"

// envPrefix namespaces the environment variables read by Load.
const envPrefix = "TRAVEL_"

// Config holds all configuration for the travel planner.
type Config struct {
	OpenAI         OpenAIConfig         `koanf:"openai"`
	Recommendation RecommendationConfig `koanf:"recommendation"`
	Similarity     SimilarityConfig     `koanf:"similarity"`
	Catalog        CatalogConfig        `koanf:"catalog"`
	Server         ServerConfig         `koanf:"server"`
	Logging        LoggingConfig        `koanf:"logging"`
}

// OpenAIConfig configures the embedding producer. An empty APIKey means
// no producer is available and similarity falls back to category overlap.
type OpenAIConfig struct {
	APIKey         string        `koanf:"api_key"`
	EmbeddingModel string        `koanf:"embedding_model"`
	Timeout        time.Duration `koanf:"timeout"`
	MaxRetries     int           `koanf:"max_retries" validate:"gte=0,lte=10"`
	RetryDelay     time.Duration `koanf:"retry_delay"`
}

// RecommendationConfig holds the scoring weights and ranking limits.
type RecommendationConfig struct {
	BudgetWeight       float64 `koanf:"budget_weight" validate:"gte=0"`
	InterestWeight     float64 `koanf:"interest_weight" validate:"gte=0"`
	PopularityWeight   float64 `koanf:"popularity_weight" validate:"gte=0"`
	MinScore           float64 `koanf:"min_score" validate:"gte=0,lte=1"`
	MaxRecommendations int     `koanf:"max_recommendations" validate:"gte=1"`
}

// SimilarityConfig holds similarity ranking limits.
type SimilarityConfig struct {
	MaxResults int `koanf:"max_results" validate:"gte=1"`
}

// CatalogConfig points at an optional YAML catalog file. An empty Path
// selects the built-in seed catalog.
type CatalogConfig struct {
	Path string `koanf:"path"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port" validate:"gte=1,lte=65535"`
	Timeout time.Duration `koanf:"timeout"`
}

// LoggingConfig configures the zerolog global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// Default returns a Config with all default values. Defaults are applied
// first, then overridden by the config file and environment.
func Default() *Config {
	return &Config{
		OpenAI: OpenAIConfig{
			APIKey:         "",
			EmbeddingModel: "text-embedding-3-small",
			Timeout:        30 * time.Second,
			MaxRetries:     3,
			RetryDelay:     2 * time.Second,
		},
		Recommendation: RecommendationConfig{
			BudgetWeight:       0.3,
			InterestWeight:     0.6,
			PopularityWeight:   0.1,
			MinScore:           0.4,
			MaxRecommendations: 5,
		},
		Similarity: SimilarityConfig{
			MaxResults: 5,
		},
		Catalog: CatalogConfig{
			Path: "",
		},
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8084,
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

var validate = validator.New()

// Load builds the configuration from defaults, an optional YAML file and
// TRAVEL_* environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// TRAVEL_OPENAI_API_KEY -> openai.api_key, TRAVEL_SERVER_PORT -> server.port
	envProvider := env.Provider(envPrefix, ".", envTransform)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling configuration: %w", err)
	}

	// Convention fallback used across the repo and by the CLI .env files.
	if cfg.OpenAI.APIKey == "" {
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	total := c.Recommendation.BudgetWeight + c.Recommendation.InterestWeight + c.Recommendation.PopularityWeight
	if total <= 0 {
		return fmt.Errorf("recommendation weights must not all be zero")
	}
	return nil
}

// envTransform maps TRAVEL_SECTION_KEY_NAME to section.key_name. The first
// underscore separates the section; the rest stays underscored.
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(s, "_", ".", 1)
}

// findConfigFile returns the first config file that exists, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
