// ABOUTME: Unit tests for layered configuration loading and validation
// ABOUTME: Defaults, YAML file overrides, TRAVEL_* environment overrides
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate clears the ambient environment and working directory so a test
// sees only what it sets itself.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv(ConfigPathEnvVar, "")
	for _, entry := range os.Environ() {
		if key, _, ok := strings.Cut(entry, "="); ok && strings.HasPrefix(key, envPrefix) {
			t.Setenv(key, "") // registers restore on cleanup
			os.Unsetenv(key)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Recommendation.BudgetWeight != 0.3 ||
		cfg.Recommendation.InterestWeight != 0.6 ||
		cfg.Recommendation.PopularityWeight != 0.1 {
		t.Errorf("Unexpected default weights: %+v", cfg.Recommendation)
	}
	if cfg.Recommendation.MinScore != 0.4 {
		t.Errorf("Expected min score 0.4, got %v", cfg.Recommendation.MinScore)
	}
	if cfg.Recommendation.MaxRecommendations != 5 {
		t.Errorf("Expected max recommendations 5, got %d", cfg.Recommendation.MaxRecommendations)
	}
	if cfg.Similarity.MaxResults != 5 {
		t.Errorf("Expected similarity max results 5, got %d", cfg.Similarity.MaxResults)
	}
	if cfg.Server.Port != 8084 {
		t.Errorf("Expected default port 8084, got %d", cfg.Server.Port)
	}
	if cfg.OpenAI.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("Unexpected embedding model: %s", cfg.OpenAI.EmbeddingModel)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TRAVEL_SERVER_PORT", "9090")
	t.Setenv("TRAVEL_LOGGING_LEVEL", "debug")
	t.Setenv("TRAVEL_OPENAI_API_KEY", "sk-test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090 from environment, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected debug level from environment, got %s", cfg.Logging.Level)
	}
	if cfg.OpenAI.APIKey != "sk-test-key" {
		t.Errorf("Expected API key from environment, got %q", cfg.OpenAI.APIKey)
	}
}

func TestLoad_ConfigFileViaEnvPath(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `recommendation:
  min_score: 0.25
server:
  port: 7000
logging:
  level: warn
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Recommendation.MinScore != 0.25 {
		t.Errorf("Expected min score 0.25 from file, got %v", cfg.Recommendation.MinScore)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Expected port 7000 from file, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected warn level from file, got %s", cfg.Logging.Level)
	}
	// Untouched sections keep their defaults.
	if cfg.Recommendation.BudgetWeight != 0.3 {
		t.Errorf("File override clobbered defaults: %+v", cfg.Recommendation)
	}
}

func TestLoad_EnvironmentBeatsFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7000\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("TRAVEL_SERVER_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Environment should override the file, got port %d", cfg.Server.Port)
	}
}

func TestLoad_OpenAIKeyConventionFallback(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-ambient")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OpenAI.APIKey != "sk-ambient" {
		t.Errorf("Expected OPENAI_API_KEY fallback, got %q", cfg.OpenAI.APIKey)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "TRAVEL_LOGGING_LEVEL", "verbose"},
		{"bad log format", "TRAVEL_LOGGING_FORMAT", "xml"},
		{"port out of range", "TRAVEL_SERVER_PORT", "70000"},
		{"min score above one", "TRAVEL_RECOMMENDATION_MIN_SCORE", "1.5"},
		{"zero max recommendations", "TRAVEL_RECOMMENDATION_MAX_RECOMMENDATIONS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Expected validation error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestValidate_RejectsAllZeroWeights(t *testing.T) {
	cfg := Default()
	cfg.Recommendation.BudgetWeight = 0
	cfg.Recommendation.InterestWeight = 0
	cfg.Recommendation.PopularityWeight = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error when all weights are zero")
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default configuration must validate: %v", err)
	}
}
