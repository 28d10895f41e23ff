package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Model artifact sources.
const (
	ModelSourceFile = "file"
	ModelSourceS3   = "s3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Model      ModelConfig      `yaml:"model"`
	Prediction PredictionConfig `yaml:"prediction"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// ModelConfig locates the trained classifier artifact.
type ModelConfig struct {
	Source string        `yaml:"source"`
	Path   string        `yaml:"path"`
	S3     S3ModelConfig `yaml:"s3"`
}

// S3ModelConfig points at an artifact stored in an S3-compatible bucket.
type S3ModelConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	Key       string `yaml:"key"`
}

// PredictionConfig tunes the assessment flow.
type PredictionConfig struct {
	// Delay is an artificial pause before inference so the form shows its spinner.
	Delay time.Duration `yaml:"delay"`
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
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("MODEL_SOURCE"); v != "" {
		cfg.Model.Source = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("MODEL_PATH"); v != "" {
		cfg.Model.Path = v
	}
	if v := os.Getenv("MODEL_S3_ENDPOINT"); v != "" {
		cfg.Model.S3.Endpoint = v
	}
	if v := os.Getenv("MODEL_S3_ACCESS_KEY"); v != "" {
		cfg.Model.S3.AccessKey = v
	}
	if v := os.Getenv("MODEL_S3_SECRET_KEY"); v != "" {
		cfg.Model.S3.SecretKey = v
	}
	if v := os.Getenv("MODEL_S3_REGION"); v != "" {
		cfg.Model.S3.Region = v
	}
	if v := os.Getenv("MODEL_S3_BUCKET"); v != "" {
		cfg.Model.S3.Bucket = v
	}
	if v := os.Getenv("MODEL_S3_KEY"); v != "" {
		cfg.Model.S3.Key = v
	}
	if v := os.Getenv("PREDICTION_DELAY"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Prediction.Delay = parsed
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Model: ModelConfig{
			Source: ModelSourceFile,
			Path:   "tuned_random_forest_model.json",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	switch c.Model.Source {
	case ModelSourceFile:
		if strings.TrimSpace(c.Model.Path) == "" {
			return errors.New("model.path cannot be empty")
		}
	case ModelSourceS3:
		if strings.TrimSpace(c.Model.S3.Endpoint) == "" {
			return errors.New("model.s3.endpoint cannot be empty when model.source is s3")
		}
		if strings.TrimSpace(c.Model.S3.Bucket) == "" {
			return errors.New("model.s3.bucket cannot be empty when model.source is s3")
		}
		if strings.TrimSpace(c.Model.S3.Key) == "" {
			return errors.New("model.s3.key cannot be empty when model.source is s3")
		}
	default:
		return fmt.Errorf("model.source must be %q or %q", ModelSourceFile, ModelSourceS3)
	}
	if c.Prediction.Delay < 0 {
		return errors.New("prediction.delay cannot be negative")
	}
	return nil
}

// ArtifactLocation describes where the model is read from, for operator messages.
func (c ModelConfig) ArtifactLocation() string {
	if c.Source == ModelSourceS3 {
		return fmt.Sprintf("s3://%s/%s", c.S3.Bucket, strings.TrimLeft(c.S3.Key, "/"))
	}
	return c.Path
}
