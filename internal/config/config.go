// Package config assembles runtime settings from defaults, an optional YAML
// file, a .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/aretw0/sortium/pkg/adapters/openai"
	"github.com/aretw0/sortium/pkg/domain"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Defaults for file locations, relative to the working directory.
const (
	DefaultGraphPath    = "dialog.yaml"
	DefaultTemplatePath = "prompt_decision_template.yaml"
	DefaultDotEnv       = ".env"
)

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config is the complete runtime configuration.
type Config struct {
	Agent        string           `mapstructure:"agent"`
	GraphPath    string           `mapstructure:"graph"`
	TemplatePath string           `mapstructure:"template"`
	LogLevel     string           `mapstructure:"log_level"`
	LogJSON      bool             `mapstructure:"log_json"`
	MetricsAddr  string           `mapstructure:"metrics_addr"`
	Classifier   ClassifierConfig `mapstructure:"classifier"`
	Cache        CacheConfig      `mapstructure:"cache"`
}

// ClassifierConfig configures the completion-backed classifier.
type ClassifierConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Params  openai.Params `mapstructure:"params"`
}

// CacheConfig configures the optional classification cache.
type CacheConfig struct {
	Backend  string        `mapstructure:"backend"`
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// envBindings maps environment variables to dotted config keys.
var envBindings = map[string]string{
	"SORTIUM_AGENT":              "agent",
	"SORTIUM_GRAPH":              "graph",
	"SORTIUM_TEMPLATE":           "template",
	"SORTIUM_LOG_LEVEL":          "log_level",
	"SORTIUM_LOG_JSON":           "log_json",
	"SORTIUM_METRICS_ADDR":       "metrics_addr",
	"SORTIUM_MODEL":              "classifier.params.model",
	"SORTIUM_CLASSIFIER_TIMEOUT": "classifier.timeout",
	"SORTIUM_CACHE":              "cache.backend",
	"SORTIUM_REDIS_URL":          "cache.redis_url",
	"SORTIUM_CACHE_TTL":          "cache.ttl",
	openai.EnvAPIKey:             "classifier.api_key",
	openai.EnvBaseURL:            "classifier.base_url",
}

func defaults() map[string]any {
	p := openai.DefaultParams()
	return map[string]any{
		"agent":     domain.DefaultAgentName,
		"graph":     DefaultGraphPath,
		"template":  DefaultTemplatePath,
		"log_level": "warn",
		"classifier": map[string]any{
			"base_url": openai.DefaultBaseURL,
			"timeout":  "60s",
			"params": map[string]any{
				"model":             p.Model,
				"suffix":            p.Suffix,
				"temperature":       p.Temperature,
				"max_tokens":        p.MaxTokens,
				"top_p":             p.TopP,
				"frequency_penalty": p.FrequencyPenalty,
				"presence_penalty":  p.PresencePenalty,
			},
		},
		"cache": map[string]any{
			"backend": CacheNone,
		},
	}
}

// Load builds a Config. path is an optional YAML config file; dotenv is an
// optional .env file whose variables never override the real environment.
// Missing optional files are ignored.
func Load(path, dotenv string) (*Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", dotenv, err)
		}
	}

	raw := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		var file map[string]any
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		merge(raw, file)
	}

	for env, key := range envBindings {
		if val, ok := os.LookupEnv(env); ok && val != "" {
			set(raw, key, val)
		}
	}

	cfg := &Config{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case "", CacheNone, CacheMemory:
	case CacheRedis:
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("cache backend %q requires cache.redis_url", CacheRedis)
		}
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	if c.Classifier.Timeout < 0 {
		return fmt.Errorf("classifier.timeout must not be negative")
	}
	return nil
}

// merge copies src into dst, descending into nested maps.
func merge(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				merge(existing, sub)
				continue
			}
		}
		dst[k] = v
	}
}

// set assigns val at a dotted key, creating intermediate maps.
func set(m map[string]any, key string, val any) {
	parts := strings.Split(key, ".")
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[p] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = val
}
