package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "SECONDLIFE"

var (
	once    sync.Once
	initErr error
)

// envBindings maps the plain variable names used by existing deployments
// onto config keys. SECONDLIFE_* names work through AutomaticEnv as well.
var envBindings = map[string]string{
	"google_maps.api_key":       "GOOGLE_MAPS_API_KEY",
	"summary.gemini_api_key":    "GEMINI_API_KEY",
	"summary.anthropic_api_key": "ANTHROPIC_API_KEY",
	"server.port":               "PORT",
	"client.api_base_url":       "API_BASE",
	"client.maps_browser_key":   "GOOGLE_MAPS_BROWSER_KEY",
}

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = load()
	})
	return initErr
}

func load() error {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading .env: %w", err)
	}

	setDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for key, env := range envBindings {
		if err := viper.BindEnv(key, envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return fmt.Errorf("error binding %s: %w", env, err)
		}
	}

	configPath := filepath.Clean("./config/settings.yaml")
	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// Warnings lists missing credentials. Keys are checked per request, so
// none of these stop the server from starting.
func Warnings() []string {
	var out []string
	if viper.GetString("google_maps.api_key") == "" {
		out = append(out, "GOOGLE_MAPS_API_KEY is not set; /api/search will return 500")
	}

	switch viper.GetString("summary.provider") {
	case "claude":
		if viper.GetString("summary.anthropic_api_key") == "" {
			out = append(out, "ANTHROPIC_API_KEY is not set; /api/summarize will return 500")
		}
	default:
		if viper.GetString("summary.gemini_api_key") == "" {
			out = append(out, "GEMINI_API_KEY is not set; /api/summarize will return 500")
		}
	}
	return out
}

func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	switch p := viper.GetString("summary.provider"); p {
	case "gemini", "claude":
	default:
		return fmt.Errorf("unsupported summary provider: %q", p)
	}

	switch b := viper.GetString("cache.backend"); b {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported cache backend: %q", b)
	}

	if viper.GetInt("search.max_concurrency") <= 0 {
		viper.Set("search.max_concurrency", 4)
	}
	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Summary.Provider != "" && c.Summary.Provider != "gemini" && c.Summary.Provider != "claude" {
		return fmt.Errorf("unsupported summary provider: %q", c.Summary.Provider)
	}
	if c.Cache.Enabled && c.Cache.Backend == "redis" && c.Redis.Addr == "" {
		return errors.New("redis cache backend requires redis.addr")
	}
	if c.Search.MaxConcurrency <= 0 {
		c.Search.MaxConcurrency = 4
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 4000)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 60*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_body_bytes", 1<<20)

	// Google Maps defaults
	viper.SetDefault("google_maps.api_key", "")
	viper.SetDefault("google_maps.geocode_base_url", "https://maps.googleapis.com/maps/api/geocode/json")
	viper.SetDefault("google_maps.places_base_url", "https://places.googleapis.com/v1")
	viper.SetDefault("google_maps.timeout", 10*time.Second)

	// Summary defaults
	viper.SetDefault("summary.provider", "gemini")
	viper.SetDefault("summary.gemini_api_key", "")
	viper.SetDefault("summary.gemini_model", "gemini-2.0-flash")
	viper.SetDefault("summary.anthropic_api_key", "")
	viper.SetDefault("summary.claude_model", "claude-3-5-haiku-latest")
	viper.SetDefault("summary.max_tokens", 512)
	viper.SetDefault("summary.timeout", 30*time.Second)

	viper.SetDefault("search.max_concurrency", 4)

	// Cache defaults
	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.search_ttl", 10*time.Minute)
	viper.SetDefault("cache.max_entries", 1000)
	viper.SetDefault("cache.cleanup_interval", 5*time.Minute)

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.key_prefix", "secondlife")
	viper.SetDefault("redis.max_retries", 3)

	// Rate limiting defaults, requests per minute per client
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.endpoints", map[string]int{
		"search":    60,
		"summarize": 20,
		"default":   120,
	})

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.cors_methods", []string{"GET", "POST", "OPTIONS"})
	viper.SetDefault("security.cors_headers", []string{"Content-Type", "Authorization", "X-Request-ID"})
	viper.SetDefault("security.enable_request_id", true)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.json", false)

	viper.SetDefault("client.api_base_url", "")
	viper.SetDefault("client.maps_browser_key", "")
}
