package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server       ServerConfig     `mapstructure:"server"`
	GoogleMaps   GoogleMapsConfig `mapstructure:"google_maps"`
	Summary      SummaryConfig    `mapstructure:"summary"`
	Search       SearchConfig     `mapstructure:"search"`
	Cache        CacheConfig      `mapstructure:"cache"`
	Redis        RedisConfig      `mapstructure:"redis"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
	Security     SecurityConfig   `mapstructure:"security"`
	Logging      LoggingConfig    `mapstructure:"logging"`
	Client       ClientConfig     `mapstructure:"client"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// GoogleMapsConfig contains geocoding and places settings
type GoogleMapsConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	GeocodeBaseURL string        `mapstructure:"geocode_base_url"`
	PlacesBaseURL  string        `mapstructure:"places_base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// SummaryConfig selects and configures the generative provider
type SummaryConfig struct {
	Provider        string        `mapstructure:"provider"`
	GeminiAPIKey    string        `mapstructure:"gemini_api_key"`
	GeminiModel     string        `mapstructure:"gemini_model"`
	AnthropicAPIKey string        `mapstructure:"anthropic_api_key"`
	ClaudeModel     string        `mapstructure:"claude_model"`
	MaxTokens       int           `mapstructure:"max_tokens"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// SearchConfig contains aggregator settings
type SearchConfig struct {
	MaxConcurrency int `mapstructure:"max_concurrency"`
}

// CacheConfig contains search response cache settings
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Backend         string        `mapstructure:"backend"`
	SearchTTL       time.Duration `mapstructure:"search_ttl"`
	MaxEntries      int           `mapstructure:"max_entries"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// RedisConfig contains redis connection settings for the shared cache
type RedisConfig struct {
	Addr       string `mapstructure:"addr"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	KeyPrefix  string `mapstructure:"key_prefix"`
	MaxRetries int    `mapstructure:"max_retries"`
}

// RateLimitConfig contains inbound rate limiting settings
type RateLimitConfig struct {
	Enabled   bool           `mapstructure:"enabled"`
	Endpoints map[string]int `mapstructure:"endpoints"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS      bool     `mapstructure:"enable_cors"`
	CORSOrigins     []string `mapstructure:"cors_origins"`
	CORSMethods     []string `mapstructure:"cors_methods"`
	CORSHeaders     []string `mapstructure:"cors_headers"`
	EnableRequestID bool     `mapstructure:"enable_request_id"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// ClientConfig is the pair handed to the browser client
type ClientConfig struct {
	APIBaseURL     string `mapstructure:"api_base_url"`
	MapsBrowserKey string `mapstructure:"maps_browser_key"`
}
