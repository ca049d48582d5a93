package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/brandaudit/backend/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Audit     AuditConfig     `mapstructure:"audit"`
	Upload    UploadConfig    `mapstructure:"upload"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuditConfig holds the reconciliation defaults. BrandRules may be
// overridden from the config file; an empty list keeps the built-in
// portfolio table.
type AuditConfig struct {
	WindowDays     int                `mapstructure:"window_days"`
	Attribution    string             `mapstructure:"attribution"`
	CurrencyTokens []string           `mapstructure:"currency_tokens"`
	BrandRules     []domain.BrandRule `mapstructure:"brand_rules"`
}

// UploadConfig limits uploaded report sizes
type UploadConfig struct {
	MaxFileMB int64 `mapstructure:"max_file_mb"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP float64 `mapstructure:"per_ip"` // requests per second
	Burst int     `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/brandaudit/")

	// Environment variable settings
	v.SetEnvPrefix("BRANDAUDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Audit defaults
	v.SetDefault("audit.window_days", 30)
	v.SetDefault("audit.attribution", string(domain.AttributionTotal))
	v.SetDefault("audit.currency_tokens", []string{"AED", "$"})

	// Upload defaults
	v.SetDefault("upload.max_file_mb", 50)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 5.0)
	v.SetDefault("ratelimit.burst", 10)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Audit.WindowDays <= 0 {
		return fmt.Errorf("audit window_days must be positive, got: %d", config.Audit.WindowDays)
	}

	if !domain.AttributionPolicy(config.Audit.Attribution).Valid() {
		return fmt.Errorf("audit attribution must be %q or %q, got: %s",
			domain.AttributionTotal, domain.AttributionAdvertisedSKU, config.Audit.Attribution)
	}

	if config.Upload.MaxFileMB <= 0 {
		return fmt.Errorf("upload max_file_mb must be positive, got: %d", config.Upload.MaxFileMB)
	}

	for _, rule := range config.Audit.BrandRules {
		if rule.Name == "" {
			return fmt.Errorf("brand rule with empty name")
		}
		if len(rule.Signals) == 0 {
			return fmt.Errorf("brand rule %q has no signals", rule.Name)
		}
	}

	return nil
}
