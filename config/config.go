package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Backend API configuration.
	APIBaseURL        string `mapstructure:"API_BASE_URL"`
	APITimeoutSeconds int    `mapstructure:"API_TIMEOUT_SECONDS"`

	// Booking console configuration.
	TestPageSize     int     `mapstructure:"TEST_PAGE_SIZE"`
	SearchRatePerSec float64 `mapstructure:"SEARCH_RATE_PER_SEC"`
	SessionFile      string  `mapstructure:"SESSION_FILE"`

	// Stub backend configuration (cmd/stubserver only).
	StubPort      string `mapstructure:"STUB_PORT"`
	StubJWTSecret string `mapstructure:"STUB_JWT_SECRET"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("API_BASE_URL", "http://localhost:5000")
	viper.SetDefault("API_TIMEOUT_SECONDS", 15)
	viper.SetDefault("TEST_PAGE_SIZE", 10)
	viper.SetDefault("SEARCH_RATE_PER_SEC", 2)
	viper.SetDefault("SESSION_FILE", "")
	viper.SetDefault("STUB_PORT", "5000")
	viper.SetDefault("STUB_JWT_SECRET", "labdesk-dev-secret")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// APITimeout returns the per-request timeout applied to every backend call.
func APITimeout() time.Duration {
	secs := AppConfig.APITimeoutSeconds
	if secs <= 0 {
		secs = 15
	}
	return time.Duration(secs) * time.Second
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
