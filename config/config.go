package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Upstream scheduling API.
	UpstreamBaseURL   string `mapstructure:"UPSTREAM_BASE_URL"`
	UpstreamUser      string `mapstructure:"UPSTREAM_USER"`
	UpstreamPassword  string `mapstructure:"UPSTREAM_PASSWORD"`
	UpstreamAPIKey    string `mapstructure:"UPSTREAM_API_KEY"`
	UpstreamTimeoutMS int    `mapstructure:"UPSTREAM_TIMEOUT_MS"`

	// Engine tuning.
	ClubID            int    `mapstructure:"CLUB_ID"`
	SlotOffsetMinutes int    `mapstructure:"SLOT_OFFSET_MINUTES"`
	VenueConfigPath   string `mapstructure:"VENUE_CONFIG_PATH"`
}

var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults.
func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("UPSTREAM_BASE_URL", "https://api.scheduler.example/v1")
	viper.SetDefault("UPSTREAM_USER", "")
	viper.SetDefault("UPSTREAM_PASSWORD", "")
	viper.SetDefault("UPSTREAM_API_KEY", "")
	viper.SetDefault("UPSTREAM_TIMEOUT_MS", 5000)
	viper.SetDefault("CLUB_ID", 1)
	viper.SetDefault("SLOT_OFFSET_MINUTES", 0)
	viper.SetDefault("VENUE_CONFIG_PATH", "./config/venue.yaml")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
