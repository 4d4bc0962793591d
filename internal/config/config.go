package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the process-wide settings read from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	RabbitMQURL string // optional; empty disables the event publisher
}

// Load reads configuration from environment variables via Viper.
// JWT_SECRET is required: there is no fallback secret, and startup must
// fail fast when it is absent.
func Load() (*Config, error) {
	viper.SetDefault("PORT", "4000")
	viper.AutomaticEnv()

	cfg := &Config{
		Port:        viper.GetString("PORT"),
		DatabaseURL: viper.GetString("DATABASE_URL"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
