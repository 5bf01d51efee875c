package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	App AppConfig
	Log LogConfig
}

type AppConfig struct {
	Environment string
}

type LogConfig struct {
	Level string
}

// LoadConfig loads configuration from environment variables and an optional .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		App: AppConfig{
			Environment: viper.GetString("APP_ENVIRONMENT"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}
	return cfg, nil
}
