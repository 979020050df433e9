package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment
// variables. DATABASE_URL is required; without it there is nothing to
// serve, so startup aborts.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	// Unmarshal only sees keys viper already knows about; without this
	// binding an env-only DATABASE_URL would never reach the struct.
	if err := viper.BindEnv("DATABASE_URL"); err != nil {
		log.Fatalf("Unable to bind DATABASE_URL, %v", err)
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	if AppConfig.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set")
	}
}
