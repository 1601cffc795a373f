package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"PORT"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	DBPoolSize    int    `mapstructure:"DB_POOL_SIZE"`
	DBMaxOverflow int    `mapstructure:"DB_MAX_OVERFLOW"`
	EnableCORS    bool   `mapstructure:"ENABLE_CORS"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_POOL_SIZE", 5)
	viper.SetDefault("DB_MAX_OVERFLOW", 10)

	viper.BindEnv("PORT")
	viper.BindEnv("DATABASE_URL")
	viper.BindEnv("DB_POOL_SIZE")
	viper.BindEnv("DB_MAX_OVERFLOW")
	viper.BindEnv("ENABLE_CORS")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	// The connection string has no sane default; refuse to start without it.
	if config.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	return &config
}
