// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port          string `mapstructure:"PORT"`
	DataPath      string `mapstructure:"DATA_PATH"`
	RedisURL      string `mapstructure:"REDIS_URL"`
	BaseURL       string `mapstructure:"BASE_URL"`
	Env           string `mapstructure:"APP_ENV"`
	MaxUploadSize int64  `mapstructure:"MAX_UPLOAD_SIZE"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; defaults and environment cover everything.
	_ = viper.ReadInConfig()

	env := viper.GetString("APP_ENV")
	if env != "" && env != "development" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		} else {
			log.Printf("Loaded profile-specific configuration: config.%s.yml", env)
		}
	}

	// Set default values for development
	viper.SetDefault("PORT", "8374")
	viper.SetDefault("DATA_PATH", "skillconnect.db")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("BASE_URL", "http://localhost:8374")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("MAX_UPLOAD_SIZE", int64(10*1024*1024))

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.New("unable to decode config into struct: " + err.Error())
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate ensures that required configuration values are present.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.DataPath == "" {
		return errors.New("DATA_PATH is required")
	}
	if c.BaseURL == "" {
		return errors.New("BASE_URL is required")
	}
	if c.MaxUploadSize <= 0 {
		return errors.New("MAX_UPLOAD_SIZE must be positive")
	}
	return nil
}
