package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. AIHEALTH_DATABASE_HOST overrides database.host
	viper.SetEnvPrefix("AIHEALTH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The config file is optional in container environments where everything
	// comes from env vars.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if os.Getenv("AIHEALTH_DATABASE_HOST") == "" {
				return nil, fmt.Errorf("error reading config file: %v", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}
	return config
}
