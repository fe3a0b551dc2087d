package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// NewViper loads config.json from the working directory with environment
// variable overrides.
func NewViper() *viper.Viper {
	config := viper.New()

	config.SetConfigName("config")
	config.SetConfigType("json")
	config.AddConfigPath("./")
	config.AddConfigPath("./../")
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err != nil {
		fmt.Printf("config file not loaded, relying on defaults and env: %v\n", err)
	}

	return config
}
