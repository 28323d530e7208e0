package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the bootstrap configuration read from .env and the environment.
type Config struct {
	Port          string        `mapstructure:"PORT"`
	ConfigSource  string        `mapstructure:"CONFIG_SOURCE"`
	ConfigFile    string        `mapstructure:"CONFIG_FILE"`
	ConfigDir     string        `mapstructure:"CONFIG_DIR"`
	ConfigGitURI  string        `mapstructure:"CONFIG_GIT_URI"`
	ConfigTimeout time.Duration `mapstructure:"CONFIG_TIMEOUT"`
}

// Source describes where the application settings are loaded from.
func (c *Config) Source() Source {
	return Source{
		Kind:    c.ConfigSource,
		File:    c.ConfigFile,
		Dir:     c.ConfigDir,
		GitURI:  c.ConfigGitURI,
		Timeout: c.ConfigTimeout,
	}
}

var AppConfig *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("CONFIG_SOURCE", SourceYAMLFile)
	v.SetDefault("CONFIG_FILE", "config.yml")
	v.SetDefault("CONFIG_DIR", "./config")
	v.SetDefault("CONFIG_GIT_URI", "")
	v.SetDefault("CONFIG_TIMEOUT", 10*time.Second)
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")
	setDefaults(v)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := v.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
