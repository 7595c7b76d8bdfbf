package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultBaseURL = "http://localhost:3000"
	DefaultPort    = "5000"
	DefaultTimeout = 5 * time.Second
)

type Config struct {
	Server   *serverConfig   `mapstructure:"server"`
	CoreAuth *coreAuthConfig `mapstructure:"core-auth"`
	Log      *logConfig      `mapstructure:"log"`
}

type serverConfig struct {
	Port      string `mapstructure:"port"`
	PublicURL string `mapstructure:"public-url"`
}

type coreAuthConfig struct {
	BaseURL     string        `mapstructure:"base-url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	SampleToken string        `mapstructure:"sample-token"`
}

type logConfig struct {
	Level string `mapstructure:"level"`
}

// Addr is the listen address handed to the HTTP server.
func (s *serverConfig) Addr() string {
	return ":" + s.Port
}

var configuration *Config

// env bindings; the variable names are shared with the other CORE_AUTH samples.
var envKeys = map[string]string{
	"core-auth.base-url":     "CORE_AUTH_BASE_URL",
	"core-auth.timeout":      "CORE_AUTH_TIMEOUT",
	"core-auth.sample-token": "CORE_AUTH_SAMPLE_TOKEN",
	"server.port":            "PORT",
	"server.public-url":      "PUBLIC_URL",
	"log.level":              "LOG_LEVEL",
}

// LoadConfig reads config.yaml from the working directory or ./config when
// present and overlays the environment on top of it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("core-auth.base-url", DefaultBaseURL)
	v.SetDefault("core-auth.timeout", DefaultTimeout)
	v.SetDefault("core-auth.sample-token", "")
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.public-url", "")
	v.SetDefault("log.level", "info")

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.CoreAuth.BaseURL == "" {
		return nil, errors.New("core-auth.base-url must not be empty")
	}
	if cfg.CoreAuth.Timeout <= 0 {
		return nil, fmt.Errorf("core-auth.timeout must be positive, got %s", cfg.CoreAuth.Timeout)
	}
	if cfg.Server.PublicURL == "" {
		cfg.Server.PublicURL = "http://localhost:" + cfg.Server.Port
	}

	configuration = cfg
	return cfg, nil
}

func GetServer() *serverConfig {
	return configuration.Server
}

func GetCoreAuth() *coreAuthConfig {
	return configuration.CoreAuth
}

func GetLog() *logConfig {
	return configuration.Log
}
