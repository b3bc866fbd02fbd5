package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Local API server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Task backend
	Backend    BackendConfig
	Credential CredentialConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
	Burst  int
}

// BackendConfig describes the remote task service.
type BackendConfig struct {
	URL        string
	Timeout    time.Duration // client-side bound for every backend request
	ProbeLimit int           // page size of the session verification probe
}

// CredentialConfig describes where the single credential slot is persisted.
type CredentialConfig struct {
	Path string
	Slot string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/tasksync/.
// CONFIG_PATH points at an explicit file instead.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/tasksync/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Backend
	cfg.Backend.URL = strings.TrimRight(viper.GetString("backend.url"), "/")
	if backendURL := viper.GetString("tasksync_backend_url"); backendURL != "" {
		cfg.Backend.URL = strings.TrimRight(backendURL, "/")
	}
	cfg.Backend.Timeout = viper.GetDuration("backend.timeout")
	cfg.Backend.ProbeLimit = viper.GetInt("backend.probe_limit")

	// Credential slot
	credPath, err := homedir.Expand(viper.GetString("credential.path"))
	if err != nil {
		return nil, fmt.Errorf("failed to expand credential path: %w", err)
	}
	cfg.Credential.Path = credPath
	cfg.Credential.Slot = viper.GetString("credential.slot")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 600)
	viper.SetDefault("rate_limit.burst", 60)

	viper.SetDefault("backend.url", "http://localhost:8000")
	viper.SetDefault("backend.timeout", "10s")
	viper.SetDefault("backend.probe_limit", 1)

	viper.SetDefault("credential.path", "~/.tasksync")
	viper.SetDefault("credential.slot", "access_token")
}

func validate(cfg *Config) error {
	if cfg.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}
	if !strings.HasPrefix(cfg.Backend.URL, "http://") && !strings.HasPrefix(cfg.Backend.URL, "https://") {
		return fmt.Errorf("backend.url must be an http(s) URL, got %q", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be positive")
	}
	if cfg.Backend.ProbeLimit <= 0 {
		cfg.Backend.ProbeLimit = 1
	}
	if cfg.Credential.Slot == "" {
		return fmt.Errorf("credential.slot is required")
	}
	if cfg.RateLimit.PerMin <= 0 {
		return fmt.Errorf("rate_limit.per_min must be positive")
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = 1
	}
	return nil
}
