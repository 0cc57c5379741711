package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
}

// UpstreamConfig points at the commerce API the dashboard administers.
// Token is the bearer credential issued by the session service; it is
// attached to every request and never inspected.
type UpstreamConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("UPSTREAM_BASE_URL", "http://localhost:4000")
	viper.SetDefault("UPSTREAM_TOKEN", "")
	viper.SetDefault("UPSTREAM_TIMEOUT", "10s")
	viper.SetDefault("LOG_LEVEL", "info")

	timeout, err := time.ParseDuration(viper.GetString("UPSTREAM_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Upstream: UpstreamConfig{
			BaseURL: viper.GetString("UPSTREAM_BASE_URL"),
			Token:   viper.GetString("UPSTREAM_TOKEN"),
			Timeout: timeout,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
