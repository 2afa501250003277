package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string    `yaml:"log-format" env:"LOG_FORMAT" env-default:"text"`
	HTTP      HTTP      `yaml:"http"`
	AI        AI        `yaml:"ai"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type HTTP struct {
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"3001"`
	AllowedOrigins  []string      `yaml:"allowed-origins" env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:5173"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env-default:"5s"`
}

type AI struct {
	Mode string `yaml:"mode" env:"AI_MODE" env-default:"equal_competition"`
	Seed uint64 `yaml:"seed" env:"AI_SEED" env-default:"0"`
}

type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env:"OTEL_ENABLED" env-default:"false"`
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"otel-collector:4317"`
	ServiceName string `yaml:"service-name" env-default:"tictactoe-engine"`
}

// Load reads path and applies environment overrides. An empty path or a
// missing file leaves only the environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return config, nil
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Load("")
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Addr returns the listen address for the HTTP server.
func (that *HTTP) Addr() string {
	return ":" + that.Port
}
