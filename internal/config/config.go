package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/labstack/gommon/log"
)

// Config stores configuration for the Arena CLI.
type Config struct {
	// Endpoint contains base URL of the Arena API.
	Endpoint string `json:""`
	// Timeout contains request timeout in seconds.
	Timeout int `json:""`
	// SessionFile contains path to the saved session.
	SessionFile string `json:""`
	// LogLevel contains logger level.
	LogLevel log.Lvl `json:""`
}

const (
	// EndpointEnv overrides Endpoint when set.
	EndpointEnv = "ARENA_ENDPOINT"
	// ConfigEnv contains path to config file.
	ConfigEnv = "ARENA_CONFIG"
)

var defaultConfig = Config{
	Endpoint: "http://localhost:8080/api",
	Timeout:  10,
	LogLevel: log.INFO,
}

// RequestTimeout returns timeout as duration.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// LoadFromFile loads configuration from json file.
//
// Fields that are not present in the file keep their defaults.
func LoadFromFile(file string) (Config, error) {
	cfg := defaultConfig
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, err
	}
	if err := json.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// Default returns configuration built only from defaults and
// environment variables. Used when no config file exists.
func Default() Config {
	cfg := defaultConfig
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if endpoint, ok := os.LookupEnv(EndpointEnv); ok {
		c.Endpoint = endpoint
	}
}
