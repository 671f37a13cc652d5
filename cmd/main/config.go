package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// ServerConfig holds the configuration for the HTTP server.
type ServerConfig struct {
	ServerAddr string `json:"server_addr"`
	LogLevel   string `json:"log_level"`
}

// Config is the top-level configuration struct.
type Config struct {
	Server *ServerConfig `json:"server_config"`
}

// DefaultServerConfig creates a server configuration with default values:
// all interfaces on port 8080, info-level logging.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerAddr: ":8080",
		LogLevel:   "info",
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := &Config{
		Server: DefaultServerConfig(),
	}

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Warn instead of failing, as the server can still run with defaults.
				fmt.Printf("warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		// For other errors (e.g., permission denied), return the error.
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Fields present in the file override the defaults; absent fields keep them.
	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
