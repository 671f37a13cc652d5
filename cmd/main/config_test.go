package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed for a missing file: %v", err)
	}
	if config.Server.ServerAddr != ":8080" {
		t.Errorf("default ServerAddr = %q, want %q", config.Server.ServerAddr, ":8080")
	}
	if config.Server.LogLevel != "info" {
		t.Errorf("default LogLevel = %q, want %q", config.Server.LogLevel, "info")
	}

	// A missing file is replaced with one holding the defaults.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("LoadConfig did not create a default config file: %v", err)
	}
	var written Config
	if err = json.Unmarshal(data, &written); err != nil {
		t.Fatalf("written default config is not valid JSON: %v", err)
	}
	if written.Server.ServerAddr != ":8080" {
		t.Errorf("written default ServerAddr = %q, want %q", written.Server.ServerAddr, ":8080")
	}
}

func TestLoadConfigExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"server_config": {"server_addr": ":9090", "log_level": "debug"}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Server.ServerAddr != ":9090" {
		t.Errorf("ServerAddr = %q, want %q", config.Server.ServerAddr, ":9090")
	}
	if config.Server.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", config.Server.LogLevel, "debug")
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"server_config": {"server_addr": ":7000"}}`), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Server.ServerAddr != ":7000" {
		t.Errorf("ServerAddr = %q, want %q", config.Server.ServerAddr, ":7000")
	}
	// Fields absent from the file keep their defaults.
	if config.Server.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", config.Server.LogLevel, "info")
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for malformed config JSON, got nil")
	}
}
