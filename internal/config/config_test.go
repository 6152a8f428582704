package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/gommon/log"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"Endpoint": "https://arena.example.com/api", "Timeout": 3}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal("Error:", err)
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatal("Error:", err)
	}
	if cfg.Endpoint != "https://arena.example.com/api" {
		t.Fatalf("Unexpected endpoint %q", cfg.Endpoint)
	}
	if cfg.RequestTimeout() != 3*time.Second {
		t.Fatalf("Unexpected timeout %v", cfg.RequestTimeout())
	}
	// Missing fields keep defaults.
	if cfg.LogLevel != log.INFO {
		t.Fatalf("Unexpected log level %v", cfg.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestEndpointEnvOverride(t *testing.T) {
	t.Setenv(EndpointEnv, "https://override.example.com/api")
	cfg := Default()
	if cfg.Endpoint != "https://override.example.com/api" {
		t.Fatalf("Unexpected endpoint %q", cfg.Endpoint)
	}
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"Endpoint": "https://file.example.com/api"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal("Error:", err)
	}
	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatal("Error:", err)
	}
	if loaded.Endpoint != "https://override.example.com/api" {
		t.Fatalf("Environment should win over file, got %q", loaded.Endpoint)
	}
}
