package main

import (
	"testing"

	"github.com/arenacode/arenactl/internal/config"
)

func TestParseID(t *testing.T) {
	if id, err := parseID("42"); err != nil || id != 42 {
		t.Fatalf("Expected 42, got %d (%v)", id, err)
	}
	if _, err := parseID("abc"); err == nil {
		t.Fatal("Expected error for non-numeric id")
	}
}

func TestWithDefaultPaths(t *testing.T) {
	cfg := withDefaultPaths(config.Config{})
	if len(cfg.SessionFile) == 0 {
		t.Fatal("Expected default session file path")
	}
	custom := withDefaultPaths(config.Config{SessionFile: "/tmp/session.json"})
	if custom.SessionFile != "/tmp/session.json" {
		t.Fatalf("Configured path should win, got %q", custom.SessionFile)
	}
}
