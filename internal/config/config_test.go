package config

import (
	"path/filepath"
	"testing"
)

func TestLoadFailureSticks(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-config.yaml")

	cfg, err := Load(missing)
	if err == nil {
		t.Fatalf("expected error for missing config, got %+v", cfg)
	}

	// the first failure must not be latched away on later calls
	cfg, err = Load(missing)
	if err == nil {
		t.Fatal("second call swallowed the load error")
	}
	if cfg != nil {
		t.Fatalf("expected nil config on failure, got %+v", cfg)
	}
}
