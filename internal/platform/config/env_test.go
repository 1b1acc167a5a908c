package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port    int           `env:"TEST_PORT" envDefault:"123"`
	TTL     time.Duration `env:"TEST_TTL" envDefault:"30m"`
	Enabled bool          `env:"TEST_ENABLED"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.TTL != 30*time.Minute {
		t.Fatalf("expected default ttl 30m, got %s", cfg.TTL)
	}
}

func TestParseEnvReadsPrefixedVariables(t *testing.T) {
	t.Setenv("GAMETRADE_TEST_PORT", "9000")
	t.Setenv("TEST_ENABLED", "true")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9000 {
		t.Fatalf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.Enabled {
		t.Fatal("expected unprefixed variable to be ignored")
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("GAMETRADE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
