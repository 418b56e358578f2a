package environment_test

import (
	"testing"
	"time"

	"github.com/jrazmi/shopkeep/sdk/environment"
)

type testConfig struct {
	Host     string        `env:"DB_HOST" default:"localhost"`
	Port     int           `env:"DB_PORT" default:"5432"`
	Timeout  time.Duration `env:"TIMEOUT" default:"30s"`
	Debug    bool          `env:"DEBUG" default:"false"`
	Origins  []string      `env:"ORIGINS" default:"" separator:","`
	Secret   string        `env:"SECRET" required:"true"`
	internal string
}

func TestParseEnvTags_Defaults(t *testing.T) {
	t.Setenv("SECRET", "abc")

	var cfg testConfig
	if err := environment.ParseEnvTags("", &cfg); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if cfg.Host != "localhost" {
		t.Errorf("expected localhost, got %q", cfg.Host)
	}
	if cfg.Port != 5432 {
		t.Errorf("expected 5432, got %d", cfg.Port)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s, got %v", cfg.Timeout)
	}
	if cfg.Debug {
		t.Errorf("expected debug false")
	}
	if cfg.Origins != nil {
		t.Errorf("expected nil origins, got %v", cfg.Origins)
	}
}

func TestParseEnvTags_Overrides(t *testing.T) {
	t.Setenv("APP_DB_HOST", "db.internal")
	t.Setenv("APP_DB_PORT", "6543")
	t.Setenv("APP_TIMEOUT", "250ms")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("APP_ORIGINS", "a.example.com, b.example.com")
	t.Setenv("APP_SECRET", "xyz")

	var cfg testConfig
	if err := environment.ParseEnvTags("APP", &cfg); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if cfg.Host != "db.internal" {
		t.Errorf("expected db.internal, got %q", cfg.Host)
	}
	if cfg.Port != 6543 {
		t.Errorf("expected 6543, got %d", cfg.Port)
	}
	if cfg.Timeout != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", cfg.Timeout)
	}
	if !cfg.Debug {
		t.Errorf("expected debug true")
	}
	if len(cfg.Origins) != 2 || cfg.Origins[1] != "b.example.com" {
		t.Errorf("expected trimmed origins, got %v", cfg.Origins)
	}
}

func TestParseEnvTags_Required(t *testing.T) {
	var cfg testConfig
	err := environment.ParseEnvTags("MISSING", &cfg)
	if err == nil {
		t.Fatalf("expected error for unset required variable")
	}
}

func TestParseEnvTags_NotAPointer(t *testing.T) {
	var cfg testConfig
	if err := environment.ParseEnvTags("", cfg); err == nil {
		t.Fatalf("expected error for non-pointer config")
	}
}

func TestGetEnvKeyPrefix(t *testing.T) {
	if got := environment.GetEnvKeyPrefix("", "DB_HOST"); got != "DB_HOST" {
		t.Errorf("expected DB_HOST, got %q", got)
	}
	if got := environment.GetEnvKeyPrefix("APP", "DB_HOST"); got != "APP_DB_HOST" {
		t.Errorf("expected APP_DB_HOST, got %q", got)
	}
}
