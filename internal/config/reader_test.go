package config

import (
	"testing"
	"time"
)

func TestEnvReader_Defaults(t *testing.T) {
	t.Setenv("ENV", EnvLocal)

	cfg, err := NewEnvReader().Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if cfg.Env != EnvLocal {
		t.Errorf("env: got %q", cfg.Env)
	}
	if cfg.HTTP.Host != "localhost" || cfg.HTTP.Port != "8080" {
		t.Errorf("http defaults: got %s:%s", cfg.HTTP.Host, cfg.HTTP.Port)
	}
	if cfg.HTTP.ShutdownTimeout != 5*time.Second {
		t.Errorf("shutdown timeout default: got %v", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.SQLite.Path != "tasks.db" {
		t.Errorf("sqlite path default: got %q", cfg.SQLite.Path)
	}
	if cfg.SQLite.BusyTimeout != 5*time.Second {
		t.Errorf("sqlite busy timeout default: got %v", cfg.SQLite.BusyTimeout)
	}
}

func TestEnvReader_Overrides(t *testing.T) {
	t.Setenv("ENV", EnvProd)
	t.Setenv("HTTP_HOST", "0.0.0.0")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("SQLITE_PATH", "/var/lib/taskboard/tasks.db")

	cfg, err := NewEnvReader().Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if cfg.Env != EnvProd {
		t.Errorf("env: got %q", cfg.Env)
	}
	if cfg.HTTP.Host != "0.0.0.0" || cfg.HTTP.Port != "9090" {
		t.Errorf("http: got %s:%s", cfg.HTTP.Host, cfg.HTTP.Port)
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout: got %v", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.SQLite.Path != "/var/lib/taskboard/tasks.db" {
		t.Errorf("sqlite path: got %q", cfg.SQLite.Path)
	}
}
