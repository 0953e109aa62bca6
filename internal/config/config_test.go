package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "skinmock.toml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("prep: %v", err)
	}
	return p
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v want defaults", cfg)
	}
	if cfg.Listen != "0.0.0.0:5000" || !cfg.Debug {
		t.Fatalf("defaults: listen=%q debug=%v", cfg.Listen, cfg.Debug)
	}
}

func TestLoad_OverlaysFile(t *testing.T) {
	p := writeConfig(t, `
[server]
listen = "127.0.0.1:9000"
debug = false
shutdown-timeout = "2s"

[log]
file = "/tmp/skinmock.log"
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Listen != "127.0.0.1:9000" || cfg.Debug {
		t.Fatalf("server table not applied: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 2*time.Second {
		t.Fatalf("shutdown timeout: got %s", cfg.ShutdownTimeout)
	}
	if cfg.ReadTimeout != Default().ReadTimeout {
		t.Fatalf("unset key changed: %s", cfg.ReadTimeout)
	}
	if cfg.LogFile != "/tmp/skinmock.log" {
		t.Fatalf("log file: got %q", cfg.LogFile)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	p := writeConfig(t, "[server\nlisten=")
	if _, err := Load(p); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	p := writeConfig(t, "[server]\nidle-timeout = \"soon\"\n")
	_, err := Load(p)
	if err == nil || !strings.Contains(err.Error(), "server.idle-timeout") {
		t.Fatalf("expected idle-timeout error, got %v", err)
	}
}

func TestLoadFile_EmptyPath(t *testing.T) {
	if _, err := LoadFile(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	c := Default()
	c.Listen = ""
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for empty listen")
	}

	c = Default()
	c.WriteTimeout = -time.Second
	if err := c.Validate(); err == nil || !strings.Contains(err.Error(), "write-timeout") {
		t.Fatalf("expected write-timeout error, got %v", err)
	}
}
