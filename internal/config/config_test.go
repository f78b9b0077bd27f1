package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testSecret = "this-is-a-very-long-jwt-secret-for-testing-32+"

// isolate points CONFIG_PATH and the user config dir at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("FLIGHTLOG_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func TestLoad_EnvDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("AUTH_JWT_SECRET", testSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Database.DSN != "./data/flightlog.db" {
		t.Errorf("unexpected database defaults: %+v", cfg.Database)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("expected 24h token ttl, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Export.Enabled() {
		t.Error("expected export archive to be disabled by default")
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("unexpected metrics defaults: %+v", cfg.Metrics)
	}
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	dir := isolate(t)
	path := writeYAML(t, dir, `
server:
  port: 9090
database:
  driver: postgres
  dsn: "postgres://u:p@localhost:5432/flightlog"
auth:
  jwt_secret: "`+testSecret+`"
  token_ttl: "1h"
log:
  level: debug
  format: json
export:
  bucket: logs
  endpoint: "http://127.0.0.1:9000"
  use_path_style: true
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("expected env to win, got port %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.Database.Driver)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("expected 1h, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Log.Format != "json" || cfg.Log.Level != "debug" {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
	if !cfg.Export.Enabled() || !cfg.Export.UsePathStyle || cfg.Export.PresignTTL != 15*time.Minute {
		t.Errorf("unexpected export config: %+v", cfg.Export)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("CONFIG_PATH", filepath.Join(dir, "missing.yaml"))
	t.Setenv("AUTH_JWT_SECRET", testSecret)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Driver: "sqlite", DSN: "x.db"},
			Auth:     AuthConfig{JWTSecret: testSecret, TokenTTL: time.Hour},
			Log:      LogConfig{Level: "info", Format: "text"},
			Metrics:  MetricsConfig{Enabled: true, Path: "/metrics"},
		}
	}
	if err := valid().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }, "jwt_secret"},
		{"zero ttl", func(c *Config) { c.Auth.TokenTTL = 0 }, "token_ttl"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "database.driver"},
		{"empty dsn", func(c *Config) { c.Database.DSN = "" }, "database.dsn"},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "format"},
		{"bad metrics path", func(c *Config) { c.Metrics.Path = "metrics" }, "metrics.path"},
		{"half credentials", func(c *Config) { c.Export.AccessKey = "minio" }, "secret_key"},
		{"zero presign ttl", func(c *Config) { c.Export.Bucket = "logs" }, "presign_ttl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadClient(t *testing.T) {
	dir := isolate(t)

	cfg, err := LoadClient("")
	if err != nil {
		t.Fatalf("LoadClient failed: %v", err)
	}
	if cfg.ServerURL != "http://localhost:8080" || cfg.Timeout != 15*time.Second {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !strings.HasSuffix(cfg.TokenFile, filepath.Join("flightlog", "token")) {
		t.Errorf("unexpected token file %s", cfg.TokenFile)
	}

	path := writeYAML(t, dir, "server_url: \"ftp://example.com\"\n")
	if _, err := LoadClient(path); err == nil {
		t.Error("expected invalid server_url to fail")
	}
}
