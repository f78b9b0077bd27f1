// Package config loads server and CLI settings from YAML and environment
// variables.
package config

import (
	"fmt"
	"time"
)

// Config is the root server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	Export   ExportConfig   `yaml:"export"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	CORSOrigin      string        `yaml:"cors_origin"      env:"SERVER_CORS_ORIGIN"      env-default:"*"`
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects the SQL backend. DSN is a file path for sqlite and
// a connection string for postgres.
type DatabaseConfig struct {
	Driver string `yaml:"driver" env:"DATABASE_DRIVER" env-default:"sqlite"`
	DSN    string `yaml:"dsn"    env:"DATABASE_DSN"    env-default:"./data/flightlog.db"`
}

// AuthConfig holds token settings.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"flightlog"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"24h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// ExportConfig enables archiving exported workbooks to S3 when Bucket is set.
type ExportConfig struct {
	Bucket       string        `yaml:"bucket"         env:"EXPORT_S3_BUCKET"`
	Region       string        `yaml:"region"         env:"EXPORT_S3_REGION"         env-default:"us-east-1"`
	Endpoint     string        `yaml:"endpoint"       env:"EXPORT_S3_ENDPOINT"`
	AccessKey    string        `yaml:"access_key"     env:"EXPORT_S3_ACCESS_KEY"`
	SecretKey    string        `yaml:"secret_key"     env:"EXPORT_S3_SECRET_KEY"`
	Prefix       string        `yaml:"prefix"         env:"EXPORT_S3_PREFIX"         env-default:"exports"`
	UsePathStyle bool          `yaml:"use_path_style" env:"EXPORT_S3_USE_PATH_STYLE" env-default:"false"`
	PresignTTL   time.Duration `yaml:"presign_ttl"    env:"EXPORT_S3_PRESIGN_TTL"    env-default:"15m"`
}

// Enabled reports whether exports are archived.
func (e ExportConfig) Enabled() bool {
	return e.Bucket != ""
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// ClientConfig is the CLI configuration.
type ClientConfig struct {
	ServerURL string        `yaml:"server_url" env:"FLIGHTLOG_SERVER_URL" env-default:"http://localhost:8080"`
	Timeout   time.Duration `yaml:"timeout"    env:"FLIGHTLOG_TIMEOUT"    env-default:"15s"`
	TokenFile string        `yaml:"token_file" env:"FLIGHTLOG_TOKEN_FILE"`
	CacheSize int           `yaml:"cache_size" env:"FLIGHTLOG_CACHE_SIZE" env-default:"256"`
	CacheTTL  time.Duration `yaml:"cache_ttl"  env:"FLIGHTLOG_CACHE_TTL"  env-default:"5m"`
	Log       LogConfig     `yaml:"log"`
}
