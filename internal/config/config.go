// Package config loads files-manager settings from defaults, a TOML file and
// environment variables, in that order of precedence.
package config

import (
	"time"

	"github.com/and161185/files-manager/internal/blob"
)

// Config is the full server and worker configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Session  SessionConfig  `toml:"session"`
	Storage  StorageConfig  `toml:"storage"`
	Worker   WorkerConfig   `toml:"worker"`
	Limiter  LimiterConfig  `toml:"limiter"`
	Log      LogConfig      `toml:"log"`
}

type ServerConfig struct {
	Addr    string `toml:"addr"`
	TLSCert string `toml:"tls_cert"` // plaintext when both are empty
	TLSKey  string `toml:"tls_key"`
	Dev     bool   `toml:"dev"` // enables server reflection
}

// DatabaseConfig selects the metadata store. Driver "memory" keeps
// everything in process and skips migrations.
type DatabaseConfig struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

type SessionConfig struct {
	TTL      time.Duration `toml:"ttl"`
	CacheDir string        `toml:"cache_dir"` // empty means in-memory badger
}

type StorageConfig struct {
	Backend string   `toml:"backend"` // fs | s3
	Path    string   `toml:"path"`
	S3      S3Config `toml:"s3"`
}

type S3Config struct {
	Bucket    string `toml:"bucket"`
	Region    string `toml:"region"`
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Prefix    string `toml:"prefix"`
}

// Blob converts the section into the blob package's settings.
func (c S3Config) Blob() blob.S3Config {
	return blob.S3Config{
		Bucket:    c.Bucket,
		Region:    c.Region,
		Endpoint:  c.Endpoint,
		AccessKey: c.AccessKey,
		SecretKey: c.SecretKey,
		Prefix:    c.Prefix,
	}
}

// WorkerConfig tunes the derivative pipeline. Count 0 disables the
// embedded pool in serve.
type WorkerConfig struct {
	Count        int           `toml:"count"`
	PollInterval time.Duration `toml:"poll_interval"`
	MaxAttempts  int           `toml:"max_attempts"`
	Backoff      time.Duration `toml:"backoff"`
	StaleAfter   time.Duration `toml:"stale_after"`
	MaxPixels    int64         `toml:"max_pixels"` // images declaring more are rejected before decoding
}

type LimiterConfig struct {
	Enabled  bool          `toml:"enabled"`
	Window   time.Duration `toml:"window"`
	MaxFails int           `toml:"max_fails"`
	BlockFor time.Duration `toml:"block_for"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	BackendFS = "fs"
	BackendS3 = "s3"
)

// Default returns a configuration usable without any file.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":5000"},
		Database: DatabaseConfig{
			Driver: DriverPostgres,
			DSN:    "postgres://localhost:5432/files_manager?sslmode=disable",
		},
		Session: SessionConfig{TTL: 24 * time.Hour},
		Storage: StorageConfig{Backend: BackendFS, Path: blob.DefaultDir},
		Worker: WorkerConfig{
			Count:        2,
			PollInterval: time.Second,
			MaxAttempts:  5,
			Backoff:      10 * time.Second,
			StaleAfter:   5 * time.Minute,
			MaxPixels:    50_000_000,
		},
		Limiter: LimiterConfig{
			Enabled:  true,
			Window:   15 * time.Minute,
			MaxFails: 5,
			BlockFor: 15 * time.Minute,
		},
		Log: LogConfig{Level: "info"},
	}
}
