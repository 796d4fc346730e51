package config

import (
	"errors"
	"fmt"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if (c.Server.TLSCert == "") != (c.Server.TLSKey == "") {
		errs = append(errs, errors.New("server.tls_cert and server.tls_key must be set together"))
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			errs = append(errs, errors.New("database.dsn is required for postgres"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("database.driver: unknown %q", c.Database.Driver))
	}

	switch c.Storage.Backend {
	case BackendFS:
		if c.Storage.Path == "" {
			errs = append(errs, errors.New("storage.path is required for fs"))
		}
	case BackendS3:
		if c.Storage.S3.Bucket == "" {
			errs = append(errs, errors.New("storage.s3.bucket is required for s3"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.backend: unknown %q", c.Storage.Backend))
	}

	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("session.ttl must be positive"))
	}
	if c.Worker.Count < 0 {
		errs = append(errs, errors.New("worker.count must not be negative"))
	}
	if c.Worker.MaxAttempts < 1 {
		errs = append(errs, errors.New("worker.max_attempts must be at least 1"))
	}
	if c.Worker.MaxPixels <= 0 {
		errs = append(errs, errors.New("worker.max_pixels must be positive"))
	}
	if c.Worker.PollInterval <= 0 || c.Worker.StaleAfter <= 0 {
		errs = append(errs, errors.New("worker.poll_interval and worker.stale_after must be positive"))
	}
	if c.Limiter.Enabled && (c.Limiter.MaxFails < 1 || c.Limiter.Window <= 0 || c.Limiter.BlockFor <= 0) {
		errs = append(errs, errors.New("limiter: window, max_fails and block_for must be positive"))
	}
	if !logLevels[c.Log.Level] {
		errs = append(errs, fmt.Errorf("log.level: unknown %q", c.Log.Level))
	}
	return errors.Join(errs...)
}
