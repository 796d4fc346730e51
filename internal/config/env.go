package config

import (
	"fmt"
	"strconv"
	"time"
)

// Environment variable names. FOLDER_PATH and DB_* are accepted for
// compatibility with existing deployments.
const (
	EnvAddr        = "FM_ADDR"
	EnvDBDriver    = "FM_DB_DRIVER"
	EnvDSN         = "FM_DSN"
	EnvStorage     = "FM_STORAGE"
	EnvFolderPath  = "FOLDER_PATH"
	EnvS3Bucket    = "FM_S3_BUCKET"
	EnvS3Endpoint  = "FM_S3_ENDPOINT"
	EnvS3Region    = "FM_S3_REGION"
	EnvS3AccessKey = "FM_S3_ACCESS_KEY"
	EnvS3SecretKey = "FM_S3_SECRET_KEY"
	EnvSessionTTL  = "FM_SESSION_TTL"
	EnvWorkers     = "FM_WORKERS"
	EnvLogLevel    = "FM_LOG_LEVEL"

	EnvDBHost     = "DB_HOST"
	EnvDBPort     = "DB_PORT"
	EnvDBDatabase = "DB_DATABASE"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(string) (string, bool)

// ApplyEnv overrides cfg fields from the environment.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
	str(EnvAddr, &cfg.Server.Addr)
	str(EnvDBDriver, &cfg.Database.Driver)
	str(EnvStorage, &cfg.Storage.Backend)
	str(EnvFolderPath, &cfg.Storage.Path)
	str(EnvS3Bucket, &cfg.Storage.S3.Bucket)
	str(EnvS3Endpoint, &cfg.Storage.S3.Endpoint)
	str(EnvS3Region, &cfg.Storage.S3.Region)
	str(EnvS3AccessKey, &cfg.Storage.S3.AccessKey)
	str(EnvS3SecretKey, &cfg.Storage.S3.SecretKey)
	str(EnvLogLevel, &cfg.Log.Level)

	if dsn := legacyDSN(lookup); dsn != "" {
		cfg.Database.DSN = dsn
	}
	str(EnvDSN, &cfg.Database.DSN)

	if v, ok := lookup(EnvSessionTTL); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSessionTTL, err)
		}
		cfg.Session.TTL = d
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		cfg.Worker.Count = n
	}
	return nil
}

// legacyDSN builds a DSN from DB_HOST/DB_PORT/DB_DATABASE when any is set.
func legacyDSN(lookup LookupFunc) string {
	host, hok := lookup(EnvDBHost)
	port, pok := lookup(EnvDBPort)
	db, dok := lookup(EnvDBDatabase)
	if !hok && !pok && !dok {
		return ""
	}
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "5432"
	}
	if db == "" {
		db = "files_manager"
	}
	return fmt.Sprintf("postgres://%s:%s/%s?sslmode=disable", host, port, db)
}
