package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func envMap(m map[string]string) LookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad_File(t *testing.T) {
	p := writeConfig(t, `
[server]
addr = ":7000"

[database]
driver = "memory"

[storage]
backend = "s3"
[storage.s3]
bucket = "files"
endpoint = "http://127.0.0.1:9000"

[worker]
count = 4
poll_interval = "250ms"
max_pixels = 1000000

[log]
level = "debug"
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, "files", cfg.Storage.S3.Bucket)
	assert.Equal(t, "files", cfg.Storage.S3.Blob().Bucket)
	assert.Equal(t, 4, cfg.Worker.Count)
	assert.Equal(t, 250*time.Millisecond, cfg.Worker.PollInterval)
	assert.Equal(t, 5, cfg.Worker.MaxAttempts, "untouched keys keep defaults")
	assert.Equal(t, int64(1_000_000), cfg.Worker.MaxPixels)
}

func TestLoad_UnknownKey(t *testing.T) {
	p := writeConfig(t, "[server]\nadress = \":1\"\n")
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.adress")
}

func TestLoad_Invalid(t *testing.T) {
	p := writeConfig(t, "[storage]\nbackend = \"ftp\"\n[log]\nlevel = \"loud\"\n")
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.backend")
	assert.Contains(t, err.Error(), "log.level")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(cfg, envMap(map[string]string{
		EnvFolderPath:  "/srv/files",
		EnvDBHost:      "db",
		EnvSessionTTL:  "1h",
		EnvWorkers:     "0",
		EnvS3AccessKey: "ak",
	}))
	require.NoError(t, err)
	assert.Equal(t, "/srv/files", cfg.Storage.Path)
	assert.Equal(t, "postgres://db:5432/files_manager?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, 0, cfg.Worker.Count)
	assert.Equal(t, "ak", cfg.Storage.S3.AccessKey)
}

func TestApplyEnv_DSNWinsOverLegacy(t *testing.T) {
	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, envMap(map[string]string{
		EnvDBHost: "db",
		EnvDSN:    "postgres://explicit/fm",
	})))
	assert.Equal(t, "postgres://explicit/fm", cfg.Database.DSN)
}

func TestApplyEnv_BadValues(t *testing.T) {
	require.Error(t, ApplyEnv(Default(), envMap(map[string]string{EnvSessionTTL: "forever"})))
	require.Error(t, ApplyEnv(Default(), envMap(map[string]string{EnvWorkers: "many"})))
}

func TestValidate_TLSPair(t *testing.T) {
	cfg := Default()
	cfg.Server.TLSCert = "cert.pem"
	require.Error(t, cfg.Validate())
	cfg.Server.TLSKey = "key.pem"
	require.NoError(t, cfg.Validate())
}

func TestValidate_MaxPixels(t *testing.T) {
	cfg := Default()
	require.Positive(t, cfg.Worker.MaxPixels)
	cfg.Worker.MaxPixels = 0
	require.ErrorContains(t, cfg.Validate(), "worker.max_pixels")
}
