package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir isolates the default ./gradientspace.yaml lookup
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)
	t.Setenv("GRADIENTSPACE_CONFIG", "")
	t.Setenv("SERVER_ADDR", "")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, 30*time.Minute, c.Session.TTL)
	assert.Equal(t, time.Minute, c.Session.SweepInterval)
	assert.Equal(t, "gradientspace.inquiries", c.Inquiry.Subject)
	assert.Empty(t, c.Inquiry.NATSURL)
	assert.True(t, c.Metrics.Enabled)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoad_File(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
session:
  ttl: 5m
inquiry:
  nats_url: nats://localhost:4222
metrics:
  enabled: false
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.Server.Addr)
	assert.Equal(t, 5*time.Minute, c.Session.TTL)
	assert.Equal(t, "nats://localhost:4222", c.Inquiry.NATSURL)
	assert.False(t, c.Metrics.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t)
	t.Setenv("GRADIENTSPACE_CONFIG", "")
	t.Setenv("GRADIENTSPACE_LOG_LEVEL", "debug")
	t.Setenv("SERVER_ADDR", ":7070")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, ":7070", c.Server.Addr)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := chdir(t)
	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}

func TestLoad_RejectsBadTTL(t *testing.T) {
	chdir(t)
	t.Setenv("GRADIENTSPACE_CONFIG", "")
	t.Setenv("GRADIENTSPACE_SESSION_TTL", "0s")

	_, err := Load("")
	assert.ErrorContains(t, err, "session.ttl")
}
