package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gradientspace.dev/internal/config"
)

func TestGenerate_WritesEveryTab(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generate(dir, zap.NewNop()))

	for _, name := range []string{"index.html", "home.html", "services.html", "about.html", "contact.html", "static/site.css", "static/site.js"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	about, err := os.ReadFile(filepath.Join(dir, "about.html"))
	require.NoError(t, err)
	assert.Contains(t, string(about), "About Gradient Space")
	assert.NotContains(t, string(about), "Our AI Packages")
	assert.Contains(t, string(about), `class="fade revealed"`)

	contact, err := os.ReadFile(filepath.Join(dir, "contact.html"))
	require.NoError(t, err)
	assert.Contains(t, string(contact), `type="submit" disabled`)
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(config.LogConfig{Level: "warn"}, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = newLogger(config.LogConfig{Level: "warn"}, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = newLogger(config.LogConfig{Level: "loud"}, false)
	assert.Error(t, err)
}
