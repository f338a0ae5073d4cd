package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/mirrorfield/engine"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mirrorfield.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := write(t, `
grid_size = 8
field_count = 3
legacy_roll_order = true
key_file = "/etc/mirrorfield/test.key"

[server]
listen = ":9999"

[debug]
delay_ms = 25
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, engine.Config{GridSize: 8, FieldCount: 3, LegacyRollOrder: true}, c.Engine())
	assert.Equal(t, "/etc/mirrorfield/test.key", c.KeyFile)
	assert.Equal(t, ":9999", c.Server.Listen)
	// untouched keys keep their defaults
	assert.Equal(t, "/metrics", c.Server.Metrics)
	assert.Equal(t, 25*time.Millisecond, c.Delay())
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(write(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, time.Duration(0), c.Delay())
}

func TestLoadRejects(t *testing.T) {
	for _, body := range []string{
		"grid_size = 65",
		"grid_size = 0",
		"field_count = -1",
		"[debug]\ndelay_ms = -5",
		"grid_sise = 4",
		"grid_size = \"big\"",
	} {
		_, err := Load(write(t, body))
		assert.Error(t, err, body)
	}
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
