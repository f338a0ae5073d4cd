package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func run(t *testing.T, stdin []byte, args ...string) (string, error) {
	app := newApp()
	var stdout, stderr bytes.Buffer
	app.Reader = bytes.NewReader(stdin)
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"mirrorcrypt"}, args...))
	return stdout.String() + stderr.String(), err
}

func TestKeygenCheckCrypt(t *testing.T) {
	dir := t.TempDir()
	key := filepath.Join(dir, "k")
	_, err := run(t, nil, "keygen", "--out", key, "--grid", "4", "--fields", "1")
	require.NoError(t, err)

	k, err := os.ReadFile(key)
	require.NoError(t, err)
	require.Len(t, k, 16+16)

	out, err := run(t, nil, "check", "--key", key, "--grid", "4", "--fields", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "ok, 1 fields of 4x4")

	// encrypt a file, decrypt through stdin and stdout
	plain := bytes.Repeat(k[16:], 3)
	in := filepath.Join(dir, "plain")
	enc := filepath.Join(dir, "enc")
	require.NoError(t, os.WriteFile(in, plain, 0600))
	_, err = run(t, nil, "crypt", "--key", key, "--grid", "4", "--fields", "1", "--in", in, "--out", enc)
	require.NoError(t, err)

	cipher, err := os.ReadFile(enc)
	require.NoError(t, err)
	require.Len(t, cipher, len(plain))

	out, err = run(t, cipher, "crypt", "--key", key, "--grid", "4", "--fields", "1")
	require.NoError(t, err)
	assert.Equal(t, string(plain), out)
}

func TestKeygenSize(t *testing.T) {
	key := filepath.Join(t.TempDir(), "k")
	_, err := run(t, nil, "keygen", "--out", key, "--grid", "4", "--fields", "3")
	require.NoError(t, err)
	info, err := os.Stat(key)
	require.NoError(t, err)
	assert.EqualValues(t, 3*16+3*16, info.Size())
}

func TestKeygenLegacy(t *testing.T) {
	key := filepath.Join(t.TempDir(), "k")
	_, err := run(t, nil, "keygen", "--out", key, "--grid", "2", "--fields", "2", "--legacy")
	require.NoError(t, err)

	out, err := run(t, nil, "check", "--key", key, "--grid", "2", "--fields", "2", "--legacy")
	require.NoError(t, err)
	assert.Contains(t, out, "ok, 2 fields of 2x2")
}

func TestCheckReportsProblems(t *testing.T) {
	dir := t.TempDir()
	key := filepath.Join(dir, "k")
	// GridSize 1: one mirror, four perimeter codes with a duplicate
	require.NoError(t, os.WriteFile(key, []byte("/aabc"), 0600))

	out, err := run(t, nil, "check", "--key", key, "--grid", "1", "--fields", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "problems")
	assert.Contains(t, out, "already at slot 0")
}

func TestCryptLookupError(t *testing.T) {
	dir := t.TempDir()
	key := filepath.Join(dir, "k")
	require.NoError(t, os.WriteFile(key, []byte("/abcd"), 0600))

	out, err := run(t, []byte("ab?"), "crypt", "--key", key, "--grid", "1", "--fields", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 bytes")
	assert.Len(t, out, 2)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	key := filepath.Join(dir, "k")
	cfg := filepath.Join(dir, "mirrorfield.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("grid_size = 1\nfield_count = 1\nkey_file = \""+key+"\"\n"), 0600))
	require.NoError(t, os.WriteFile(key, []byte("\\wxyz"), 0600))

	out, err := run(t, nil, "--config", cfg, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "ok, 1 fields of 1x1")
}
