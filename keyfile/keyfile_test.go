package keyfile

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/mirrorfield/engine"
)

func TestGenerateIsValid(t *testing.T) {
	for _, cfg := range []engine.Config{
		{GridSize: 1, FieldCount: 1},
		{GridSize: 5, FieldCount: 3},
		{GridSize: 64, FieldCount: 4},
	} {
		key, err := Generate(nil, cfg)
		require.NoError(t, err)
		require.Len(t, key, cfg.KeySize())
		e := engine.New(cfg)
		require.NoError(t, e.Load(key))
		assert.True(t, e.Ready())
	}
}

func TestGenerateLegacy(t *testing.T) {
	cfg := engine.Config{GridSize: 4, FieldCount: 2, LegacyRollOrder: true}
	for i := 0; i < 20; i++ {
		key, err := Generate(nil, cfg)
		require.NoError(t, err)
		e := engine.New(cfg)
		require.NoError(t, e.Load(key))

		perimeters := key[cfg.GridSize*cfg.GridSize*cfg.FieldCount:]
		for _, c := range perimeters {
			assert.Less(t, int(c), 4*cfg.GridSize)
		}
	}
}

func TestGenerateDeterministicSource(t *testing.T) {
	a, err := Generate(rand.New(rand.NewSource(1)), engine.Config{GridSize: 8, FieldCount: 2})
	require.NoError(t, err)
	b, err := Generate(rand.New(rand.NewSource(1)), engine.Config{GridSize: 8, FieldCount: 2})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateRejects(t *testing.T) {
	_, err := Generate(nil, engine.Config{GridSize: 0, FieldCount: 1})
	assert.Error(t, err)
	_, err = Generate(nil, engine.Config{GridSize: 65, FieldCount: 1})
	assert.Error(t, err)
	_, err = Generate(nil, engine.Config{GridSize: 4, FieldCount: 0})
	assert.Error(t, err)
	_, err = Generate(bytes.NewReader([]byte{1, 2}), engine.Config{GridSize: 4, FieldCount: 1})
	assert.Error(t, err)
}

func TestReadWriteOpen(t *testing.T) {
	cfg := engine.Config{GridSize: 4, FieldCount: 2}
	key, err := Generate(nil, cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "test.key")
	require.NoError(t, WriteFile(path, key))

	got, err := ReadFile(path, cfg)
	require.NoError(t, err)
	assert.Equal(t, key, got)

	e, err := Open(path, cfg)
	require.NoError(t, err)
	assert.True(t, e.Ready())

	_, err = ReadFile(path, engine.Config{GridSize: 5, FieldCount: 2})
	assert.Error(t, err)
	_, err = ReadFile(filepath.Join(t.TempDir(), "missing"), cfg)
	assert.Error(t, err)
}
