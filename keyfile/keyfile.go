// Package keyfile reads and generates mirror field keys. A key is the raw
// byte stream the engine loader consumes: mirror characters for every
// field followed by perimeter characters for every field.
package keyfile

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mirrorfield/engine"
)

var mirrorChars = []byte{'/', '\\', '-', ' '}

// Generate builds a random valid key for cfg. Each field gets its own
// random selection of 4*GridSize distinct byte values in random order. In
// legacy roll order the codes must index the perimeter, so every field
// gets a shuffle of 0..4*GridSize-1 instead.
func Generate(r io.Reader, cfg engine.Config) ([]byte, error) {
	n, fields := cfg.GridSize, cfg.FieldCount
	if n < 1 || 4*n > 256 {
		return nil, fmt.Errorf("grid size %d out of range 1..64", n)
	}
	if fields < 1 {
		return nil, fmt.Errorf("field count %d must be positive", fields)
	}
	if r == nil {
		r = rand.Reader
	}

	key := make([]byte, 0, cfg.KeySize())
	for i := 0; i < n*n*fields; i++ {
		j, err := intn(r, len(mirrorChars))
		if err != nil {
			return nil, err
		}
		key = append(key, mirrorChars[j])
	}

	pool := 256
	if cfg.LegacyRollOrder {
		pool = 4 * n
	}
	alphabet := make([]byte, pool)
	for f := 0; f < fields; f++ {
		for i := range alphabet {
			alphabet[i] = byte(i)
		}
		for i := pool - 1; i > 0; i-- {
			j, err := intn(r, i+1)
			if err != nil {
				return nil, err
			}
			alphabet[i], alphabet[j] = alphabet[j], alphabet[i]
		}
		key = append(key, alphabet[:4*n]...)
	}
	return key, nil
}

// ReadFile reads a key from path and checks its length against cfg.
func ReadFile(path string, cfg engine.Config) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(key) != cfg.KeySize() {
		return nil, fmt.Errorf("key file %s has %d bytes, want %d", path, len(key), cfg.KeySize())
	}
	log.WithFields(log.Fields{"path": path, "bytes": len(key)}).Debug("key file read")
	return key, nil
}

func WriteFile(path string, key []byte) error {
	return os.WriteFile(path, key, 0600)
}

// Open reads the key at path and returns a loaded, ready engine.
func Open(path string, cfg engine.Config, opts ...engine.Option) (*engine.Engine, error) {
	key, err := ReadFile(path, cfg)
	if err != nil {
		return nil, err
	}
	e := engine.New(cfg, opts...)
	if err := e.Load(key); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return e, nil
}

func intn(r io.Reader, n int) (int, error) {
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading randomness: %w", err)
	}
	return int(v.Int64()), nil
}
