package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func key(mirrors, perimeter string) []byte {
	return append([]byte(mirrors), perimeter...)
}

// randomKey builds a valid key. Every field gets a permutation of the same
// alphabet: all 256 bytes when n is 64, codes 0..4n-1 otherwise.
func randomKey(rng *rand.Rand, n, count int) []byte {
	mirrors := []byte{'/', '\\', '-', ' '}
	k := make([]byte, 0, n*n*count+4*n*count)
	for i := 0; i < n*n*count; i++ {
		k = append(k, mirrors[rng.Intn(len(mirrors))])
	}
	for f := 0; f < count; f++ {
		for _, v := range rng.Perm(4 * n) {
			k = append(k, byte(v))
		}
	}
	return k
}

func randomText(rng *rand.Rand, n, size int) []byte {
	out := make([]byte, size)
	for i := range out {
		out[i] = byte(rng.Intn(4 * n))
	}
	return out
}

func loaded(t *testing.T, cfg Config, k []byte, opts ...Option) *Engine {
	t.Helper()
	e := New(cfg, opts...)
	require.NoError(t, e.Load(k))
	return e
}
