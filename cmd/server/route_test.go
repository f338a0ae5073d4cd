package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/mirrorfield/config"
	"github.com/zucenko/mirrorfield/keyfile"
	"github.com/zucenko/mirrorfield/server"
)

func testServer(t *testing.T) *Server {
	cfg := config.Default()
	cfg.GridSize = 2
	cfg.FieldCount = 1
	key, err := keyfile.Generate(nil, cfg.Engine())
	require.NoError(t, err)
	cs, err := server.NewCipherServer(cfg.Engine(), key)
	require.NoError(t, err)
	s := &Server{config: cfg, CipherServer: cs}
	s.routes()
	return s
}

func TestRoutesMetrics(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()
	s.handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mirrorfield_chars_total")
}

func TestRoutesUnknown(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()
	s.handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, URI_WS, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	s.handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
