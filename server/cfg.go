package server

import (
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mirrorfield/config"
	"github.com/zucenko/mirrorfield/keyfile"
)

// Load builds a cipher server from the key file named in cfg.
func Load(cfg *config.Config) (*CipherServer, error) {
	key, err := keyfile.ReadFile(cfg.KeyFile, cfg.Engine())
	if err != nil {
		return nil, err
	}
	s, err := NewCipherServer(cfg.Engine(), key)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"key":    cfg.KeyFile,
		"grid":   cfg.GridSize,
		"fields": cfg.FieldCount,
		"legacy": cfg.LegacyRollOrder,
	}).Info("cipher server loaded")
	return s, nil
}
