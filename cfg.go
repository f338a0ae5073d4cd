package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mirrorfield/config"
	"github.com/zucenko/mirrorfield/engine"
	"github.com/zucenko/mirrorfield/keyfile"
	"github.com/zucenko/mirrorfield/visual"
	"io"
	"os"
)

// Load runs the text file named on the command line, or data.txt, through
// the engine built from the configured key.
func Load() (m *Model, e error) {
	cfg := config.Default()
	if path := os.Getenv("MIRRORFIELD_CONFIG"); path != "" {
		if cfg, e = config.Load(path); e != nil {
			return
		}
	}
	rec := &engine.Recorder{}
	eng, e := keyfile.Open(cfg.KeyFile, cfg.Engine(), engine.WithObserver(rec))
	if e != nil {
		return
	}

	name := "data.txt"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	file, e := os.Open(name)
	if e != nil {
		log.Printf("failed opening file: %s", e)
		return
	}
	defer file.Close()
	return read(eng, rec, file)
}

func read(eng *engine.Engine, rec *engine.Recorder, reader io.Reader) (*Model, error) {
	traces, err := visual.Record(eng, rec, reader)
	if err != nil {
		return nil, err
	}
	return &Model{Config: eng.Config(), Traces: traces}, nil
}
