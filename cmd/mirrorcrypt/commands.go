package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/zucenko/mirrorfield/engine"
	"github.com/zucenko/mirrorfield/keyfile"
	"github.com/zucenko/mirrorfield/visual"
)

func keygen(c *cli.Context) error {
	cfg, err := settings(c)
	if err != nil {
		return err
	}
	out := c.String("out")
	if out == "" {
		out = cfg.KeyFile
	}
	key, err := keyfile.Generate(nil, cfg.Engine())
	if err != nil {
		return err
	}
	if err := keyfile.WriteFile(out, key); err != nil {
		return err
	}
	log.WithFields(log.Fields{"path": out, "grid": cfg.GridSize, "fields": cfg.FieldCount}).Info("key written")
	return nil
}

func check(c *cli.Context) error {
	cfg, err := settings(c)
	if err != nil {
		return err
	}
	e, err := keyfile.Open(cfg.KeyFile, cfg.Engine())
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			for _, ferr := range verr.Errs.Errors {
				fmt.Fprintln(c.App.ErrWriter, ferr)
			}
			return cli.Exit(fmt.Sprintf("%s: %d problems", cfg.KeyFile, verr.Len()), 1)
		}
		return err
	}
	ec := e.Config()
	fmt.Fprintf(c.App.Writer, "%s: ok, %d fields of %dx%d, alphabet of %d\n",
		cfg.KeyFile, ec.FieldCount, ec.GridSize, ec.GridSize, 4*ec.GridSize)
	return nil
}

func crypt(c *cli.Context) error {
	cfg, err := settings(c)
	if err != nil {
		return err
	}

	var opts []engine.Option
	if delay := cfg.Delay(); delay > 0 {
		term, fini, err := visual.Open(delay)
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		defer fini()
		opts = append(opts, engine.WithObserver(term))
	}
	e, err := keyfile.Open(cfg.KeyFile, cfg.Engine(), opts...)
	if err != nil {
		return err
	}

	in := c.App.Reader
	if name := c.String("in"); name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	out := c.App.Writer
	if name := c.String("out"); name != "" && name != "-" {
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	bw := bufio.NewWriter(out)
	n, err := io.Copy(engine.NewWriter(e, bw), in)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return fmt.Errorf("after %d bytes: %w", n, err)
	}
	log.WithFields(log.Fields{"bytes": n, "field": e.Field()}).Debug("crypt done")
	return nil
}
