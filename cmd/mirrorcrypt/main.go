package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/zucenko/mirrorfield/config"
)

var configFlag = &cli.StringFlag{
	Name:    "config",
	Usage:   "TOML configuration file",
	EnvVars: []string{"MIRRORFIELD_CONFIG"},
}

var verboseFlag = &cli.BoolFlag{
	Name:  "verbose",
	Usage: "log at debug level",
}

var keyFlag = &cli.StringFlag{
	Name:  "key",
	Usage: "key file, defaults to key_file from the configuration",
}

var gridFlag = &cli.IntFlag{
	Name:  "grid",
	Usage: "grid size of every field",
}

var fieldsFlag = &cli.IntFlag{
	Name:  "fields",
	Usage: "number of fields",
}

var legacyFlag = &cli.BoolFlag{
	Name:  "legacy",
	Usage: "order the roll window by raw perimeter codes",
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "mirrorcrypt",
		Usage: "mirror field stream cipher",
		Flags: []cli.Flag{configFlag, verboseFlag},
		Before: func(c *cli.Context) error {
			if c.Bool(verboseFlag.Name) {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "keygen",
				Usage:  "write a random key",
				Flags:  []cli.Flag{outFlag("key file to write"), gridFlag, fieldsFlag, legacyFlag},
				Action: keygen,
			},
			{
				Name:   "check",
				Usage:  "load and validate a key",
				Flags:  []cli.Flag{keyFlag, gridFlag, fieldsFlag, legacyFlag},
				Action: check,
			},
			{
				Name:  "crypt",
				Usage: "encrypt or decrypt; the same key reverses its own output",
				Flags: []cli.Flag{
					keyFlag, gridFlag, fieldsFlag, legacyFlag,
					&cli.StringFlag{Name: "in", Usage: "input file, - for stdin", Value: "-"},
					outFlag("output file, - for stdout"),
					&cli.IntFlag{Name: "debug", Usage: "show every traversal step for this many milliseconds"},
				},
				Action: crypt,
			},
		},
	}
}

func outFlag(usage string) cli.Flag {
	return &cli.StringFlag{Name: "out", Usage: usage}
}

// settings reads the configuration file, if any, and applies the flags
// set on the command line over it.
func settings(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String(configFlag.Name); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if c.IsSet(gridFlag.Name) {
		cfg.GridSize = c.Int(gridFlag.Name)
	}
	if c.IsSet(fieldsFlag.Name) {
		cfg.FieldCount = c.Int(fieldsFlag.Name)
	}
	if c.IsSet(legacyFlag.Name) {
		cfg.LegacyRollOrder = c.Bool(legacyFlag.Name)
	}
	if c.IsSet(keyFlag.Name) {
		cfg.KeyFile = c.String(keyFlag.Name)
	}
	if c.IsSet("debug") {
		cfg.Debug.DelayMs = c.Int("debug")
	}
	return cfg, cfg.Validate()
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
