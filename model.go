package main

import (
	"github.com/zucenko/mirrorfield/engine"
	"github.com/zucenko/mirrorfield/visual"
)

type Model struct {
	Config engine.Config
	Traces []visual.Trace
}
