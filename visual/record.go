package visual

import (
	"bufio"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mirrorfield/engine"
)

// Trace is one character run through the engine with every step the
// light took.
type Trace struct {
	In, Out byte
	Frames  []engine.Snapshot
}

// Record runs every byte of reader through e and keeps what rec saw for
// each one. rec must be the observer e was built with. Bytes outside the
// current field's alphabet are skipped and leave e untouched.
func Record(e *engine.Engine, rec *engine.Recorder, reader io.Reader) ([]Trace, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanBytes)
	var traces []Trace
	for scanner.Scan() {
		ch := scanner.Bytes()[0]
		rec.Snapshots = nil
		out, err := e.CryptChar(ch)
		if err != nil {
			log.Warnf("skipping %q: %v", ch, err)
			continue
		}
		traces = append(traces, Trace{In: ch, Out: out, Frames: rec.Snapshots})
	}
	return traces, scanner.Err()
}
