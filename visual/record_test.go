package visual

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/mirrorfield/engine"
)

func TestRecord(t *testing.T) {
	rec := &engine.Recorder{}
	e := engine.New(engine.Config{GridSize: 2, FieldCount: 1}, engine.WithObserver(rec))
	require.NoError(t, e.Load([]byte("    ABCDEFGH")))

	traces, err := Record(e, rec, strings.NewReader("A!"))
	require.NoError(t, err)
	require.Len(t, traces, 1)

	tr := traces[0]
	assert.Equal(t, byte('A'), tr.In)
	assert.Equal(t, byte('E'), tr.Out)
	// top slot 0, two cells down the column, done at bottom slot 4
	require.Len(t, tr.Frames, 4)
	assert.Equal(t, 0, tr.Frames[0].Slot())
	assert.Equal(t, []int{0, 2}, []int{tr.Frames[1].Cell, tr.Frames[2].Cell})
	assert.True(t, tr.Frames[3].Done)
	assert.Equal(t, 4, tr.Frames[3].Slot())
}

func TestRecordKeepsFramesApart(t *testing.T) {
	rec := &engine.Recorder{}
	e := engine.New(engine.Config{GridSize: 2, FieldCount: 1}, engine.WithObserver(rec))
	require.NoError(t, e.Load([]byte("    ABCDEFGH")))

	traces, err := Record(e, rec, strings.NewReader("AB"))
	require.NoError(t, err)
	require.Len(t, traces, 2)
	assert.Equal(t, 0, traces[0].Frames[0].Slot())
	assert.NotEqual(t, traces[0].Frames[0].Slot(), traces[1].Frames[0].Slot())
}
