package visual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/mirrorfield/engine"
)

func frames(n int) []engine.Snapshot {
	out := make([]engine.Snapshot, n)
	for i := range out {
		out[i] = snapshot()
		out[i].Cell = i
	}
	out[n-1].Done = true
	return out
}

func TestTimelineSteps(t *testing.T) {
	tl := NewTimeline(frames(3), 1)
	require.False(t, tl.Done())
	assert.Len(t, tl.Tweens, 1)

	tl.Update(0.5)
	assert.Equal(t, 0, tl.Index())
	assert.Greater(t, tl.Light(), float32(0))
	assert.Less(t, tl.Light(), float32(1))
	assert.Equal(t, 1, tl.Next().Cell)

	tl.Update(0.5)
	assert.Equal(t, 1, tl.Index())
	assert.Equal(t, float32(0), tl.Light())
	assert.False(t, tl.Done())
	assert.Len(t, tl.Tweens, 1)

	tl.Update(1)
	assert.Equal(t, 2, tl.Index())
	assert.True(t, tl.Done())
	assert.True(t, tl.Frame().Done)
	assert.Empty(t, tl.Tweens)
	assert.Equal(t, 2, tl.Next().Cell)
}

func TestTimelineOneStepPerUpdate(t *testing.T) {
	tl := NewTimeline(frames(4), 0.1)
	// an overshooting update finishes only the running tween
	tl.Update(10)
	assert.Equal(t, 1, tl.Index())
	assert.False(t, tl.Done())
}

func TestTimelineSkip(t *testing.T) {
	tl := NewTimeline(frames(5), 1)
	tl.Skip()
	assert.True(t, tl.Done())
	assert.Equal(t, 4, tl.Index())
	assert.Empty(t, tl.Tweens)
}

func TestTimelineSingleFrame(t *testing.T) {
	tl := NewTimeline(frames(1), 1)
	assert.True(t, tl.Done())
	assert.Equal(t, 0, tl.Frame().Cell)
}
