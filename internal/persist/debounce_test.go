package persist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_OnlyLatestSettles(t *testing.T) {
	d := NewDebouncer("resize", time.Millisecond)

	first := d.Trigger()
	second := d.Trigger()
	require.NotNil(t, first)
	require.NotNil(t, second)

	m1, ok := first().(DebounceMsg)
	require.True(t, ok)
	m2, ok := second().(DebounceMsg)
	require.True(t, ok)

	assert.False(t, d.Settled(m1))
	assert.True(t, d.Settled(m2))
	assert.False(t, d.Settled(DebounceMsg{Tag: "other", Seq: m2.Seq}))
}

func TestDebouncer_DefaultQuiet(t *testing.T) {
	d := NewDebouncer("x", 0)
	assert.Equal(t, DefaultQuiet, d.Quiet)
}
