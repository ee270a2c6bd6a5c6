package term

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/retroenv/retrochip8/internal/input"
	"github.com/retroenv/retrogolib/assert"
)

func TestKeymap(t *testing.T) {
	assert.Equal(t, input.KeyCount, len(Keymap))

	var seen [input.KeyCount]bool
	for _, key := range Keymap {
		assert.False(t, seen[key])
		seen[key] = true
	}
}

func TestKeyboard_Run(t *testing.T) {
	state := input.New()
	var quit bool
	k := NewKeyboard(state, time.Minute, func() { quit = true })
	t.Cleanup(k.Stop)

	assert.NoError(t, k.Run(strings.NewReader("1Qx?\x1bv")))
	assert.True(t, quit)

	assert.True(t, state.Pressed(0x1))
	assert.True(t, state.Pressed(0x4))
	assert.True(t, state.Pressed(0x0))
	assert.False(t, state.Pressed(0xF)) // after the quit key

	key, ok := state.LastPressed()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x0), key)
}

func TestKeyboard_RunEOF(t *testing.T) {
	state := input.New()
	k := NewKeyboard(state, time.Minute, nil)
	t.Cleanup(k.Stop)

	assert.NoError(t, k.Run(strings.NewReader("z")))
	assert.True(t, state.Pressed(0xA))
}

func TestKeyboard_RunError(t *testing.T) {
	k := NewKeyboard(input.New(), time.Minute, nil)
	t.Cleanup(k.Stop)

	err := k.Run(iotest.ErrReader(errors.New("device gone")))
	assert.ErrorContains(t, err, "reading keyboard: device gone")
}

func TestKeyboard_Release(t *testing.T) {
	state := input.New()
	k := NewKeyboard(state, 10*time.Millisecond, nil)
	t.Cleanup(k.Stop)

	assert.True(t, k.handle('w'))
	assert.True(t, state.Pressed(0x5))

	deadline := time.Now().Add(time.Second)
	for state.Pressed(0x5) && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	assert.False(t, state.Pressed(0x5))

	// a new press after the release is a new edge
	_, _ = state.LastPressed()
	assert.True(t, k.handle('w'))
	key, ok := state.LastPressed()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x5), key)
}

func TestKeyboard_Stop(t *testing.T) {
	state := input.New()
	k := NewKeyboard(state, time.Minute, nil)

	assert.True(t, k.handle('e'))
	k.Stop()
	assert.False(t, state.Pressed(0x6))
	assert.False(t, k.handle('e'))
	assert.False(t, state.Pressed(0x6))
}
