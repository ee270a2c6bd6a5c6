package input

import (
	"sync"
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
)

func TestState_PressRelease(t *testing.T) {
	s := New()
	assert.False(t, s.Pressed(0x5))

	s.Press(0x5)
	assert.True(t, s.Pressed(0x5))
	assert.False(t, s.Pressed(0x6))

	s.Release(0x5)
	assert.False(t, s.Pressed(0x5))
}

func TestState_LastPressed(t *testing.T) {
	s := New()

	_, ok := s.LastPressed()
	assert.False(t, ok)

	s.Press(0x3)
	s.Press(0xC)

	key, ok := s.LastPressed()
	assert.True(t, ok)
	assert.Equal(t, uint8(0xC), key)

	// consumed
	_, ok = s.LastPressed()
	assert.False(t, ok)

	// held key pressed again is not a new edge
	s.Press(0xC)
	_, ok = s.LastPressed()
	assert.False(t, ok)

	s.Release(0xC)
	s.Press(0xC)
	key, ok = s.LastPressed()
	assert.True(t, ok)
	assert.Equal(t, uint8(0xC), key)
}

func TestState_ReleaseAll(t *testing.T) {
	s := New()
	s.Press(0x1)
	s.Press(0x2)

	s.ReleaseAll()
	assert.False(t, s.Pressed(0x1))
	assert.False(t, s.Pressed(0x2))
	_, ok := s.LastPressed()
	assert.False(t, ok)
}

func TestState_KeyMasked(t *testing.T) {
	s := New()
	s.Press(0x1F)
	assert.True(t, s.Pressed(0xF))
}

func TestState_Concurrent(t *testing.T) {
	s := New()
	var wg sync.WaitGroup

	for i := range KeyCount {
		wg.Add(1)
		go func(key uint8) {
			defer wg.Done()
			s.Press(key)
			_ = s.Pressed(key)
			s.Release(key)
		}(uint8(i))
	}
	wg.Wait()

	for i := range KeyCount {
		assert.False(t, s.Pressed(uint8(i)))
	}
}

func TestState_Keypad(t *testing.T) {
	var keypad machine.Keypad = New()
	assert.Equal(t, machine.KeyCount, KeyCount)

	state := keypad.(*State)
	state.Press(machine.KeyCount - 1)
	assert.True(t, keypad.Pressed(machine.KeyCount-1))

	key, ok := keypad.LastPressed()
	assert.True(t, ok)
	assert.Equal(t, uint8(machine.KeyCount-1), key)
}
