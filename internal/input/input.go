// Package input provides the key state of the hexadecimal keypad, fed by
// an input device reader and queried by the machine.
package input

import (
	"sync"

	"github.com/retroenv/retrochip8/internal/machine"
)

// KeyCount is the number of keys on the keypad, owned by the machine.
const KeyCount = machine.KeyCount

var _ machine.Keypad = (*State)(nil)

// State tracks held keys and the most recent key press. It is safe for
// concurrent use by an input reader and the machine driver.
type State struct {
	mu      sync.Mutex
	held    [KeyCount]bool
	last    uint8
	hasLast bool
}

// New returns a new key state with no key held.
func New() *State {
	return &State{}
}

// Press marks the key as held and records it as the most recent press.
// Pressing an already held key does not record a new press.
func (s *State) Press(key uint8) {
	key &= 0x0F
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.held[key] {
		return
	}
	s.held[key] = true
	s.last = key
	s.hasLast = true
}

// Release marks the key as not held.
func (s *State) Release(key uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held[key&0x0F] = false
}

// ReleaseAll marks all keys as not held and drops a pending press.
func (s *State) ReleaseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held = [KeyCount]bool{}
	s.hasLast = false
}

// Pressed returns whether the key is held.
func (s *State) Pressed(key uint8) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held[key&0x0F]
}

// LastPressed returns the most recent key press since the last call and
// consumes it.
func (s *State) LastPressed() (uint8, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasLast {
		return 0, false
	}
	s.hasLast = false
	return s.last, true
}
