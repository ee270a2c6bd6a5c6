package term

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/retroenv/retrochip8/internal/input"
)

const (
	keyEscape = 0x1B
	keyCtrlC  = 0x03
)

// Keymap maps the COSMAC VIP keypad layout onto the left side of a QWERTY
// keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  q w e r
//	7 8 9 E      a s d f
//	A 0 B F      z x c v
var Keymap = map[byte]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// Keyboard feeds terminal key presses into the keypad state. Terminals only
// report key presses, a key is released when it was not reported again
// within the hold time. Auto repeat of a held key keeps it pressed.
type Keyboard struct {
	state *input.State
	hold  time.Duration
	quit  func()

	mu      sync.Mutex
	timers  [input.KeyCount]*time.Timer
	stopped bool
}

// NewKeyboard returns a keyboard that updates the given state. The quit
// function is called when Esc or Ctrl-C is read.
func NewKeyboard(state *input.State, hold time.Duration, quit func()) *Keyboard {
	return &Keyboard{
		state: state,
		hold:  hold,
		quit:  quit,
	}
}

// Run reads key presses from the reader until it is exhausted or a quit key
// is read. It is meant to run in its own goroutine.
func (k *Keyboard) Run(r io.Reader) error {
	buf := make([]byte, 32)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if !k.handle(b) {
				return nil
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading keyboard: %w", err)
		}
	}
}

// handle processes a single input byte and returns false for a quit key.
func (k *Keyboard) handle(b byte) bool {
	if b == keyEscape || b == keyCtrlC {
		if k.quit != nil {
			k.quit()
		}
		return false
	}

	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	key, ok := Keymap[b]
	if !ok {
		return true
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if k.stopped {
		return false
	}

	k.state.Press(key)

	if timer := k.timers[key]; timer != nil {
		timer.Reset(k.hold)
		return true
	}
	k.timers[key] = time.AfterFunc(k.hold, func() {
		k.state.Release(key)
	})
	return true
}

// Stop cancels all pending key releases and releases all keys. Input read
// after stopping ends Run.
func (k *Keyboard) Stop() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.stopped = true
	for _, timer := range k.timers {
		if timer != nil {
			timer.Stop()
		}
	}
	k.state.ReleaseAll()
}
