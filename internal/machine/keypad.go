package machine

// Keypad provides the state of the 16 key hexadecimal keypad. The machine
// only queries it, polling the input device is up to the implementation.
type Keypad interface {
	// Pressed returns whether the key is currently held.
	Pressed(key uint8) bool
	// LastPressed returns the most recently pressed key since the last call
	// and consumes the press.
	LastPressed() (uint8, bool)
}

// noKeypad is used when no keypad is configured, no key is ever pressed.
type noKeypad struct{}

func (noKeypad) Pressed(uint8) bool         { return false }
func (noKeypad) LastPressed() (uint8, bool) { return 0, false }
