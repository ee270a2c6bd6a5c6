package machine

// mockKeypad is a minimal keypad for testing.
type mockKeypad struct {
	held    [KeyCount]bool
	presses []uint8
}

func (k *mockKeypad) Pressed(key uint8) bool {
	return k.held[key&0x0F]
}

func (k *mockKeypad) LastPressed() (uint8, bool) {
	if len(k.presses) == 0 {
		return 0, false
	}
	key := k.presses[len(k.presses)-1]
	k.presses = k.presses[:0]
	return key, true
}
