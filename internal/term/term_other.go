//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package term

import "errors"

// Terminal is a terminal switched to raw input mode.
type Terminal struct{}

// EnableRawMode is not supported on this platform.
func EnableRawMode(int) (*Terminal, error) {
	return nil, errors.ErrUnsupported
}

// Restore does nothing on this platform.
func (t *Terminal) Restore() error {
	return nil
}
