//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

// Package term connects the interpreter to a terminal: raw keyboard input
// mapped to the CHIP-8 keypad and a text mode display renderer.
package term

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Terminal is a terminal switched to raw input mode.
type Terminal struct {
	fd      int
	restore unix.Termios
}

// EnableRawMode disables line buffering and echo for the terminal behind the
// file descriptor. Signal generating keys like Ctrl-C stay enabled.
func EnableRawMode(fd int) (*Terminal, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("getting terminal attributes: %w", err)
	}

	t := &Terminal{
		fd:      fd,
		restore: *termios,
	}

	state := *termios
	state.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR | unix.ICRNL | unix.IXON
	state.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN
	state.Cflag &^= unix.CSIZE | unix.PARENB
	state.Cflag |= unix.CS8

	// block until at least one byte is available
	state.Cc[unix.VMIN] = 1
	state.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &state); err != nil {
		return nil, fmt.Errorf("setting terminal attributes: %w", err)
	}
	return t, nil
}

// Restore restores the terminal attributes that were active before raw mode
// was enabled.
func (t *Terminal) Restore() error {
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &t.restore); err != nil {
		return fmt.Errorf("restoring terminal attributes: %w", err)
	}
	return nil
}
