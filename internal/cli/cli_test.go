package cli

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // test functions can be long
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, opts options.Program)
	}{
		{
			name: "defaults",
			args: []string{"prog", "pong.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, "pong.ch8", opts.Input)
				assert.Equal(t, options.FormatAuto, opts.Format)
				assert.Equal(t, options.DefaultCPUHz, opts.CPUHz)
				assert.Equal(t, options.DefaultKeyHold, opts.KeyHold)
				assert.Equal(t, options.DefaultProfile, opts.Profile)
				assert.Empty(t, opts.Breakpoints)
			},
		},
		{
			name: "runtime flags",
			args: []string{"prog", "-hz", "1000", "-cycles", "50", "-keyhold", "80ms", "-break", "0x200, $20A,522", "pong.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, 1000, opts.CPUHz)
				assert.Equal(t, uint64(50), opts.MaxCycles)
				assert.Equal(t, 80*time.Millisecond, opts.KeyHold)
				assert.Equal(t, []uint16{0x200, 0x20A, 0x20A}, opts.Breakpoints)
			},
		},
		{
			name: "quirk flags",
			args: []string{"prog", "-profile", "COSMAC", "-quirk-shift", "vx", "-quirk-stack-depth", "16", "pong.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, "cosmac", opts.Profile)
				assert.Equal(t, "vx", opts.Shift)
				assert.Equal(t, 16, opts.StackDepth)
			},
		},
		{
			name: "trace enables debug",
			args: []string{"prog", "-q", "-trace", "-f", "ASM", "game.txt"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.True(t, opts.Trace)
				assert.True(t, opts.Debug)
				assert.False(t, opts.Quiet)
				assert.Equal(t, options.FormatAsm, opts.Format)
			},
		},
		{
			name: "input flag",
			args: []string{"prog", "-i", "pong.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, "pong.ch8", opts.Input)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })
			os.Args = tt.args

			opts, err := ParseFlags()
			assert.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		usage   bool
		message string
	}{
		{"no input", []string{"prog"}, true, ""},
		{"flag after file", []string{"prog", "pong.ch8", "-q"}, true, "found after program file"},
		{"invalid format", []string{"prog", "-f", "hex", "pong.ch8"}, false, "unsupported format: hex"},
		{"invalid rate", []string{"prog", "-hz", "0", "pong.ch8"}, false, "invalid instruction rate 0"},
		{"invalid breakpoint", []string{"prog", "-break", "0x1000", "pong.ch8"}, false, "invalid breakpoint address '0x1000'"},
		{"negative stack depth", []string{"prog", "-quirk-stack-depth", "-1", "pong.ch8"}, false, "invalid stack depth -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })
			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
			if tt.message != "" {
				assert.ErrorContains(t, err, tt.message)
			}
		})
	}
}

func TestParseBreakpoints(t *testing.T) {
	addresses, err := parseBreakpoints("")
	assert.NoError(t, err)
	assert.Nil(t, addresses)

	addresses, err = parseBreakpoints("512,,0xFFF")
	assert.NoError(t, err)
	assert.Equal(t, []uint16{0x200, 0xFFF}, addresses)

	_, err = parseBreakpoints("$XYZ")
	assert.ErrorContains(t, err, "invalid breakpoint address '$XYZ'")
}
