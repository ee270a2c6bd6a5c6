package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	PrintBanner(logger, false, "retrochip8", "1.0.0", "abcdef0123", "2026-10-01")
	PrintBanner(logger, true, "retrochip8", "1.0.0", "", "")
}

//nolint:funlen // test functions can be long
func TestCreateQuirks(t *testing.T) {
	tests := []struct {
		name     string
		opts     options.Quirks
		expected machine.Quirks
		err      string
	}{
		{
			name:     "modern profile",
			opts:     options.Quirks{Profile: "modern"},
			expected: machine.Quirks{},
		},
		{
			name: "cosmac profile",
			opts: options.Quirks{Profile: "cosmac"},
			expected: machine.Quirks{
				Shift:          machine.ShiftFromY,
				VFReset:        true,
				IncrementIndex: true,
				StackDepth:     12,
			},
		},
		{
			name: "profile with overrides",
			opts: options.Quirks{
				Profile:        "cosmac",
				Shift:          "vx",
				Jump:           "vx",
				IndexFlag:      "overflow",
				IndexCommit:    "unmasked",
				Memory:         "clip",
				VFReset:        "false",
				IncrementIndex: "0",
				StackDepth:     32,
			},
			expected: machine.Quirks{
				Shift:       machine.ShiftInPlace,
				Jump:        machine.JumpVX,
				IndexFlag:   machine.IndexFlagOverflow,
				IndexCommit: machine.IndexUnmasked,
				Memory:      machine.MemoryClip,
				StackDepth:  32,
			},
		},
		{
			name: "unknown profile",
			opts: options.Quirks{Profile: "xochip"},
			err:  "selecting profile",
		},
		{
			name: "invalid mode",
			opts: options.Quirks{Profile: "modern", Jump: "v1"},
			err:  "unsupported jump mode 'v1'",
		},
		{
			name: "invalid bool",
			opts: options.Quirks{Profile: "modern", VFReset: "maybe"},
			err:  "unsupported vf-reset value 'maybe'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quirks, err := CreateQuirks(tt.opts)
			if tt.err != "" {
				assert.ErrorContains(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, quirks)
		})
	}
}
