package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/input"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
}

func TestPrepare(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	tmpFile := createTempFile(t, "test.ch8", []byte{0x00, 0xE0, 0x12, 0x02})

	opts := options.New()
	opts.Input = tmpFile
	opts.Profile = "cosmac"
	opts.Shift = "vx"

	m, err := p.Prepare(opts, input.New())
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xE0, 0x12, 0x02}, m.ReadMemory(machine.ProgramStart, 4))
	assert.Equal(t, machine.ShiftInPlace, m.Quirks().Shift)
	assert.True(t, m.Quirks().VFReset)
	assert.Equal(t, 12, m.Quirks().StackDepth)
}

//nolint:funlen // test functions can be long
func TestExecute(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	t.Run("execute assembly program", func(t *testing.T) {
		tmpFile := createTempFile(t, "test.asm", []byte("ld V1, 7\nloop: jp loop\n"))

		opts := options.New()
		opts.Input = tmpFile
		opts.CPUHz = 10000
		opts.MaxCycles = 10
		opts.Quiet = true

		m, err := p.Execute(context.Background(), opts, input.New(), nil)
		assert.NoError(t, err)
		assert.Equal(t, uint8(7), m.Register(1))
		assert.Equal(t, uint64(10), m.Cycles())
	})

	t.Run("execute with breakpoint", func(t *testing.T) {
		tmpFile := createTempFile(t, "test.asm", []byte("cls\ncls\nloop: jp loop\n"))

		opts := options.New()
		opts.Input = tmpFile
		opts.CPUHz = 10000
		opts.Breakpoints = []uint16{0x204}

		m, err := p.Execute(context.Background(), opts, input.New(), nil)
		assert.True(t, errors.Is(err, runner.ErrBreakpoint))
		assert.NotNil(t, m)
		assert.Equal(t, uint16(0x204), m.PC())
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		opts := options.New()
		opts.Input = "/nonexistent/file.ch8"

		_, err := p.Execute(context.Background(), opts, input.New(), nil)
		assert.ErrorContains(t, err, "loading program")
	})

	t.Run("error on unknown profile", func(t *testing.T) {
		tmpFile := createTempFile(t, "test.ch8", []byte{0x00, 0xE0})

		opts := options.New()
		opts.Input = tmpFile
		opts.Profile = "xochip"

		_, err := p.Execute(context.Background(), opts, input.New(), nil)
		assert.ErrorContains(t, err, "configuring quirks")
	})
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
