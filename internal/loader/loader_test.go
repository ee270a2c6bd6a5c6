package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/asm"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // test functions can be long
func TestLoad(t *testing.T) {
	t.Run("load binary file", func(t *testing.T) {
		tmpFile := createTempFile(t, "test.ch8", []byte{0x00, 0xE0, 0x12, 0x00})
		defer os.Remove(tmpFile) //nolint:errcheck // test cleanup

		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: tmpFile},
		}

		image, err := loader.Load(opts, options.FormatBinary)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0xE0, 0x12, 0x00}, image)
	})

	t.Run("load assembly file", func(t *testing.T) {
		tmpFile := createTempFile(t, "test.asm", []byte("start:\n  cls\n  jp start\n"))
		defer os.Remove(tmpFile) //nolint:errcheck // test cleanup

		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: tmpFile},
		}

		image, err := loader.Load(opts, options.FormatAsm)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0xE0, 0x12, 0x00}, image)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: "/nonexistent/file.ch8"},
		}

		_, err := loader.Load(opts, options.FormatBinary)
		assert.Error(t, err)
	})

	t.Run("error on invalid assembly", func(t *testing.T) {
		tmpFile := createTempFile(t, "test.asm", []byte("mov V0, V1\n"))
		defer os.Remove(tmpFile) //nolint:errcheck // test cleanup

		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: tmpFile},
		}

		_, err := loader.Load(opts, options.FormatAsm)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, asm.ErrSyntax))
		assert.ErrorContains(t, err, "test.asm:1:1")
	})
}

func TestLoadFromBytes(t *testing.T) {
	loader := New()

	t.Run("program too large", func(t *testing.T) {
		_, err := loader.LoadFromBytes("big.ch8", make([]byte, machine.MaxProgramSize+1), options.FormatBinary)
		assert.True(t, errors.Is(err, machine.ErrProgramTooLarge))
	})

	t.Run("maximum size", func(t *testing.T) {
		image, err := loader.LoadFromBytes("big.ch8", make([]byte, machine.MaxProgramSize), options.FormatBinary)
		assert.NoError(t, err)
		assert.Len(t, image, machine.MaxProgramSize)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := loader.LoadFromBytes("game.hex", nil, options.Format("hex"))
		assert.ErrorContains(t, err, "unsupported format 'hex'")
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
