// Package loader handles program file loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/asm"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
)

// Loader handles loading program files from disk.
type Loader struct{}

// New creates a new program loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the input file and returns the program image. Assembly source
// files are assembled first.
func (l *Loader) Load(opts options.Program, format options.Format) ([]byte, error) {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	return l.LoadFromBytes(opts.Input, data, format)
}

// LoadFromBytes returns the program image for the given file content.
func (l *Loader) LoadFromBytes(name string, data []byte, format options.Format) ([]byte, error) {
	image := data

	switch format {
	case options.FormatAsm:
		var err error
		image, err = asm.Assemble(name, string(data))
		if err != nil {
			return nil, fmt.Errorf("assembling: %w", err)
		}
	case options.FormatBinary, options.FormatAuto:
	default:
		return nil, fmt.Errorf("unsupported format '%s'", format)
	}

	if len(image) > machine.MaxProgramSize {
		return nil, fmt.Errorf("%w: %d bytes, maximum is %d", machine.ErrProgramTooLarge, len(image), machine.MaxProgramSize)
	}
	return image, nil
}
