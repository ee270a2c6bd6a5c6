// Package detector handles input format detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles input format detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the input format from options or file auto-detection.
// An explicitly specified format takes precedence over the filename extension.
func (d *Detector) Detect(opts options.Program) options.Format {
	format := opts.Format
	if format == options.FormatAuto {
		format = d.detectFromFile(opts.Input)
		d.logger.Debug("Auto-detected format",
			log.Stringer("format", format),
			log.String("file", opts.Input))
	}
	return format
}

// detectFromFile determines the input format based on file extension.
func (d *Detector) detectFromFile(filename string) options.Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".asm", ".s", ".src":
		return options.FormatAsm
	default:
		// .ch8, .c8, .rom and unknown extensions are raw program images
		return options.FormatBinary
	}
}
