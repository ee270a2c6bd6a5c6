// Package config handles application configuration and setup
package config

import (
	"fmt"
	"strconv"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateQuirks returns the quirks of the selected profile with all
// explicitly set quirk options applied on top.
func CreateQuirks(opts options.Quirks) (machine.Quirks, error) {
	quirks, err := machine.ProfileQuirks(opts.Profile)
	if err != nil {
		return machine.Quirks{}, fmt.Errorf("selecting profile: %w", err)
	}

	if opts.Shift != "" {
		if quirks.Shift, err = machine.ParseShiftMode(opts.Shift); err != nil {
			return machine.Quirks{}, err
		}
	}
	if opts.Jump != "" {
		if quirks.Jump, err = machine.ParseJumpMode(opts.Jump); err != nil {
			return machine.Quirks{}, err
		}
	}
	if opts.IndexFlag != "" {
		if quirks.IndexFlag, err = machine.ParseIndexFlagMode(opts.IndexFlag); err != nil {
			return machine.Quirks{}, err
		}
	}
	if opts.IndexCommit != "" {
		if quirks.IndexCommit, err = machine.ParseIndexCommitMode(opts.IndexCommit); err != nil {
			return machine.Quirks{}, err
		}
	}
	if opts.Memory != "" {
		if quirks.Memory, err = machine.ParseMemoryMode(opts.Memory); err != nil {
			return machine.Quirks{}, err
		}
	}
	if opts.VFReset != "" {
		if quirks.VFReset, err = parseBool("vf-reset", opts.VFReset); err != nil {
			return machine.Quirks{}, err
		}
	}
	if opts.IncrementIndex != "" {
		if quirks.IncrementIndex, err = parseBool("increment-index", opts.IncrementIndex); err != nil {
			return machine.Quirks{}, err
		}
	}
	if opts.StackDepth > 0 {
		quirks.StackDepth = opts.StackDepth
	}
	return quirks, nil
}

func parseBool(name, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("unsupported %s value '%s', valid values: true, false", name, value)
	}
	return b, nil
}

// PrintBanner logs the program name and version information.
func PrintBanner(logger *log.Logger, quiet bool, name, version, commit, date string) {
	if quiet {
		return
	}
	logger.Info(name, log.String("version", buildinfo.Version(version, commit, date)))
}
