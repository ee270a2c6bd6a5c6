// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options.New()
	var format, breakpoints string
	readOptionFlags(flags, &opts, &format, &breakpoints)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}
	opts.Format = options.Format(strings.ToLower(format))

	opts.Breakpoints, err = parseBreakpoints(breakpoints)
	if err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <program to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	switch opts.Format {
	case options.FormatAuto, options.FormatBinary, options.FormatAsm:
	default:
		return fmt.Errorf("unsupported format: %s. Valid options: binary, asm", opts.Format)
	}

	if opts.CPUHz <= 0 {
		return fmt.Errorf("invalid instruction rate %d, must be positive", opts.CPUHz)
	}
	if opts.KeyHold <= 0 {
		return fmt.Errorf("invalid key hold time %s, must be positive", opts.KeyHold)
	}
	if opts.StackDepth < 0 {
		return fmt.Errorf("invalid stack depth %d, must not be negative", opts.StackDepth)
	}

	opts.Profile = strings.ToLower(opts.Profile)
	if opts.Trace {
		opts.Debug = true
	}
	if opts.Debug {
		opts.Quiet = false
	}
	return nil
}

// parseBreakpoints parses a comma separated list of addresses. Addresses can
// be given as decimal, 0x or $ prefixed hexadecimal numbers.
func parseBreakpoints(s string) ([]uint16, error) {
	if s == "" {
		return nil, nil
	}

	var addresses []uint16
	for field := range strings.SplitSeq(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		base := 10
		digits := field
		switch {
		case strings.HasPrefix(field, "$"):
			base, digits = 16, field[1:]
		case strings.HasPrefix(field, "0x"), strings.HasPrefix(field, "0X"):
			base, digits = 16, field[2:]
		}

		value, err := strconv.ParseUint(digits, base, 16)
		if err != nil || value >= machine.MemorySize {
			return nil, fmt.Errorf("invalid breakpoint address '%s'", field)
		}
		addresses = append(addresses, uint16(value))
	}
	return addresses, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, format, breakpoints *string) {
	flags.StringVar(&opts.Input, "i", "", "name of the input program file")
	flags.StringVar(format, "f", "", "input format: binary, asm (default: auto-detect from file extension)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Headless, "headless", false, "run without terminal input and rendering")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, enables debug logging")

	flags.IntVar(&opts.CPUHz, "hz", options.DefaultCPUHz, "instructions executed per second")
	flags.Uint64Var(&opts.MaxCycles, "cycles", 0, "stop after executing this many instructions (0: unlimited)")
	flags.StringVar(breakpoints, "break", "", "comma separated list of breakpoint addresses, for example 0x200,$20A")
	flags.DurationVar(&opts.KeyHold, "keyhold", options.DefaultKeyHold, "time a key counts as held after the terminal reported it")

	flags.StringVar(&opts.Profile, "profile", options.DefaultProfile, "quirk profile: cosmac, modern, schip")
	flags.StringVar(&opts.Shift, "quirk-shift", "", "shift source register: vx, vy")
	flags.StringVar(&opts.Jump, "quirk-jump", "", "jump with offset register: v0, vx")
	flags.StringVar(&opts.IndexFlag, "quirk-index-flag", "", "add to index sets VF on overflow: unchanged, overflow")
	flags.StringVar(&opts.IndexCommit, "quirk-index-commit", "", "add to index result: wrap, unmasked")
	flags.StringVar(&opts.Memory, "quirk-memory", "", "memory access past the end: wrap, clip")
	flags.StringVar(&opts.VFReset, "quirk-vf-reset", "", "logic instructions reset VF: true, false")
	flags.StringVar(&opts.IncrementIndex, "quirk-increment-index", "", "register store and load increment I: true, false")
	flags.IntVar(&opts.StackDepth, "quirk-stack-depth", 0, "maximum call stack depth (0: profile default)")
}
