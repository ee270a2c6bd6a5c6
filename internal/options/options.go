// Package options contains the program options.
package options

import "time"

// Default values of the runtime options.
const (
	DefaultProfile = "modern"
	DefaultCPUHz   = 500
	DefaultKeyHold = 150 * time.Millisecond
)

// Format of an input file.
type Format string

// Supported input formats.
const (
	FormatAuto   Format = ""
	FormatBinary Format = "binary"
	FormatAsm    Format = "asm"
)

func (f Format) String() string {
	if f == FormatAuto {
		return "auto"
	}
	return string(f)
}

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input program file (.ch8 binary or .asm source)"`
	Format Format `flag:"f" usage:"input format: binary, asm (default: auto-detect)"`
}

// Flags contains behavior options.
type Flags struct {
	Debug    bool `flag:"debug" usage:"enable debug logging"`
	Quiet    bool `flag:"q" usage:"quiet mode"`
	Headless bool `flag:"headless" usage:"run without terminal input and rendering"`
	Trace    bool `flag:"trace" usage:"log every executed instruction, enables debug logging"`
}

// Runtime contains options that control the execution speed and stop conditions.
type Runtime struct {
	CPUHz       int           `flag:"hz" usage:"instructions executed per second" default:"500"`
	MaxCycles   uint64        `flag:"cycles" usage:"stop after executing this many instructions (0: unlimited)"`
	Breakpoints []uint16      `flag:"break" usage:"comma separated list of breakpoint addresses, for example 0x200,0x20A"`
	KeyHold     time.Duration `flag:"keyhold" usage:"time a key counts as held after the terminal reported it"`
}

// Quirks contains the interpreter compatibility options. Empty values keep the
// setting of the selected profile.
type Quirks struct {
	Profile        string `flag:"profile" usage:"quirk profile: cosmac, modern, schip" default:"modern"`
	Shift          string `flag:"quirk-shift" usage:"shift source register: vx, vy"`
	Jump           string `flag:"quirk-jump" usage:"jump with offset register: v0, vx"`
	IndexFlag      string `flag:"quirk-index-flag" usage:"add to index sets VF on overflow: unchanged, overflow"`
	IndexCommit    string `flag:"quirk-index-commit" usage:"add to index result: wrap, unmasked"`
	Memory         string `flag:"quirk-memory" usage:"memory access past the end: wrap, clip"`
	VFReset        string `flag:"quirk-vf-reset" usage:"logic instructions reset VF: true, false"`
	IncrementIndex string `flag:"quirk-increment-index" usage:"register store and load increment I: true, false"`
	StackDepth     int    `flag:"quirk-stack-depth" usage:"maximum call stack depth (0: profile default)"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	Runtime
	Quirks
}

// New returns program options with default values.
func New() Program {
	return Program{
		Runtime: Runtime{
			CPUHz:   DefaultCPUHz,
			KeyHold: DefaultKeyHold,
		},
		Quirks: Quirks{
			Profile: DefaultProfile,
		},
	}
}
