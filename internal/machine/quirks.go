package machine

import (
	"fmt"
	"sort"
	"strings"
)

// ShiftMode selects the source register of the shift instructions.
type ShiftMode uint8

const (
	// ShiftInPlace shifts VX and ignores VY.
	ShiftInPlace ShiftMode = iota
	// ShiftFromY shifts VY and stores the result in VX.
	ShiftFromY
)

// JumpMode selects the register added by the jump with offset instruction.
type JumpMode uint8

const (
	// JumpV0 jumps to NNN + V0.
	JumpV0 JumpMode = iota
	// JumpVX jumps to XNN + VX, X being the top nibble of the address.
	JumpVX
)

// IndexFlagMode controls whether adding to the index register reports an
// overflow past the addressable memory in VF.
type IndexFlagMode uint8

const (
	// IndexFlagUnchanged leaves VF untouched.
	IndexFlagUnchanged IndexFlagMode = iota
	// IndexFlagOverflow sets VF to 1 if the sum exceeds 0xFFF and to 0 otherwise.
	IndexFlagOverflow
)

// IndexCommitMode controls the value committed to the index register after
// adding to it.
type IndexCommitMode uint8

const (
	// IndexWrap masks the sum to 12 bits.
	IndexWrap IndexCommitMode = iota
	// IndexUnmasked keeps the full 16-bit sum. Memory accesses through an
	// out of range index are then resolved by the MemoryMode.
	IndexUnmasked
)

// MemoryMode controls memory accesses past the end of memory by the draw,
// decimal conversion and register store/load instructions.
type MemoryMode uint8

const (
	// MemoryWrap wraps addresses modulo the memory size.
	MemoryWrap MemoryMode = iota
	// MemoryClip drops out of range writes, reads them as zero and sets VF
	// to 1 for the decimal conversion and register store/load instructions.
	MemoryClip
)

// Quirks selects between historically divergent interpretations of some
// instructions. The zero value is the modern profile.
type Quirks struct {
	Shift       ShiftMode
	Jump        JumpMode
	IndexFlag   IndexFlagMode
	IndexCommit IndexCommitMode
	Memory      MemoryMode

	// VFReset resets VF to 0 after the or, and, xor instructions.
	VFReset bool
	// IncrementIndex advances I by X+1 after storing or loading registers.
	IncrementIndex bool
	// StackDepth limits the number of nested calls, 0 means unlimited.
	StackDepth int
}

// Profile names.
const (
	ProfileModern = "modern"
	ProfileCosmac = "cosmac"
	ProfileSchip  = "schip"
)

var profiles = map[string]Quirks{
	ProfileModern: {},
	ProfileCosmac: {
		Shift:          ShiftFromY,
		VFReset:        true,
		IncrementIndex: true,
		StackDepth:     12,
	},
	ProfileSchip: {
		Jump:      JumpVX,
		IndexFlag: IndexFlagOverflow,
	},
}

// ProfileQuirks returns the quirks of a named compatibility profile.
func ProfileQuirks(name string) (Quirks, error) {
	q, ok := profiles[strings.ToLower(name)]
	if !ok {
		return Quirks{}, fmt.Errorf("unsupported quirks profile '%s', valid profiles: %s",
			name, strings.Join(Profiles(), ", "))
	}
	return q, nil
}

// Profiles returns the sorted names of all quirks profiles.
func Profiles() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	shiftModeNames   = []string{"vx", "vy"}
	jumpModeNames    = []string{"v0", "vx"}
	indexFlagNames   = []string{"unchanged", "overflow"}
	indexCommitNames = []string{"wrap", "unmasked"}
	memoryModeNames  = []string{"wrap", "clip"}
)

func (m ShiftMode) String() string       { return modeName(shiftModeNames, int(m)) }
func (m JumpMode) String() string        { return modeName(jumpModeNames, int(m)) }
func (m IndexFlagMode) String() string   { return modeName(indexFlagNames, int(m)) }
func (m IndexCommitMode) String() string { return modeName(indexCommitNames, int(m)) }
func (m MemoryMode) String() string      { return modeName(memoryModeNames, int(m)) }

// ParseShiftMode parses a shift mode name: vx or vy.
func ParseShiftMode(s string) (ShiftMode, error) {
	i, err := parseMode("shift", shiftModeNames, s)
	return ShiftMode(i), err
}

// ParseJumpMode parses a jump mode name: v0 or vx.
func ParseJumpMode(s string) (JumpMode, error) {
	i, err := parseMode("jump", jumpModeNames, s)
	return JumpMode(i), err
}

// ParseIndexFlagMode parses an index flag mode name: unchanged or overflow.
func ParseIndexFlagMode(s string) (IndexFlagMode, error) {
	i, err := parseMode("index flag", indexFlagNames, s)
	return IndexFlagMode(i), err
}

// ParseIndexCommitMode parses an index commit mode name: wrap or unmasked.
func ParseIndexCommitMode(s string) (IndexCommitMode, error) {
	i, err := parseMode("index commit", indexCommitNames, s)
	return IndexCommitMode(i), err
}

// ParseMemoryMode parses a memory mode name: wrap or clip.
func ParseMemoryMode(s string) (MemoryMode, error) {
	i, err := parseMode("memory", memoryModeNames, s)
	return MemoryMode(i), err
}

func modeName(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("unknown(%d)", i)
}

func parseMode(kind string, names []string, s string) (int, error) {
	s = strings.ToLower(s)
	for i, name := range names {
		if name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unsupported %s mode '%s', valid modes: %s",
		kind, s, strings.Join(names, ", "))
}
