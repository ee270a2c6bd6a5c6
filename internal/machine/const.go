package machine

// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter area, font glyphs at FontStart
//	0x200-0xFFF: Program space
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// ProgramStart is the address a program image is copied to and where
	// execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontStart is the address of the first font glyph.
	FontStart = 0x050

	// FontGlyphSize is the size of a single font glyph in bytes.
	FontGlyphSize = 5
)

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

const (
	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// FlagRegister is the index of VF, the implicit carry and collision flag.
	FlagRegister = 0xF

	// KeyCount is the number of keys on the hexadecimal keypad.
	KeyCount = 16
)
