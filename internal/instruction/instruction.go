// Package instruction contains the CHIP-8 instruction set: the decoded
// operation types, the decoder mapping 16-bit words to them and the encoder
// for the reverse direction.
package instruction

import "fmt"

// Instruction is a decoded CHIP-8 operation. The set of implementations is
// closed, every variant is declared in this package and carries only the
// operand fields it needs.
type Instruction interface {
	fmt.Stringer

	// Name returns the instruction mnemonic.
	Name() string

	isInstruction()
}

// ClearScreen clears the display (00E0).
type ClearScreen struct{}

// Return pops the call stack into the program counter (00EE).
type Return struct{}

// Jump sets the program counter to Address (1NNN).
type Jump struct {
	Address uint16
}

// Call pushes the program counter and jumps to Address (2NNN).
type Call struct {
	Address uint16
}

// SkipEqualLiteral skips the next instruction if VX == Value (3XNN).
type SkipEqualLiteral struct {
	X     uint8
	Value uint8
}

// SkipNotEqualLiteral skips the next instruction if VX != Value (4XNN).
type SkipNotEqualLiteral struct {
	X     uint8
	Value uint8
}

// SkipEqual skips the next instruction if VX == VY (5XY0).
type SkipEqual struct {
	X uint8
	Y uint8
}

// SkipNotEqual skips the next instruction if VX != VY (9XY0).
type SkipNotEqual struct {
	X uint8
	Y uint8
}

// SetLiteral sets VX = Value (6XNN).
type SetLiteral struct {
	X     uint8
	Value uint8
}

// AddLiteral adds Value to VX without touching the flag register (7XNN).
type AddLiteral struct {
	X     uint8
	Value uint8
}

// Set copies VY into VX (8XY0).
type Set struct {
	X uint8
	Y uint8
}

// Or sets VX |= VY (8XY1).
type Or struct {
	X uint8
	Y uint8
}

// And sets VX &= VY (8XY2).
type And struct {
	X uint8
	Y uint8
}

// Xor sets VX ^= VY (8XY3).
type Xor struct {
	X uint8
	Y uint8
}

// Add sets VX += VY with carry in VF (8XY4).
type Add struct {
	X uint8
	Y uint8
}

// Sub sets VX -= VY with VF = no borrow (8XY5).
type Sub struct {
	X uint8
	Y uint8
}

// ShiftRight shifts right by one bit into VX (8XY6). The source register
// depends on the machine's shift quirk.
type ShiftRight struct {
	X uint8
	Y uint8
}

// SubReverse sets VX = VY - VX with VF = no borrow (8XY7).
type SubReverse struct {
	X uint8
	Y uint8
}

// ShiftLeft shifts left by one bit into VX (8XYE). The source register
// depends on the machine's shift quirk.
type ShiftLeft struct {
	X uint8
	Y uint8
}

// SetIndex sets I = Address (ANNN).
type SetIndex struct {
	Address uint16
}

// JumpOffset jumps to Address plus a register value (BNNN). Which register
// is added depends on the machine's jump quirk.
type JumpOffset struct {
	Address uint16
}

// X returns the register selected by the top nibble of the address field,
// used by the XNN interpretation of the instruction.
func (i JumpOffset) X() uint8 {
	return uint8(i.Address >> 8)
}

// Random sets VX to a random byte masked with Mask (CXNN).
type Random struct {
	X    uint8
	Mask uint8
}

// Draw draws a sprite of Height rows at (VX, VY) (DXYN).
type Draw struct {
	X      uint8
	Y      uint8
	Height uint8
}

// SkipIfPressed skips the next instruction if the key in VX is held (EX9E).
type SkipIfPressed struct {
	X uint8
}

// SkipIfNotPressed skips the next instruction if the key in VX is not held (EXA1).
type SkipIfNotPressed struct {
	X uint8
}

// GetDelay sets VX to the delay timer (FX07).
type GetDelay struct {
	X uint8
}

// WaitKey waits for a key press and stores the key in VX (FX0A).
type WaitKey struct {
	X uint8
}

// SetDelay sets the delay timer to VX (FX15).
type SetDelay struct {
	X uint8
}

// SetSound sets the sound timer to VX (FX18).
type SetSound struct {
	X uint8
}

// AddIndex adds VX to I (FX1E).
type AddIndex struct {
	X uint8
}

// FontCharacter points I at the font glyph for the low nibble of VX (FX29).
type FontCharacter struct {
	X uint8
}

// BCD stores the decimal digits of VX at I, I+1 and I+2 (FX33).
type BCD struct {
	X uint8
}

// StoreRegisters stores V0 through VX at I (FX55).
type StoreRegisters struct {
	X uint8
}

// LoadRegisters loads V0 through VX from I (FX65).
type LoadRegisters struct {
	X uint8
}

func (ClearScreen) isInstruction()         {}
func (Return) isInstruction()              {}
func (Jump) isInstruction()                {}
func (Call) isInstruction()                {}
func (SkipEqualLiteral) isInstruction()    {}
func (SkipNotEqualLiteral) isInstruction() {}
func (SkipEqual) isInstruction()           {}
func (SkipNotEqual) isInstruction()        {}
func (SetLiteral) isInstruction()          {}
func (AddLiteral) isInstruction()          {}
func (Set) isInstruction()                 {}
func (Or) isInstruction()                  {}
func (And) isInstruction()                 {}
func (Xor) isInstruction()                 {}
func (Add) isInstruction()                 {}
func (Sub) isInstruction()                 {}
func (ShiftRight) isInstruction()          {}
func (SubReverse) isInstruction()          {}
func (ShiftLeft) isInstruction()           {}
func (SetIndex) isInstruction()            {}
func (JumpOffset) isInstruction()          {}
func (Random) isInstruction()              {}
func (Draw) isInstruction()                {}
func (SkipIfPressed) isInstruction()       {}
func (SkipIfNotPressed) isInstruction()    {}
func (GetDelay) isInstruction()            {}
func (WaitKey) isInstruction()             {}
func (SetDelay) isInstruction()            {}
func (SetSound) isInstruction()            {}
func (AddIndex) isInstruction()            {}
func (FontCharacter) isInstruction()       {}
func (BCD) isInstruction()                 {}
func (StoreRegisters) isInstruction()      {}
func (LoadRegisters) isInstruction()       {}
