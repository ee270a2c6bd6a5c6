package instruction

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Mnemonics follow the retrogolib CHIP-8 instruction table so that the
// output matches the retroasm syntax accepted by the assembler.

func (ClearScreen) Name() string         { return chip8.ClsName }
func (Return) Name() string              { return chip8.RetName }
func (Jump) Name() string                { return chip8.JpName }
func (Call) Name() string                { return chip8.CallName }
func (SkipEqualLiteral) Name() string    { return chip8.SeName }
func (SkipNotEqualLiteral) Name() string { return chip8.SneName }
func (SkipEqual) Name() string           { return chip8.SeName }
func (SkipNotEqual) Name() string        { return chip8.SneName }
func (SetLiteral) Name() string          { return chip8.LdName }
func (AddLiteral) Name() string          { return chip8.AddName }
func (Set) Name() string                 { return chip8.LdName }
func (Or) Name() string                  { return chip8.OrName }
func (And) Name() string                 { return chip8.AndName }
func (Xor) Name() string                 { return chip8.XorName }
func (Add) Name() string                 { return chip8.AddName }
func (Sub) Name() string                 { return chip8.SubName }
func (ShiftRight) Name() string          { return chip8.ShrName }
func (SubReverse) Name() string          { return chip8.SubnName }
func (ShiftLeft) Name() string           { return chip8.ShlName }
func (SetIndex) Name() string            { return chip8.LdName }
func (JumpOffset) Name() string          { return chip8.JpName }
func (Random) Name() string              { return chip8.RndName }
func (Draw) Name() string                { return chip8.DrwName }
func (SkipIfPressed) Name() string       { return chip8.SkpName }
func (SkipIfNotPressed) Name() string    { return chip8.SknpName }
func (GetDelay) Name() string            { return chip8.LdName }
func (WaitKey) Name() string             { return chip8.LdName }
func (SetDelay) Name() string            { return chip8.LdName }
func (SetSound) Name() string            { return chip8.LdName }
func (AddIndex) Name() string            { return chip8.AddName }
func (FontCharacter) Name() string       { return chip8.LdName }
func (BCD) Name() string                 { return chip8.LdName }
func (StoreRegisters) Name() string      { return chip8.LdName }
func (LoadRegisters) Name() string       { return chip8.LdName }

func (i ClearScreen) String() string { return i.Name() }
func (i Return) String() string      { return i.Name() }

func (i Jump) String() string { return formatAddress(i.Name(), i.Address) }
func (i Call) String() string { return formatAddress(i.Name(), i.Address) }

func (i SkipEqualLiteral) String() string    { return formatRegisterByte(i.Name(), i.X, i.Value) }
func (i SkipNotEqualLiteral) String() string { return formatRegisterByte(i.Name(), i.X, i.Value) }
func (i SetLiteral) String() string          { return formatRegisterByte(i.Name(), i.X, i.Value) }
func (i AddLiteral) String() string          { return formatRegisterByte(i.Name(), i.X, i.Value) }
func (i Random) String() string              { return formatRegisterByte(i.Name(), i.X, i.Mask) }

func (i SkipEqual) String() string    { return formatRegisters(i.Name(), i.X, i.Y) }
func (i SkipNotEqual) String() string { return formatRegisters(i.Name(), i.X, i.Y) }
func (i Set) String() string          { return formatRegisters(i.Name(), i.X, i.Y) }
func (i Or) String() string           { return formatRegisters(i.Name(), i.X, i.Y) }
func (i And) String() string          { return formatRegisters(i.Name(), i.X, i.Y) }
func (i Xor) String() string          { return formatRegisters(i.Name(), i.X, i.Y) }
func (i Add) String() string          { return formatRegisters(i.Name(), i.X, i.Y) }
func (i Sub) String() string          { return formatRegisters(i.Name(), i.X, i.Y) }
func (i SubReverse) String() string   { return formatRegisters(i.Name(), i.X, i.Y) }

func (i ShiftRight) String() string { return formatShift(i.Name(), i.X, i.Y) }
func (i ShiftLeft) String() string  { return formatShift(i.Name(), i.X, i.Y) }

func (i SetIndex) String() string {
	return fmt.Sprintf("%s I, $%03X", i.Name(), i.Address)
}

func (i JumpOffset) String() string {
	return fmt.Sprintf("%s V0, $%03X", i.Name(), i.Address)
}

func (i Draw) String() string {
	return fmt.Sprintf("%s V%X, V%X, $%X", i.Name(), i.X, i.Y, i.Height)
}

func (i SkipIfPressed) String() string    { return formatRegister(i.Name(), i.X) }
func (i SkipIfNotPressed) String() string { return formatRegister(i.Name(), i.X) }

func (i GetDelay) String() string       { return fmt.Sprintf("%s V%X, DT", i.Name(), i.X) }
func (i WaitKey) String() string        { return fmt.Sprintf("%s V%X, K", i.Name(), i.X) }
func (i SetDelay) String() string       { return fmt.Sprintf("%s DT, V%X", i.Name(), i.X) }
func (i SetSound) String() string       { return fmt.Sprintf("%s ST, V%X", i.Name(), i.X) }
func (i AddIndex) String() string       { return fmt.Sprintf("%s I, V%X", i.Name(), i.X) }
func (i FontCharacter) String() string  { return fmt.Sprintf("%s F, V%X", i.Name(), i.X) }
func (i BCD) String() string            { return fmt.Sprintf("%s B, V%X", i.Name(), i.X) }
func (i StoreRegisters) String() string { return fmt.Sprintf("%s [I], V%X", i.Name(), i.X) }
func (i LoadRegisters) String() string  { return fmt.Sprintf("%s V%X, [I]", i.Name(), i.X) }

func formatAddress(name string, address uint16) string {
	return fmt.Sprintf("%s $%03X", name, address)
}

func formatRegister(name string, x uint8) string {
	return fmt.Sprintf("%s V%X", name, x)
}

func formatRegisterByte(name string, x, value uint8) string {
	return fmt.Sprintf("%s V%X, $%02X", name, x, value)
}

func formatRegisters(name string, x, y uint8) string {
	return fmt.Sprintf("%s V%X, V%X", name, x, y)
}

// formatShift omits a zero Y operand, matching the common single operand
// form of the shift instructions.
func formatShift(name string, x, y uint8) string {
	if y == 0 {
		return formatRegister(name, x)
	}
	return formatRegisters(name, x, y)
}

// IsSkip returns whether the instruction conditionally skips the following
// instruction.
func IsSkip(ins Instruction) bool {
	return chip8.SkipInstructions.Contains(ins.Name())
}
