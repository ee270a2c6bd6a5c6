package instruction

import (
	"errors"
	"fmt"
)

// ErrUnknownInstruction is wrapped by every DecodeError.
var ErrUnknownInstruction = errors.New("unknown instruction")

// DecodeError is returned for a word that does not encode a known instruction.
type DecodeError struct {
	Word uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s $%04X", ErrUnknownInstruction, e.Word)
}

func (e *DecodeError) Unwrap() error {
	return ErrUnknownInstruction
}

// Size is the size of every CHIP-8 instruction in bytes.
const Size = 2

// Decode maps an instruction word to its operation.
// It is defined for all inputs and returns a *DecodeError for words that
// do not match any opcode.
func Decode(word uint16) (Instruction, error) {
	x := extractRegisterX(word)
	y := extractRegisterY(word)
	nn := uint8(word & 0x00FF)
	nnn := word & 0x0FFF

	switch word & 0xF000 {
	case 0x0000:
		switch word {
		case 0x00E0:
			return ClearScreen{}, nil
		case 0x00EE:
			return Return{}, nil
		}
	case 0x1000:
		return Jump{Address: nnn}, nil
	case 0x2000:
		return Call{Address: nnn}, nil
	case 0x3000:
		return SkipEqualLiteral{X: x, Value: nn}, nil
	case 0x4000:
		return SkipNotEqualLiteral{X: x, Value: nn}, nil
	case 0x5000:
		if word&0x000F == 0 {
			return SkipEqual{X: x, Y: y}, nil
		}
	case 0x6000:
		return SetLiteral{X: x, Value: nn}, nil
	case 0x7000:
		return AddLiteral{X: x, Value: nn}, nil
	case 0x8000:
		if ins, ok := decodeArithmetic(word, x, y); ok {
			return ins, nil
		}
	case 0x9000:
		if word&0x000F == 0 {
			return SkipNotEqual{X: x, Y: y}, nil
		}
	case 0xA000:
		return SetIndex{Address: nnn}, nil
	case 0xB000:
		return JumpOffset{Address: nnn}, nil
	case 0xC000:
		return Random{X: x, Mask: nn}, nil
	case 0xD000:
		return Draw{X: x, Y: y, Height: uint8(word & 0x000F)}, nil
	case 0xE000:
		switch nn {
		case 0x9E:
			return SkipIfPressed{X: x}, nil
		case 0xA1:
			return SkipIfNotPressed{X: x}, nil
		}
	case 0xF000:
		if ins, ok := decodeMisc(nn, x); ok {
			return ins, nil
		}
	}

	return nil, &DecodeError{Word: word}
}

// decodeArithmetic decodes the 8XYN register to register operations.
func decodeArithmetic(word uint16, x, y uint8) (Instruction, bool) {
	switch word & 0x000F {
	case 0x0:
		return Set{X: x, Y: y}, true
	case 0x1:
		return Or{X: x, Y: y}, true
	case 0x2:
		return And{X: x, Y: y}, true
	case 0x3:
		return Xor{X: x, Y: y}, true
	case 0x4:
		return Add{X: x, Y: y}, true
	case 0x5:
		return Sub{X: x, Y: y}, true
	case 0x6:
		return ShiftRight{X: x, Y: y}, true
	case 0x7:
		return SubReverse{X: x, Y: y}, true
	case 0xE:
		return ShiftLeft{X: x, Y: y}, true
	}
	return nil, false
}

// decodeMisc decodes the FXNN timer, index and memory operations.
func decodeMisc(nn, x uint8) (Instruction, bool) {
	switch nn {
	case 0x07:
		return GetDelay{X: x}, true
	case 0x0A:
		return WaitKey{X: x}, true
	case 0x15:
		return SetDelay{X: x}, true
	case 0x18:
		return SetSound{X: x}, true
	case 0x1E:
		return AddIndex{X: x}, true
	case 0x29:
		return FontCharacter{X: x}, true
	case 0x33:
		return BCD{X: x}, true
	case 0x55:
		return StoreRegisters{X: x}, true
	case 0x65:
		return LoadRegisters{X: x}, true
	}
	return nil, false
}

// extractRegisterX extracts the X register nibble from an instruction word.
func extractRegisterX(word uint16) uint8 {
	return uint8((word & 0x0F00) >> 8)
}

// extractRegisterY extracts the Y register nibble from an instruction word.
func extractRegisterY(word uint16) uint8 {
	return uint8((word & 0x00F0) >> 4)
}
