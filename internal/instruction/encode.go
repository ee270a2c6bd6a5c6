package instruction

import "fmt"

// Encode returns the instruction word for an operation. Operands are masked
// to their field widths. It is the inverse of Decode for every valid word.
func Encode(ins Instruction) (uint16, error) {
	switch i := ins.(type) {
	case ClearScreen:
		return 0x00E0, nil
	case Return:
		return 0x00EE, nil
	case Jump:
		return encodeNNN(0x1000, i.Address), nil
	case Call:
		return encodeNNN(0x2000, i.Address), nil
	case SkipEqualLiteral:
		return encodeXNN(0x3000, i.X, i.Value), nil
	case SkipNotEqualLiteral:
		return encodeXNN(0x4000, i.X, i.Value), nil
	case SkipEqual:
		return encodeXYN(0x5000, i.X, i.Y, 0x0), nil
	case SetLiteral:
		return encodeXNN(0x6000, i.X, i.Value), nil
	case AddLiteral:
		return encodeXNN(0x7000, i.X, i.Value), nil
	case Set:
		return encodeXYN(0x8000, i.X, i.Y, 0x0), nil
	case Or:
		return encodeXYN(0x8000, i.X, i.Y, 0x1), nil
	case And:
		return encodeXYN(0x8000, i.X, i.Y, 0x2), nil
	case Xor:
		return encodeXYN(0x8000, i.X, i.Y, 0x3), nil
	case Add:
		return encodeXYN(0x8000, i.X, i.Y, 0x4), nil
	case Sub:
		return encodeXYN(0x8000, i.X, i.Y, 0x5), nil
	case ShiftRight:
		return encodeXYN(0x8000, i.X, i.Y, 0x6), nil
	case SubReverse:
		return encodeXYN(0x8000, i.X, i.Y, 0x7), nil
	case ShiftLeft:
		return encodeXYN(0x8000, i.X, i.Y, 0xE), nil
	case SkipNotEqual:
		return encodeXYN(0x9000, i.X, i.Y, 0x0), nil
	case SetIndex:
		return encodeNNN(0xA000, i.Address), nil
	case JumpOffset:
		return encodeNNN(0xB000, i.Address), nil
	case Random:
		return encodeXNN(0xC000, i.X, i.Mask), nil
	case Draw:
		return encodeXYN(0xD000, i.X, i.Y, i.Height), nil
	case SkipIfPressed:
		return encodeXNN(0xE000, i.X, 0x9E), nil
	case SkipIfNotPressed:
		return encodeXNN(0xE000, i.X, 0xA1), nil
	case GetDelay:
		return encodeXNN(0xF000, i.X, 0x07), nil
	case WaitKey:
		return encodeXNN(0xF000, i.X, 0x0A), nil
	case SetDelay:
		return encodeXNN(0xF000, i.X, 0x15), nil
	case SetSound:
		return encodeXNN(0xF000, i.X, 0x18), nil
	case AddIndex:
		return encodeXNN(0xF000, i.X, 0x1E), nil
	case FontCharacter:
		return encodeXNN(0xF000, i.X, 0x29), nil
	case BCD:
		return encodeXNN(0xF000, i.X, 0x33), nil
	case StoreRegisters:
		return encodeXNN(0xF000, i.X, 0x55), nil
	case LoadRegisters:
		return encodeXNN(0xF000, i.X, 0x65), nil
	default:
		return 0, fmt.Errorf("unsupported instruction type %T", ins)
	}
}

func encodeNNN(class, address uint16) uint16 {
	return class | address&0x0FFF
}

func encodeXNN(class uint16, x, nn uint8) uint16 {
	return class | uint16(x&0x0F)<<8 | uint16(nn)
}

func encodeXYN(class uint16, x, y, n uint8) uint16 {
	return class | uint16(x&0x0F)<<8 | uint16(y&0x0F)<<4 | uint16(n&0x0F)
}
