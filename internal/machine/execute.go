package machine

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/instruction"
)

// Execute executes an instruction. The program counter is expected to
// already point past the instruction. Operands are masked to the widths of
// their encoded fields, so register numbers above F select V0-VF.
func (m *Machine) Execute(ins instruction.Instruction) error {
	word, err := instruction.Encode(ins)
	if err != nil {
		return err
	}
	ins, err = instruction.Decode(word)
	if err != nil {
		return fmt.Errorf("normalizing operands: %w", err)
	}
	return m.execute(ins)
}

// execute executes an instruction returned by Decode.
func (m *Machine) execute(ins instruction.Instruction) error {
	m.waiting = false

	switch i := ins.(type) {
	case instruction.ClearScreen:
		m.clearDisplay()

	case instruction.Return:
		if len(m.stack) == 0 {
			return ErrStackUnderflow
		}
		m.pc = m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]

	case instruction.Jump:
		m.pc = i.Address & 0x0FFF

	case instruction.Call:
		if m.quirks.StackDepth > 0 && len(m.stack) >= m.quirks.StackDepth {
			return fmt.Errorf("%w: depth %d", ErrStackOverflow, m.quirks.StackDepth)
		}
		m.stack = append(m.stack, m.pc)
		m.pc = i.Address & 0x0FFF

	case instruction.SkipEqualLiteral:
		m.skipIf(m.v[i.X] == i.Value)
	case instruction.SkipNotEqualLiteral:
		m.skipIf(m.v[i.X] != i.Value)
	case instruction.SkipEqual:
		m.skipIf(m.v[i.X] == m.v[i.Y])
	case instruction.SkipNotEqual:
		m.skipIf(m.v[i.X] != m.v[i.Y])

	case instruction.SetLiteral:
		m.v[i.X] = i.Value
	case instruction.AddLiteral:
		m.v[i.X] += i.Value

	case instruction.Set:
		m.v[i.X] = m.v[i.Y]
	case instruction.Or:
		m.v[i.X] |= m.v[i.Y]
		m.resetFlag()
	case instruction.And:
		m.v[i.X] &= m.v[i.Y]
		m.resetFlag()
	case instruction.Xor:
		m.v[i.X] ^= m.v[i.Y]
		m.resetFlag()

	case instruction.Add:
		m.add(i.X, i.Y)
	case instruction.Sub:
		m.subtract(i.X, m.v[i.X], m.v[i.Y])
	case instruction.SubReverse:
		m.subtract(i.X, m.v[i.Y], m.v[i.X])
	case instruction.ShiftRight:
		value := m.shiftSource(i.X, i.Y)
		m.v[i.X] = value >> 1
		m.v[FlagRegister] = value & 0x01
	case instruction.ShiftLeft:
		value := m.shiftSource(i.X, i.Y)
		m.v[i.X] = value << 1
		m.v[FlagRegister] = value >> 7

	case instruction.SetIndex:
		m.index = i.Address
	case instruction.JumpOffset:
		m.jumpOffset(i)
	case instruction.Random:
		m.v[i.X] = m.randByte() & i.Mask
	case instruction.Draw:
		collision := m.drawSprite(m.v[i.X], m.v[i.Y], i.Height)
		m.setFlag(collision)

	case instruction.SkipIfPressed:
		m.skipIf(m.keypad.Pressed(m.v[i.X] & 0x0F))
	case instruction.SkipIfNotPressed:
		m.skipIf(!m.keypad.Pressed(m.v[i.X] & 0x0F))
	case instruction.WaitKey:
		m.waitKey(i.X)

	case instruction.GetDelay:
		m.v[i.X] = m.delay
	case instruction.SetDelay:
		m.delay = m.v[i.X]
	case instruction.SetSound:
		m.sound = m.v[i.X]

	case instruction.AddIndex:
		m.addIndex(i.X)
	case instruction.FontCharacter:
		m.index = FontStart + uint16(m.v[i.X]&0x0F)*FontGlyphSize
	case instruction.BCD:
		m.storeDecimal(i.X)
	case instruction.StoreRegisters:
		m.storeRegisters(i.X)
	case instruction.LoadRegisters:
		m.loadRegisters(i.X)

	default:
		return fmt.Errorf("unsupported instruction type %T", ins)
	}

	return nil
}

func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += instruction.Size
	}
}

func (m *Machine) setFlag(set bool) {
	if set {
		m.v[FlagRegister] = 1
	} else {
		m.v[FlagRegister] = 0
	}
}

func (m *Machine) resetFlag() {
	if m.quirks.VFReset {
		m.v[FlagRegister] = 0
	}
}

// add computes the flag from the operands before any register is written,
// the flag is written last so that it wins if X is the flag register.
func (m *Machine) add(x, y uint8) {
	sum := uint16(m.v[x]) + uint16(m.v[y])
	m.v[x] = uint8(sum)
	m.setFlag(sum > 0xFF)
}

// subtract stores minuend - subtrahend in VX, VF is set if no borrow occurred.
func (m *Machine) subtract(x, minuend, subtrahend uint8) {
	m.v[x] = minuend - subtrahend
	m.setFlag(minuend >= subtrahend)
}

func (m *Machine) shiftSource(x, y uint8) uint8 {
	if m.quirks.Shift == ShiftFromY {
		return m.v[y]
	}
	return m.v[x]
}

func (m *Machine) jumpOffset(i instruction.JumpOffset) {
	register := uint8(0)
	if m.quirks.Jump == JumpVX {
		register = i.X()
	}
	m.pc = (i.Address + uint16(m.v[register])) & 0x0FFF
}

// waitKey rewinds the program counter until a key press is observed, the
// instruction is then executed again on the next tick.
func (m *Machine) waitKey(x uint8) {
	key, ok := m.keypad.LastPressed()
	if !ok {
		m.pc -= instruction.Size
		m.waiting = true
		return
	}
	m.v[x] = key & 0x0F
}

func (m *Machine) addIndex(x uint8) {
	sum := uint32(m.index) + uint32(m.v[x])
	overflow := sum >= MemorySize

	switch m.quirks.IndexCommit {
	case IndexUnmasked:
		m.index = uint16(sum)
	default:
		m.index = uint16(sum % MemorySize)
	}

	if m.quirks.IndexFlag == IndexFlagOverflow {
		m.setFlag(overflow)
	}
}

func (m *Machine) storeDecimal(x uint8) {
	value := m.v[x]
	ok := m.write(int(m.index), value/100)
	ok = m.write(int(m.index)+1, value/10%10) && ok
	ok = m.write(int(m.index)+2, value%10) && ok
	m.flagMemoryClip(ok)
}

func (m *Machine) storeRegisters(x uint8) {
	ok := true
	for r := range int(x) + 1 {
		ok = m.write(int(m.index)+r, m.v[r]) && ok
	}
	m.incrementIndex(x)
	m.flagMemoryClip(ok)
}

func (m *Machine) loadRegisters(x uint8) {
	ok := true
	for r := range int(x) + 1 {
		value, valid := m.read(int(m.index) + r)
		m.v[r] = value
		ok = valid && ok
	}
	m.incrementIndex(x)
	m.flagMemoryClip(ok)
}

func (m *Machine) incrementIndex(x uint8) {
	if m.quirks.IncrementIndex {
		m.index += uint16(x) + 1
	}
}

// flagMemoryClip sets VF if a memory access was dropped in clip mode.
func (m *Machine) flagMemoryClip(ok bool) {
	if !ok {
		m.v[FlagRegister] = 1
	}
}

// read returns the byte at address, resolving addresses past the end of
// memory by the memory quirk. The result is false if the read was clipped.
func (m *Machine) read(address int) (byte, bool) {
	if address < MemorySize {
		return m.memory[address], true
	}
	if m.quirks.Memory == MemoryWrap {
		return m.memory[address%MemorySize], true
	}
	return 0, false
}

// write stores the byte at address, resolving addresses past the end of
// memory by the memory quirk. The result is false if the write was dropped.
func (m *Machine) write(address int, value byte) bool {
	if address < MemorySize {
		m.memory[address] = value
		return true
	}
	if m.quirks.Memory == MemoryWrap {
		m.memory[address%MemorySize] = value
		return true
	}
	return false
}
