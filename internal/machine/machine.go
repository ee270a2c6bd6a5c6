// Package machine implements the CHIP-8 virtual machine: its state and the
// execution engine that mutates it one instruction at a time.
//
// A Machine is not safe for concurrent use, it is meant to be owned by a
// single driver loop that calls Tick and TickTimers at its chosen rates.
package machine

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrochip8/internal/instruction"
)

// Machine contains the complete state of a CHIP-8 virtual machine.
type Machine struct {
	memory   [MemorySize]byte
	display  [DisplayHeight][DisplayWidth]bool
	v        [RegisterCount]uint8
	stack    []uint16
	pc       uint16
	index    uint16
	delay    uint8
	sound    uint8
	cycles   uint64
	program  []byte
	fault    error // fatal fault that halted the machine
	waiting  bool  // blocked on a key wait instruction
	drawn    bool  // display changed since last ConsumeDisplayUpdate
	quirks   Quirks
	keypad   Keypad
	randByte func() uint8
}

// Option configures a Machine.
type Option func(*Machine)

// WithQuirks sets the quirks used for executing ambiguous instructions.
func WithQuirks(q Quirks) Option {
	return func(m *Machine) {
		m.quirks = q
	}
}

// WithKeypad sets the keypad queried by the key instructions.
func WithKeypad(k Keypad) Option {
	return func(m *Machine) {
		if k != nil {
			m.keypad = k
		}
	}
}

// WithRandom sets the random byte source of the random instruction.
func WithRandom(f func() uint8) Option {
	return func(m *Machine) {
		if f != nil {
			m.randByte = f
		}
	}
}

// New returns a new machine with the font loaded and the program counter
// at ProgramStart.
func New(opts ...Option) *Machine {
	m := &Machine{
		keypad: noKeypad{},
		randByte: func() uint8 {
			return uint8(rand.Uint32())
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Reset()
	return m
}

// Reset restores the power on state and reloads the last loaded program.
// Configuration like quirks and keypad is kept.
func (m *Machine) Reset() {
	m.memory = [MemorySize]byte{}
	copy(m.memory[FontStart:], font[:])
	copy(m.memory[ProgramStart:], m.program)

	m.display = [DisplayHeight][DisplayWidth]bool{}
	m.v = [RegisterCount]uint8{}
	m.stack = m.stack[:0]
	m.pc = ProgramStart
	m.index = 0
	m.delay = 0
	m.sound = 0
	m.cycles = 0
	m.fault = nil
	m.waiting = false
	m.drawn = true
}

// Load resets the machine and copies the program image to ProgramStart.
// An image that does not fit into memory is rejected and leaves the
// machine unchanged.
func (m *Machine) Load(image []byte) error {
	if len(image) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(image), MaxProgramSize)
	}

	m.program = make([]byte, len(image))
	copy(m.program, image)
	m.Reset()
	return nil
}

// Tick fetches, decodes and executes a single instruction.
// A returned *FaultError describes the failing instruction. After a fatal
// fault every further call returns an error wrapping ErrHalted.
func (m *Machine) Tick() error {
	if m.fault != nil {
		return fmt.Errorf("%w: %w", ErrHalted, m.fault)
	}

	address := m.pc
	word, err := m.fetch()
	if err != nil {
		return &FaultError{Address: address, Err: err}
	}

	ins, err := instruction.Decode(word)
	if err != nil {
		return &FaultError{Address: address, Word: word, Err: err}
	}

	m.pc += instruction.Size
	if err := m.execute(ins); err != nil {
		fault := &FaultError{Address: address, Word: word, Err: err}
		if isFatal(err) {
			m.fault = fault
		}
		return fault
	}

	m.cycles++
	return nil
}

// TickTimers decrements the delay and sound timers, stopping at zero.
func (m *Machine) TickTimers() {
	if m.delay > 0 {
		m.delay--
	}
	if m.sound > 0 {
		m.sound--
	}
}

// fetch reads the big endian instruction word at the program counter.
func (m *Machine) fetch() (uint16, error) {
	if int(m.pc)+1 >= MemorySize {
		return 0, fmt.Errorf("fetching word at $%04X: %w", m.pc, ErrAddressOutOfRange)
	}
	return binary.BigEndian.Uint16(m.memory[m.pc:]), nil
}

// Fetch returns the instruction word at the program counter without
// executing it.
func (m *Machine) Fetch() (uint16, error) {
	return m.fetch()
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// Index returns the index register.
func (m *Machine) Index() uint16 {
	return m.index
}

// Register returns the value of register VX, x is masked to 0-F.
func (m *Machine) Register(x uint8) uint8 {
	return m.v[x&0x0F]
}

// Registers returns a copy of all registers.
func (m *Machine) Registers() [RegisterCount]uint8 {
	return m.v
}

// Stack returns a copy of the call stack, the last element is the top.
func (m *Machine) Stack() []uint16 {
	stack := make([]uint16, len(m.stack))
	copy(stack, m.stack)
	return stack
}

// DelayTimer returns the delay timer.
func (m *Machine) DelayTimer() uint8 {
	return m.delay
}

// SoundTimer returns the sound timer. A non zero value means the buzzer
// should sound.
func (m *Machine) SoundTimer() uint8 {
	return m.sound
}

// Cycles returns the number of instructions executed since the last reset.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}

// Quirks returns the configured quirks.
func (m *Machine) Quirks() Quirks {
	return m.quirks
}

// Halted returns the fatal fault that halted the machine or nil.
func (m *Machine) Halted() error {
	return m.fault
}

// Waiting returns whether the last executed instruction is waiting for a key press.
func (m *Machine) Waiting() bool {
	return m.waiting
}

// ReadMemory returns a copy of up to n bytes of memory starting at address.
func (m *Machine) ReadMemory(address uint16, n int) []byte {
	if int(address) >= MemorySize || n <= 0 {
		return nil
	}
	end := min(int(address)+n, MemorySize)
	data := make([]byte, end-int(address))
	copy(data, m.memory[address:end])
	return data
}
