package machine

import (
	"errors"
	"fmt"
)

var (
	// ErrStackUnderflow is returned for a return with an empty call stack.
	// It is fatal, the machine halts.
	ErrStackUnderflow = errors.New("call stack underflow")
	// ErrStackOverflow is returned for a call exceeding the configured
	// stack depth. It is fatal, the machine halts.
	ErrStackOverflow = errors.New("call stack overflow")
	// ErrHalted is returned by Tick after a fatal fault.
	ErrHalted = errors.New("machine halted")
	// ErrProgramTooLarge is returned when a program image does not fit into memory.
	ErrProgramTooLarge = errors.New("program too large")
	// ErrAddressOutOfRange is returned when the program counter points past
	// the last complete instruction word in memory.
	ErrAddressOutOfRange = errors.New("address out of range")
)

// FaultError describes an instruction that could not be fetched, decoded
// or executed. The program counter is left pointing at Address for
// decode failures.
type FaultError struct {
	Address uint16
	Word    uint16
	Err     error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("fault at $%03X (word $%04X): %v", e.Address, e.Word, e.Err)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}

// isFatal returns whether an execution error halts the machine.
func isFatal(err error) bool {
	return errors.Is(err, ErrStackUnderflow) || errors.Is(err, ErrStackOverflow)
}
