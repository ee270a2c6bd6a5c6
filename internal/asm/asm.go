// Package asm implements an assembler for CHIP-8 programs written in the
// retroasm syntax, the same syntax the disassembly listing produces.
//
//	; comment
//	.org $200
//	start:
//	  ld V0, $05
//	  ld I, sprite
//	  drw V0, V0, $5
//	  jp start
//	sprite:
//	  .byte $F0, $90, $F0
package asm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/retroenv/retrochip8/internal/machine"
)

// ErrSyntax is wrapped by all errors caused by invalid source.
var ErrSyntax = errors.New("syntax error")

// Error describes an invalid source statement.
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *Error) Unwrap() error {
	return ErrSyntax
}

func errorf(pos lexer.Position, format string, args ...any) error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Assemble assembles the source and returns the program image that is to
// be loaded at the program start address.
func Assemble(filename, text string) ([]byte, error) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	src, err := parser.ParseString(filename, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	a := &assembler{
		labels: map[string]uint16{},
	}
	if err := a.collectLabels(src); err != nil {
		return nil, err
	}
	if err := a.emit(src); err != nil {
		return nil, err
	}
	return a.image, nil
}

type assembler struct {
	labels map[string]uint16
	image  []byte
	pc     int
}

// collectLabels assigns an address to every label.
func (a *assembler) collectLabels(src *source) error {
	a.pc = machine.ProgramStart

	for _, l := range src.Lines {
		if l.Label != nil {
			name := strings.ToLower(*l.Label)
			if _, ok := a.labels[name]; ok {
				return errorf(l.Pos, "label '%s' redefined", *l.Label)
			}
			if isKeyword(name) {
				return errorf(l.Pos, "label '%s' is a reserved name", *l.Label)
			}
			a.labels[name] = uint16(a.pc)
		}

		if l.Statement == nil {
			continue
		}
		size, err := a.statementSize(l.Statement)
		if err != nil {
			return err
		}
		a.pc += size
	}
	return nil
}

// statementSize returns the number of bytes the statement emits, applying
// address changes of .org directives.
func (a *assembler) statementSize(st *statement) (int, error) {
	if st.Instruction != nil {
		return opcodeSize, nil
	}

	d := st.Directive
	switch strings.ToLower(d.Name) {
	case ".org":
		origin, err := a.origin(d)
		if err != nil {
			return 0, err
		}
		a.pc = origin
		return 0, nil
	case ".byte", ".db":
		return len(d.Arguments), nil
	case ".word", ".dw":
		return 2 * len(d.Arguments), nil
	default:
		return 0, errorf(d.Pos, "unsupported directive '%s'", d.Name)
	}
}

// emit encodes all statements into the image.
func (a *assembler) emit(src *source) error {
	a.pc = machine.ProgramStart

	for _, l := range src.Lines {
		if l.Statement == nil {
			continue
		}

		var err error
		if l.Statement.Instruction != nil {
			err = a.emitCommand(l.Statement.Instruction)
		} else {
			err = a.emitDirective(l.Statement.Directive)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *assembler) emitDirective(d *directive) error {
	switch strings.ToLower(d.Name) {
	case ".org":
		origin, err := a.origin(d)
		if err != nil {
			return err
		}
		a.pad(origin)

	case ".byte", ".db":
		for _, argument := range d.Arguments {
			value, err := a.number(argument, 0xFF)
			if err != nil {
				return err
			}
			if err := a.write(argument.Pos, byte(value)); err != nil {
				return err
			}
		}

	case ".word", ".dw":
		for _, argument := range d.Arguments {
			value, err := a.number(argument, 0xFFFF)
			if err != nil {
				return err
			}
			if err := a.write(argument.Pos, byte(value>>8), byte(value)); err != nil {
				return err
			}
		}
	}
	return nil
}

// origin validates the argument of an .org directive. The origin can only
// move forward and never before the program start.
func (a *assembler) origin(d *directive) (int, error) {
	if len(d.Arguments) != 1 {
		return 0, errorf(d.Pos, ".org expects one address argument")
	}
	value, err := a.number(d.Arguments[0], machine.MemorySize-1)
	if err != nil {
		return 0, err
	}
	if value < a.pc {
		return 0, errorf(d.Pos, ".org $%03X is before the current address $%03X", value, a.pc)
	}
	return value, nil
}

func (a *assembler) pad(address int) {
	for a.pc < address {
		a.image = append(a.image, 0)
		a.pc++
	}
}

func (a *assembler) write(pos lexer.Position, data ...byte) error {
	if a.pc+len(data) > machine.MemorySize {
		return errorf(pos, "address $%04X exceeds memory", a.pc+len(data)-1)
	}
	a.image = append(a.image, data...)
	a.pc += len(data)
	return nil
}

// number resolves a numeric or label operand and checks it against max.
func (a *assembler) number(op *operand, maxValue int) (int, error) {
	var value int

	switch {
	case op.Number != nil:
		v, err := parseNumber(*op.Number)
		if err != nil {
			return 0, errorf(op.Pos, "invalid number '%s'", *op.Number)
		}
		value = v

	case op.Ident != nil:
		address, ok := a.labels[strings.ToLower(*op.Ident)]
		if !ok {
			return 0, errorf(op.Pos, "undefined label '%s'", *op.Ident)
		}
		value = int(address)

	default:
		return 0, errorf(op.Pos, "expected a number or label")
	}

	if value > maxValue {
		return 0, errorf(op.Pos, "value $%X exceeds maximum $%X", value, maxValue)
	}
	return value, nil
}

func parseNumber(s string) (int, error) {
	var (
		value uint64
		err   error
	)
	switch {
	case strings.HasPrefix(s, "$"):
		value, err = strconv.ParseUint(s[1:], 16, 32)
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		value, err = strconv.ParseUint(s[2:], 16, 32)
	default:
		value, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("parsing number: %w", err)
	}
	return int(value), nil
}
