package asm

import (
	"strings"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

const opcodeSize = 2

// operandKind classifies a resolved operand.
type operandKind int

const (
	kindNumber operandKind = iota
	kindRegister
	kindIndex    // I
	kindIndirect // [I]
	kindDelay    // DT
	kindSound    // ST
	kindKey      // K
	kindFont     // F
	kindDecimal  // B
)

var keywords = map[string]operandKind{
	"i":  kindIndex,
	"dt": kindDelay,
	"st": kindSound,
	"k":  kindKey,
	"f":  kindFont,
	"b":  kindDecimal,
}

type arg struct {
	op       *operand
	kind     operandKind
	register uint8
}

func isKeyword(name string) bool {
	if _, ok := keywords[name]; ok {
		return true
	}
	_, ok := parseRegister(name)
	return ok
}

// parseRegister parses a register name V0-VF.
func parseRegister(name string) (uint8, bool) {
	name = strings.ToLower(name)
	if len(name) != 2 || name[0] != 'v' {
		return 0, false
	}
	c := name[1]
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

func classify(op *operand) (arg, error) {
	a := arg{op: op, kind: kindNumber}

	switch {
	case op.Indirect != nil:
		if !strings.EqualFold(*op.Indirect, "i") {
			return a, errorf(op.Pos, "invalid indirect operand '[%s]'", *op.Indirect)
		}
		a.kind = kindIndirect

	case op.Ident != nil:
		name := strings.ToLower(*op.Ident)
		if register, ok := parseRegister(name); ok {
			a.kind = kindRegister
			a.register = register
		} else if kind, ok := keywords[name]; ok {
			a.kind = kind
		}
	}
	return a, nil
}

// kinds returns whether the operands match the given kinds exactly.
func kinds(args []arg, expected ...operandKind) bool {
	if len(args) != len(expected) {
		return false
	}
	for i, k := range expected {
		if args[i].kind != k {
			return false
		}
	}
	return true
}

func (a *assembler) emitCommand(cmd *command) error {
	args := make([]arg, 0, len(cmd.Operands))
	for _, op := range cmd.Operands {
		classified, err := classify(op)
		if err != nil {
			return err
		}
		args = append(args, classified)
	}

	decoded, err := a.resolve(cmd, args)
	if err != nil {
		return err
	}

	word, err := instruction.Encode(decoded)
	if err != nil {
		return errorf(cmd.Pos, "%s", err)
	}
	return a.write(cmd.Pos, byte(word>>8), byte(word))
}

// resolve maps a mnemonic and its operands to an instruction.
//
//nolint:cyclop,funlen // one case per mnemonic and operand form
func (a *assembler) resolve(cmd *command, args []arg) (instruction.Instruction, error) {
	name := strings.ToLower(cmd.Mnemonic)

	switch name {
	case chip8.ClsName:
		if kinds(args) {
			return instruction.ClearScreen{}, nil
		}
	case chip8.RetName:
		if kinds(args) {
			return instruction.Return{}, nil
		}

	case chip8.JpName:
		switch {
		case kinds(args, kindNumber):
			addr, err := a.number(args[0].op, 0xFFF)
			return instruction.Jump{Address: uint16(addr)}, err
		case kinds(args, kindRegister, kindNumber) && args[0].register == 0:
			addr, err := a.number(args[1].op, 0xFFF)
			return instruction.JumpOffset{Address: uint16(addr)}, err
		}
	case chip8.CallName:
		if kinds(args, kindNumber) {
			addr, err := a.number(args[0].op, 0xFFF)
			return instruction.Call{Address: uint16(addr)}, err
		}

	case chip8.SeName, chip8.SneName:
		return a.resolveCompare(cmd, name == chip8.SeName, args)

	case chip8.LdName:
		return a.resolveLoad(cmd, args)

	case chip8.AddName:
		switch {
		case kinds(args, kindRegister, kindNumber):
			value, err := a.number(args[1].op, 0xFF)
			return instruction.AddLiteral{X: args[0].register, Value: uint8(value)}, err
		case kinds(args, kindRegister, kindRegister):
			return instruction.Add{X: args[0].register, Y: args[1].register}, nil
		case kinds(args, kindIndex, kindRegister):
			return instruction.AddIndex{X: args[1].register}, nil
		}

	case chip8.OrName, chip8.AndName, chip8.XorName, chip8.SubName, chip8.SubnName:
		if kinds(args, kindRegister, kindRegister) {
			return registerOperation(name, args[0].register, args[1].register), nil
		}

	case chip8.ShrName, chip8.ShlName:
		var x, y uint8
		switch {
		case kinds(args, kindRegister):
			x = args[0].register
		case kinds(args, kindRegister, kindRegister):
			x, y = args[0].register, args[1].register
		default:
			return nil, errorf(cmd.Pos, "invalid operands for '%s'", cmd.Mnemonic)
		}
		if name == chip8.ShrName {
			return instruction.ShiftRight{X: x, Y: y}, nil
		}
		return instruction.ShiftLeft{X: x, Y: y}, nil

	case chip8.RndName:
		if kinds(args, kindRegister, kindNumber) {
			mask, err := a.number(args[1].op, 0xFF)
			return instruction.Random{X: args[0].register, Mask: uint8(mask)}, err
		}

	case chip8.DrwName:
		if kinds(args, kindRegister, kindRegister, kindNumber) {
			height, err := a.number(args[2].op, 0xF)
			return instruction.Draw{X: args[0].register, Y: args[1].register, Height: uint8(height)}, err
		}

	case chip8.SkpName:
		if kinds(args, kindRegister) {
			return instruction.SkipIfPressed{X: args[0].register}, nil
		}
	case chip8.SknpName:
		if kinds(args, kindRegister) {
			return instruction.SkipIfNotPressed{X: args[0].register}, nil
		}

	default:
		return nil, errorf(cmd.Pos, "unknown mnemonic '%s'", cmd.Mnemonic)
	}

	return nil, errorf(cmd.Pos, "invalid operands for '%s'", cmd.Mnemonic)
}

func (a *assembler) resolveCompare(cmd *command, equal bool, args []arg) (instruction.Instruction, error) {
	switch {
	case kinds(args, kindRegister, kindNumber):
		value, err := a.number(args[1].op, 0xFF)
		if equal {
			return instruction.SkipEqualLiteral{X: args[0].register, Value: uint8(value)}, err
		}
		return instruction.SkipNotEqualLiteral{X: args[0].register, Value: uint8(value)}, err

	case kinds(args, kindRegister, kindRegister):
		if equal {
			return instruction.SkipEqual{X: args[0].register, Y: args[1].register}, nil
		}
		return instruction.SkipNotEqual{X: args[0].register, Y: args[1].register}, nil
	}
	return nil, errorf(cmd.Pos, "invalid operands for '%s'", cmd.Mnemonic)
}

func (a *assembler) resolveLoad(cmd *command, args []arg) (instruction.Instruction, error) {
	switch {
	case kinds(args, kindRegister, kindNumber):
		value, err := a.number(args[1].op, 0xFF)
		return instruction.SetLiteral{X: args[0].register, Value: uint8(value)}, err
	case kinds(args, kindRegister, kindRegister):
		return instruction.Set{X: args[0].register, Y: args[1].register}, nil
	case kinds(args, kindIndex, kindNumber):
		addr, err := a.number(args[1].op, 0xFFF)
		return instruction.SetIndex{Address: uint16(addr)}, err
	case kinds(args, kindRegister, kindDelay):
		return instruction.GetDelay{X: args[0].register}, nil
	case kinds(args, kindRegister, kindKey):
		return instruction.WaitKey{X: args[0].register}, nil
	case kinds(args, kindDelay, kindRegister):
		return instruction.SetDelay{X: args[1].register}, nil
	case kinds(args, kindSound, kindRegister):
		return instruction.SetSound{X: args[1].register}, nil
	case kinds(args, kindFont, kindRegister):
		return instruction.FontCharacter{X: args[1].register}, nil
	case kinds(args, kindDecimal, kindRegister):
		return instruction.BCD{X: args[1].register}, nil
	case kinds(args, kindIndirect, kindRegister):
		return instruction.StoreRegisters{X: args[1].register}, nil
	case kinds(args, kindRegister, kindIndirect):
		return instruction.LoadRegisters{X: args[0].register}, nil
	}
	return nil, errorf(cmd.Pos, "invalid operands for '%s'", cmd.Mnemonic)
}

func registerOperation(name string, x, y uint8) instruction.Instruction {
	switch name {
	case chip8.OrName:
		return instruction.Or{X: x, Y: y}
	case chip8.AndName:
		return instruction.And{X: x, Y: y}
	case chip8.XorName:
		return instruction.Xor{X: x, Y: y}
	case chip8.SubName:
		return instruction.Sub{X: x, Y: y}
	default:
		return instruction.SubReverse{X: x, Y: y}
	}
}
