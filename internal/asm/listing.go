package asm

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
)

// ListingOptions of the disassembly listing.
type ListingOptions struct {
	OffsetComments bool
}

// Disassemble writes a listing of the program image that can be assembled
// again to the same image. Words that do not decode are written as data,
// instructions following a skip are indented.
func Disassemble(w io.Writer, image []byte, options ListingOptions) error {
	if _, err := fmt.Fprintf(w, ".org $%03X\n", machine.ProgramStart); err != nil {
		return fmt.Errorf("writing origin: %w", err)
	}

	var conditional bool
	for offset := 0; offset < len(image); offset += instruction.Size {
		address := machine.ProgramStart + offset
		indent := "  "
		if conditional {
			indent = "    "
		}
		conditional = false

		var line string
		if offset+1 < len(image) {
			word := uint16(image[offset])<<8 | uint16(image[offset+1])
			if ins, err := instruction.Decode(word); err == nil {
				line = ins.String()
				conditional = instruction.IsSkip(ins)
			} else {
				line = fmt.Sprintf(".byte $%02X, $%02X", image[offset], image[offset+1])
			}
		} else {
			line = fmt.Sprintf(".byte $%02X", image[offset])
		}

		if options.OffsetComments {
			line = fmt.Sprintf("%-24s ; $%03X", line, address)
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, line); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}
