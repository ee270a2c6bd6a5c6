// Package main implements a CHIP-8 assembler and disassembler
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/asm"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	input  string
	output string

	disassemble bool
	verify      bool
	offsets     bool
	quiet       bool
	debug       bool
}

func main() {
	options, err := readArguments(os.Args[1:])
	logger := config.CreateLogger(options.debug, options.quiet)
	if err != nil {
		config.PrintBanner(logger, options.quiet, "chip8asm", version, commit, date)
		fmt.Printf("usage: chip8asm [options] <file to process>\n\n%s\n", err)
		os.Exit(1)
	}

	config.PrintBanner(logger, options.quiet, "chip8asm", version, commit, date)

	if err := processFile(logger, options); err != nil {
		logger.Error("Processing failed", log.Err(err))
		os.Exit(1)
	}
}

func readArguments(args []string) (optionFlags, error) {
	flags := flag.NewFlagSet("chip8asm", flag.ContinueOnError)
	options := optionFlags{}

	flags.BoolVar(&options.disassemble, "d", false, "disassemble a program image instead of assembling a source file")
	flags.StringVar(&options.output, "o", "", "name of the output file, printed on console if no name given for a disassembly")
	flags.BoolVar(&options.offsets, "offsets", false, "output addresses as comments in a disassembly")
	flags.BoolVar(&options.verify, "verify", false, "verify the output by assembling or disassembling it again and comparing it to the input")
	flags.BoolVar(&options.quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&options.debug, "debug", false, "enable debugging options for extended logging")

	var usage bytes.Buffer
	flags.SetOutput(&usage)

	if err := flags.Parse(args); err != nil {
		return options, errors.New(strings.TrimSpace(usage.String()))
	}
	if flags.NArg() != 1 {
		flags.PrintDefaults()
		return options, errors.New(strings.TrimSpace(usage.String()))
	}
	options.input = flags.Arg(0)
	return options, nil
}

func processFile(logger *log.Logger, options optionFlags) error {
	data, err := os.ReadFile(options.input)
	if err != nil {
		return fmt.Errorf("opening file '%s': %w", options.input, err)
	}

	if options.disassemble {
		return disassembleFile(logger, options, data)
	}
	return assembleFile(logger, options, data)
}

func assembleFile(logger *log.Logger, options optionFlags, source []byte) error {
	image, err := asm.Assemble(options.input, string(source))
	if err != nil {
		return fmt.Errorf("assembling: %w", err)
	}
	if len(image) > machine.MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", machine.ErrProgramTooLarge, len(image), machine.MaxProgramSize)
	}

	output := options.output
	if output == "" {
		output = strings.TrimSuffix(options.input, filepath.Ext(options.input)) + ".ch8"
	}
	if err := os.WriteFile(output, image, 0o644); err != nil {
		return fmt.Errorf("writing file '%s': %w", output, err)
	}

	logger.Info("Assembled program",
		log.String("file", output),
		log.Int("size", len(image)))

	if options.verify {
		var listing bytes.Buffer
		if err := asm.Disassemble(&listing, image, asm.ListingOptions{}); err != nil {
			return fmt.Errorf("disassembling for verification: %w", err)
		}
		if err := verifyAssembly(listing.String(), image); err != nil {
			return err
		}
		logger.Info("Output file matched input file")
	}
	return nil
}

func disassembleFile(logger *log.Logger, options optionFlags, image []byte) error {
	var listing bytes.Buffer
	listingOptions := asm.ListingOptions{OffsetComments: options.offsets}
	if err := asm.Disassemble(&listing, image, listingOptions); err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}

	var w io.Writer = os.Stdout
	if options.output != "" {
		f, err := os.Create(options.output)
		if err != nil {
			return fmt.Errorf("creating file '%s': %w", options.output, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	text := listing.String()
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}

	if options.verify {
		if err := verifyAssembly(text, image); err != nil {
			return err
		}
		logger.Info("Output file matched input file")
	}
	return nil
}

// verifyAssembly assembles the listing and compares the result to the image.
func verifyAssembly(listing string, image []byte) error {
	assembled, err := asm.Assemble("verify.asm", listing)
	if err != nil {
		return fmt.Errorf("assembling for verification: %w", err)
	}
	return checkBufferEqual(image, assembled)
}

func checkBufferEqual(input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	firstDiff := -1
	for i := range input {
		if input[i] == output[i] {
			continue
		}
		diffs++
		if firstDiff == -1 {
			firstDiff = i
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches, first at offset %d", diffs, firstDiff)
}
