// Package main implements the main entry point for the CHIP-8 interpreter
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/input"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/term"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			config.PrintBanner(logger, opts.Quiet, "retrochip8", version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	config.PrintBanner(logger, opts.Quiet, "retrochip8", version, commit, date)

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C, Esc) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Execution cancelled")
			return
		}
		logger.Error("Running program failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := input.New()
	var renderer runner.Renderer

	if !opts.Headless {
		screen, stop, err := startTerminal(logger, opts, keys, cancel)
		if err != nil {
			return err
		}
		defer stop()
		renderer = screen
	}

	m, err := pipeline.New(logger).Execute(ctx, opts, keys, renderer)
	if m != nil {
		printState(logger, m)
	}
	if errors.Is(err, runner.ErrBreakpoint) {
		return nil
	}
	return err
}

// startTerminal switches the terminal to raw mode, starts the keyboard reader
// and returns the display renderer and a function that restores the terminal.
func startTerminal(logger *log.Logger, opts options.Program, keys *input.State,
	cancel context.CancelFunc) (*term.Renderer, func(), error) {

	terminal, err := term.EnableRawMode(int(os.Stdin.Fd()))
	if err != nil {
		return nil, nil, fmt.Errorf("initializing terminal, use -headless to run without one: %w", err)
	}

	keyboard := term.NewKeyboard(keys, opts.KeyHold, cancel)
	go func() {
		if err := keyboard.Run(os.Stdin); err != nil {
			logger.Error("Keyboard input failed", log.Err(err))
			cancel()
		}
	}()

	screen := term.NewRenderer(os.Stdout)
	if err := screen.Start(); err != nil {
		_ = terminal.Restore()
		return nil, nil, err
	}

	stop := func() {
		keyboard.Stop()
		_ = screen.Stop()
		_ = terminal.Restore()
	}
	return screen, stop, nil
}

// printState logs the final machine state at debug level.
func printState(logger *log.Logger, m *machine.Machine) {
	registers := m.Registers()
	values := make([]string, len(registers))
	for i, value := range registers {
		values[i] = fmt.Sprintf("V%X=%02X", i, value)
	}

	logger.Debug("Machine state",
		log.Hex("pc", m.PC()),
		log.Hex("index", m.Index()),
		log.String("registers", strings.Join(values, " ")),
		log.Int("stack_depth", len(m.Stack())),
		log.Uint8("delay", m.DelayTimer()),
		log.Uint8("sound", m.SoundTimer()),
		log.Int("cycles", int(m.Cycles())),
	)
}
