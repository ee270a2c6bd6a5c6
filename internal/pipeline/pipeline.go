// Package pipeline orchestrates the interpreter workflow stages.
package pipeline

import (
	"context"
	"fmt"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates loading and running a program.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new interpreter pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Prepare detects the input format, loads the program and returns a machine
// configured with the selected quirks and the given keypad.
func (p *Pipeline) Prepare(opts options.Program, keypad machine.Keypad) (*machine.Machine, error) {
	// Detect input format
	format := p.detector.Detect(opts)

	// Load program image
	image, err := p.loader.Load(opts, format)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	quirks, err := config.CreateQuirks(opts.Quirks)
	if err != nil {
		return nil, fmt.Errorf("configuring quirks: %w", err)
	}

	m := machine.New(
		machine.WithQuirks(quirks),
		machine.WithKeypad(keypad),
	)
	if err := m.Load(image); err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	p.printInfo(opts, format, len(image), quirks)
	return m, nil
}

// Execute prepares the machine and runs it until it stops. The machine is
// returned also on a run error to allow inspecting its final state.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, keypad machine.Keypad,
	renderer runner.Renderer) (*machine.Machine, error) {

	m, err := p.Prepare(opts, keypad)
	if err != nil {
		return nil, err
	}

	r := runner.New(p.logger, m, renderer, runner.Options{
		CPUHz:       opts.CPUHz,
		MaxCycles:   opts.MaxCycles,
		Breakpoints: opts.Breakpoints,
		Trace:       opts.Trace,
	})
	if err := r.Run(ctx); err != nil {
		return m, fmt.Errorf("running program: %w", err)
	}
	return m, nil
}

// printInfo prints information about the program being run.
func (p *Pipeline) printInfo(opts options.Program, format options.Format, size int, quirks machine.Quirks) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running CHIP-8 program",
		log.String("file", opts.Input),
		log.Stringer("format", format),
		log.Int("size", size),
		log.String("profile", opts.Profile),
	)
	p.logger.Debug("Quirks",
		log.Stringer("shift", quirks.Shift),
		log.Stringer("jump", quirks.Jump),
		log.Stringer("index_flag", quirks.IndexFlag),
		log.Stringer("index_commit", quirks.IndexCommit),
		log.Stringer("memory", quirks.Memory),
		log.String("vf_reset", fmt.Sprint(quirks.VFReset)),
		log.String("increment_index", fmt.Sprint(quirks.IncrementIndex)),
		log.Int("stack_depth", quirks.StackDepth),
	)
}
