// Package runner drives a CHIP-8 machine in real time. It paces instruction
// execution and the 60 Hz timers, stops at breakpoints and cycle limits and
// hands display updates to a renderer.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// TimerHz is the fixed rate of the delay and sound timers.
const TimerHz = 60

// ErrBreakpoint is returned by Run when the program counter reaches a breakpoint.
var ErrBreakpoint = errors.New("breakpoint reached")

// Renderer presents the display after it changed.
type Renderer interface {
	Render(display [machine.DisplayHeight][machine.DisplayWidth]bool) error
}

// Options of the runner.
type Options struct {
	CPUHz       int      // instructions per second
	MaxCycles   uint64   // stop after this many executed instructions, 0 is unlimited
	Breakpoints []uint16 // addresses to stop at before executing them
	Trace       bool     // log every executed instruction at debug level
}

// Runner executes a loaded machine.
type Runner struct {
	logger   *log.Logger
	machine  *machine.Machine
	renderer Renderer
	options  Options

	breakpoints set.Set[uint16]
	stoppedAt   int // address of the last breakpoint hit, -1 if none
	sounding    bool
}

// New returns a runner for the machine. The renderer is optional.
func New(logger *log.Logger, m *machine.Machine, renderer Renderer, options Options) *Runner {
	breakpoints := set.New[uint16]()
	for _, address := range options.Breakpoints {
		breakpoints.Add(address)
	}

	return &Runner{
		logger:      logger,
		machine:     m,
		renderer:    renderer,
		options:     options,
		breakpoints: breakpoints,
		stoppedAt:   -1,
	}
}

// Run executes instructions at the configured rate until the context is
// cancelled, a breakpoint or the cycle limit is reached or the machine
// faults. Reaching the cycle limit is not an error. Run can be called again
// after a breakpoint to continue the execution.
func (r *Runner) Run(ctx context.Context) error {
	if r.options.CPUHz <= 0 {
		return fmt.Errorf("invalid instruction rate %d", r.options.CPUHz)
	}

	cpu := time.NewTicker(time.Second / time.Duration(r.options.CPUHz))
	defer cpu.Stop()
	timers := time.NewTicker(time.Second / TimerHz)
	defer timers.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-timers.C:
			r.TickTimers()

		case <-cpu.C:
			if r.cycleLimitReached() {
				r.logger.Info("Cycle limit reached", log.Int("cycles", int(r.machine.Cycles())))
				return nil
			}
			if err := r.checkBreakpoint(); err != nil {
				return err
			}
			if err := r.Step(); err != nil {
				return err
			}
		}
	}
}

// Step executes a single instruction and renders the display if it changed.
func (r *Runner) Step() error {
	address := r.machine.PC()
	if r.options.Trace {
		r.trace(address)
	}

	if err := r.machine.Tick(); err != nil {
		return fmt.Errorf("executing instruction: %w", err)
	}

	if r.stoppedAt >= 0 && int(r.machine.PC()) != r.stoppedAt {
		r.stoppedAt = -1
	}

	r.updateSound()
	return r.render()
}

// TickTimers decrements the machine timers once.
func (r *Runner) TickTimers() {
	r.machine.TickTimers()
	r.updateSound()
}

func (r *Runner) cycleLimitReached() bool {
	return r.options.MaxCycles > 0 && r.machine.Cycles() >= r.options.MaxCycles
}

// checkBreakpoint stops at a breakpoint address once, a following call at
// the same address continues.
func (r *Runner) checkBreakpoint() error {
	address := r.machine.PC()
	if !r.breakpoints.Contains(address) || int(address) == r.stoppedAt {
		return nil
	}

	r.stoppedAt = int(address)
	r.logger.Info("Breakpoint reached", log.Hex("address", address))
	return fmt.Errorf("%w at $%03X", ErrBreakpoint, address)
}

func (r *Runner) trace(address uint16) {
	word, err := r.machine.Fetch()
	if err != nil {
		return
	}

	text := "(unknown)"
	if ins, err := instruction.Decode(word); err == nil {
		text = ins.String()
	}
	r.logger.Debug("Execute",
		log.Hex("address", address),
		log.Hex("word", word),
		log.String("instruction", text))
}

// updateSound logs changes of the sound state, the sound is on while the
// sound timer is not zero.
func (r *Runner) updateSound() {
	sounding := r.machine.SoundTimer() > 0
	if sounding == r.sounding {
		return
	}

	r.sounding = sounding
	if sounding {
		r.logger.Debug("Sound started", log.Uint8("timer", r.machine.SoundTimer()))
	} else {
		r.logger.Debug("Sound stopped")
	}
}

func (r *Runner) render() error {
	if !r.machine.ConsumeDisplayUpdate() || r.renderer == nil {
		return nil
	}
	if err := r.renderer.Render(r.machine.Display()); err != nil {
		return fmt.Errorf("rendering display: %w", err)
	}
	return nil
}
