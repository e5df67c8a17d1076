// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"
	"log"

	"github.com/ezrec/ipvm/cpu"
)

// Stop is the reason Run returned.
type Stop int

//go:generate go tool stringer -linecomment -type=Stop
const (
	STOP_HALT  = Stop(0) // halt
	STOP_BREAK = Stop(1) // break
	STOP_LIMIT = Stop(2) // limit
)

// Emulator state. CPU + program + run control.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program.

	Initial cpu.Registers // Register values after a reset.
	Break   *Condition    // If set, Run stops after a tick where this holds.
	Limit   int           // If non-zero, Run stops after this many ticks.

	err error // Error that ended the last Steps iteration.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	return
}

// Reset validates the program, then restarts the CPU on it.
func (emu *Emulator) Reset() (err error) {
	if emu.Program == nil {
		err = ErrProgramMissing
		return
	}

	err = emu.Program.Validate()
	if err != nil {
		return
	}

	emu.err = nil
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Cpu.Register = emu.Initial
	emu.Cpu.Load(emu.Program.IpRegister, emu.Program.Instructions)

	if emu.Verbose {
		log.Printf("emulator: reset %v", emu.Cpu.Registers().Format(emu.Cpu.Ip))
	}

	return
}

// LineNo returns the source line number of the next instruction.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	return emu.Program.LineNo(emu.Cpu.Ip)
}

// Snapshot returns a copy of the CPU state.
func (emu *Emulator) Snapshot() Snapshot {
	return NewSnapshot(emu.Cpu)
}

// Tick performs a single tick of the emulator.
//
// An invalid register access, which Reset prevents for unmodified
// programs, is reported as an ErrRuntime instead of a panic.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	ip := emu.Cpu.Ip
	defer func() {
		if r := recover(); r != nil {
			reg, ok := r.(cpu.ErrRegister)
			if !ok {
				panic(r)
			}
			err = &ErrRuntime{LineNo: lineno, Ip: ip, Err: reg}
		}
	}()

	done = !emu.Cpu.Tick()

	return
}

// Run ticks the emulator until the program halts, the break condition
// holds, or the tick limit is reached.
func (emu *Emulator) Run() (stop Stop, err error) {
	for {
		if emu.Limit > 0 && emu.Cpu.Ticks >= emu.Limit {
			stop = STOP_LIMIT
			break
		}

		var done bool
		done, err = emu.Tick()
		if err != nil {
			return
		}
		if done {
			stop = STOP_HALT
			break
		}

		if emu.Break != nil {
			var hit bool
			hit, err = emu.Break.Eval(emu.Cpu)
			if err != nil {
				err = &ErrRuntime{LineNo: emu.LineNo(), Ip: emu.Cpu.Ip, Err: err}
				return
			}
			if hit {
				stop = STOP_BREAK
				break
			}
		}
	}

	if emu.Verbose {
		log.Printf("emulator: %v after %d ticks: %v", stop, emu.Cpu.Ticks, emu.Snapshot())
	}

	return
}

// Err returns the error that ended the last Steps iteration, or nil if
// it ended on a halt or the caller stopped early.
func (emu *Emulator) Err() error {
	return emu.err
}

// Steps returns an iterator that ticks the emulator, yielding the
// instruction pointer and registers after each tick until the program halts.
// When a tick fails the iteration ends and Err reports why.
func (emu *Emulator) Steps() iter.Seq2[int, cpu.Registers] {
	return func(yield func(ip int, regs cpu.Registers) bool) {
		emu.err = nil
		for {
			done, err := emu.Tick()
			if err != nil {
				emu.err = err
				return
			}
			if done {
				return
			}
			if !yield(emu.Cpu.Ip, emu.Cpu.Registers()) {
				return
			}
		}
	}
}
