package cpu

import (
	"fmt"
	"log"
	"strings"
)

const (
	REGISTER_COUNT = 6 // Size of the register bank.
)

// Registers is the register bank.
type Registers [REGISTER_COUNT]int64

// Cpu is the simulation context for the register machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ip         int       // Current instruction pointer.
	IpRegister int       // Register mirroring the instruction pointer.
	Register   Registers // Register bank.

	Ticks int // Executed instruction counter.

	code []Instruction // Loaded program.
}

// NewCpu creates a new CPU with no program loaded.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("% 5s: %d\n", "ip", cpu.Ip)
	for n, val := range cpu.Register {
		name := fmt.Sprintf("r%d", n)
		if n == cpu.IpRegister {
			name = "*" + name
		}
		text += fmt.Sprintf("% 5s: %d\n", name, val)
	}
	text += fmt.Sprintf("% 5s: %d\n", "ticks", cpu.Ticks)

	return
}

// Reset the CPU state.
// - Clears the registers and instruction pointer.
// - Zeros the tick counter.
// - Unloads the program.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Ip = 0
	cpu.IpRegister = 0
	cpu.Ticks = 0
	cpu.code = nil
}

// Load replaces the program and the ip register binding.
// Registers and the instruction pointer are left as they are.
func (cpu *Cpu) Load(ipRegister int, code []Instruction) {
	if cpu.Verbose {
		log.Printf("cpu: load #ip %d, %d instructions", ipRegister, len(code))
	}

	cpu.IpRegister = ipRegister
	cpu.code = code
}

// Registers returns a copy of the register bank.
func (cpu *Cpu) Registers() Registers {
	return cpu.Register
}

// Halted returns true if the instruction pointer is outside of the program.
func (cpu *Cpu) Halted() bool {
	return cpu.Ip < 0 || cpu.Ip >= len(cpu.code)
}

// Tick executes a single instruction. Returns false, leaving the state
// untouched, once the instruction pointer has left the program.
func (cpu *Cpu) Tick() bool {
	if cpu.Halted() {
		return false
	}

	cpu.Execute(cpu.code[cpu.Ip])

	return true
}

// Execute executes a single instruction, then synchronizes the
// instruction pointer with the ip register.
//
// Panics with an ErrRegister if an operand or the ip register is not
// inside the register bank.
func (cpu *Cpu) Execute(ins Instruction) {
	if cpu.Verbose {
		log.Printf("cpu: %02d: %v", cpu.Ip, ins)
	}

	ipr := cpu.register(int64(cpu.IpRegister))

	a_kind, b_kind := ins.Op.Operands()
	a := cpu.getValue(a_kind, ins.A)
	b := cpu.getValue(b_kind, ins.B)

	cpu.Register[cpu.register(ins.C)] = ins.Op.Eval(a, b)

	cpu.Ip = int(cpu.Register[ipr])
	cpu.Ip++
	cpu.Register[ipr] = int64(cpu.Ip)

	cpu.Ticks++
}

// getValue decodes an operand.
func (cpu *Cpu) getValue(kind Operand, arg int64) (value int64) {
	switch kind {
	case ARG_REG:
		value = cpu.Register[cpu.register(arg)]
	case ARG_IMM:
		value = arg
	case ARG_NONE:
		value = 0
	default:
		panic("unknown operand")
	}

	return
}

// register checks a register index.
func (cpu *Cpu) register(index int64) int {
	if index < 0 || index >= REGISTER_COUNT {
		panic(ErrRegister(index))
	}

	return int(index)
}

// Format returns the state as a single line: ip=NN [r0, r1, r2, r3, r4, r5]
func (regs Registers) Format(ip int) string {
	vals := make([]string, len(regs))
	for n, val := range regs {
		vals[n] = fmt.Sprintf("%8d", val)
	}

	return fmt.Sprintf("ip=%2d [%v]", ip, strings.Join(vals, ", "))
}
