package cpu

import (
	"fmt"
	"strings"
)

// Instruction is a single decoded machine instruction.
type Instruction struct {
	Op Opcode
	A  int64
	B  int64
	C  int64
}

// String returns the source text of the instruction.
func (ins Instruction) String() string {
	return fmt.Sprintf("%v %d %d %d", ins.Op, ins.A, ins.B, ins.C)
}

// Validate checks that every register operand is inside the register bank.
func (ins Instruction) Validate() (err error) {
	if !ins.Op.Valid() {
		err = ErrOpcode(ins.Op)
		return
	}

	a, b := ins.Op.Operands()
	for _, arg := range []struct {
		kind  Operand
		value int64
	}{
		{a, ins.A},
		{b, ins.B},
		{ARG_REG, ins.C},
	} {
		if arg.kind != ARG_REG {
			continue
		}
		if arg.value < 0 || arg.value >= REGISTER_COUNT {
			err = ErrRegister(arg.value)
			return
		}
	}

	return
}

// Program is a parsed program: the ip register directive and its instructions.
type Program struct {
	IpRegister   int
	Instructions []Instruction
}

// Validate checks the directive and all instructions before execution.
func (prog *Program) Validate() (err error) {
	if prog.IpRegister < 0 || prog.IpRegister >= REGISTER_COUNT {
		err = ErrRegister(prog.IpRegister)
		return
	}

	for ip, ins := range prog.Instructions {
		err = ins.Validate()
		if err != nil {
			err = &ErrInstruction{Ip: ip, Instruction: ins, Err: err}
			return
		}
	}

	return
}

// LineNo returns the source line of the instruction at ip, or 0 if
// ip is outside of the program.
func (prog *Program) LineNo(ip int) int {
	if ip < 0 || ip >= len(prog.Instructions) {
		return 0
	}

	// Line 1 is the directive.
	return ip + 2
}

// String returns the program as parseable source text.
func (prog *Program) String() string {
	var text strings.Builder

	fmt.Fprintf(&text, "#ip %d\n", prog.IpRegister)
	for _, ins := range prog.Instructions {
		text.WriteString(ins.String())
		text.WriteByte('\n')
	}

	return text.String()
}
