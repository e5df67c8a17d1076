package cpu

import (
	"github.com/ezrec/ipvm/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrRegisterInvalid = translate.Error("register invalid")
	ErrOpcodeInvalid   = translate.Error("opcode invalid")

	// Parser errors
	ErrDirectiveMissing  = translate.Error("#ip directive missing")
	ErrDirectiveSyntax   = translate.Error("#ip directive syntax")
	ErrInstructionSyntax = translate.Error("instruction syntax")
	ErrProgramEmpty      = translate.Error("no instructions")
)

// ErrRegister is a register index outside of the register bank.
type ErrRegister int64

func (er ErrRegister) Error() string {
	return f("register %d invalid", int64(er))
}

func (er ErrRegister) Is(err error) bool {
	return err == ErrRegisterInvalid
}

// ErrOpcode is an opcode outside of the instruction set.
type ErrOpcode Opcode

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v", Opcode(eo).String())
}

func (eo ErrOpcode) Is(err error) bool {
	return err == ErrOpcodeInvalid
}

type ErrOpcodeUnknown string

func (err ErrOpcodeUnknown) Error() string {
	return f("'%v' is not an opcode", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrInstruction locates an instruction that cannot be executed.
type ErrInstruction struct {
	Ip          int
	Instruction Instruction
	Err         error
}

func (err *ErrInstruction) Error() string {
	return f("ip %d '%v' %v", err.Ip, err.Instruction, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
