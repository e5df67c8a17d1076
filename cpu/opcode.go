package cpu

// Opcode selects one of the sixteen machine operations.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADDR = Opcode(0)  // addr
	OP_ADDI = Opcode(1)  // addi
	OP_MULR = Opcode(2)  // mulr
	OP_MULI = Opcode(3)  // muli
	OP_BANR = Opcode(4)  // banr
	OP_BANI = Opcode(5)  // bani
	OP_BORR = Opcode(6)  // borr
	OP_BORI = Opcode(7)  // bori
	OP_SETR = Opcode(8)  // setr
	OP_SETI = Opcode(9)  // seti
	OP_GTIR = Opcode(10) // gtir
	OP_GTRI = Opcode(11) // gtri
	OP_GTRR = Opcode(12) // gtrr
	OP_EQIR = Opcode(13) // eqir
	OP_EQRI = Opcode(14) // eqri
	OP_EQRR = Opcode(15) // eqrr

	OPCODE_COUNT = 16 // Number of opcodes.
)

// Operand is how an instruction argument is decoded.
type Operand int

//go:generate go tool stringer -linecomment -type=Operand
const (
	ARG_REG  = Operand(0) // r
	ARG_IMM  = Operand(1) // i
	ARG_NONE = Operand(2) // -
)

// operandMap is the decode of the A and B arguments, by opcode.
// C is always a register.
var operandMap = [OPCODE_COUNT][2]Operand{
	OP_ADDR: {ARG_REG, ARG_REG},
	OP_ADDI: {ARG_REG, ARG_IMM},
	OP_MULR: {ARG_REG, ARG_REG},
	OP_MULI: {ARG_REG, ARG_IMM},
	OP_BANR: {ARG_REG, ARG_REG},
	OP_BANI: {ARG_REG, ARG_IMM},
	OP_BORR: {ARG_REG, ARG_REG},
	OP_BORI: {ARG_REG, ARG_IMM},
	OP_SETR: {ARG_REG, ARG_NONE},
	OP_SETI: {ARG_IMM, ARG_NONE},
	OP_GTIR: {ARG_IMM, ARG_REG},
	OP_GTRI: {ARG_REG, ARG_IMM},
	OP_GTRR: {ARG_REG, ARG_REG},
	OP_EQIR: {ARG_IMM, ARG_REG},
	OP_EQRI: {ARG_REG, ARG_IMM},
	OP_EQRR: {ARG_REG, ARG_REG},
}

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = func() map[string]Opcode {
	ops := make(map[string]Opcode, OPCODE_COUNT)
	for op := range Opcode(OPCODE_COUNT) {
		ops[op.String()] = op
	}
	return ops
}()

// ParseOpcode returns the opcode for an exact, case-sensitive mnemonic.
func ParseOpcode(word string) (op Opcode, err error) {
	op, ok := opcodeMap[word]
	if !ok {
		err = ErrOpcodeUnknown(word)
	}

	return
}

// Valid returns true if the opcode is one of the sixteen defined operations.
func (op Opcode) Valid() bool {
	return op >= 0 && op < OPCODE_COUNT
}

// Operands returns the decode of the A and B arguments.
func (op Opcode) Operands() (a, b Operand) {
	if !op.Valid() {
		panic(ErrOpcode(op))
	}

	args := operandMap[op]
	return args[0], args[1]
}

// Eval computes the value written to register C from the decoded A and B.
func (op Opcode) Eval(a, b int64) (value int64) {
	switch op {
	case OP_ADDR, OP_ADDI:
		value = a + b
	case OP_MULR, OP_MULI:
		value = a * b
	case OP_BANR, OP_BANI:
		value = a & b
	case OP_BORR, OP_BORI:
		value = a | b
	case OP_SETR, OP_SETI:
		value = a
	case OP_GTIR, OP_GTRI, OP_GTRR:
		value = boolValue(a > b)
	case OP_EQIR, OP_EQRI, OP_EQRR:
		value = boolValue(a == b)
	default:
		panic(ErrOpcode(op))
	}

	return
}

func boolValue(cond bool) int64 {
	if cond {
		return 1
	}
	return 0
}
