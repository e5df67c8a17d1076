// Package cpu implements the register machine and program parser for ipvm.
//
// The machine has six signed 64-bit registers (r0-r5) and an instruction
// pointer (IP). One register, chosen by the program's '#ip' directive,
// mirrors the IP: after every instruction the IP is reloaded from that
// register, incremented, and written back. Execution halts when the IP
// leaves the program.
//
// The instruction set is fixed at sixteen opcodes; each writes the result
// of a pure function of its A and B operands to register C.
package cpu
