package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecute(t *testing.T) {
	assert := assert.New(t)

	base := Registers{7, 3, -4, 0b1100, 0b1010, 0}

	table := [](struct {
		name  string
		ins   Instruction
		value int64
	}){
		{"addr", Instruction{OP_ADDR, 0, 1, 2}, 10},
		{"addi", Instruction{OP_ADDI, 0, 5, 2}, 12},
		{"addi_neg", Instruction{OP_ADDI, 2, 1, 0}, -3},
		{"mulr", Instruction{OP_MULR, 0, 1, 2}, 21},
		{"muli", Instruction{OP_MULI, 2, 3, 0}, -12},
		{"banr", Instruction{OP_BANR, 3, 4, 0}, 0b1000},
		{"bani", Instruction{OP_BANI, 3, 6, 0}, 0b0100},
		{"borr", Instruction{OP_BORR, 3, 4, 0}, 0b1110},
		{"bori", Instruction{OP_BORI, 3, 1, 0}, 0b1101},
		{"setr", Instruction{OP_SETR, 1, 99, 0}, 3},
		{"seti", Instruction{OP_SETI, 42, 99, 0}, 42},
		{"gtir_true", Instruction{OP_GTIR, 8, 0, 2}, 1},
		{"gtir_false", Instruction{OP_GTIR, 7, 0, 2}, 0},
		{"gtri_true", Instruction{OP_GTRI, 0, 6, 2}, 1},
		{"gtri_false", Instruction{OP_GTRI, 0, 7, 2}, 0},
		{"gtrr_true", Instruction{OP_GTRR, 0, 1, 2}, 1},
		{"gtrr_false", Instruction{OP_GTRR, 1, 0, 2}, 0},
		{"eqir_true", Instruction{OP_EQIR, 7, 0, 2}, 1},
		{"eqir_false", Instruction{OP_EQIR, 6, 0, 2}, 0},
		{"eqri_true", Instruction{OP_EQRI, 1, 3, 2}, 1},
		{"eqri_false", Instruction{OP_EQRI, 1, 4, 2}, 0},
		{"eqrr_true", Instruction{OP_EQRR, 0, 0, 2}, 1},
		{"eqrr_false", Instruction{OP_EQRR, 0, 1, 2}, 0},
	}

	for _, entry := range table {
		cpu := NewCpu()
		cpu.Register = base
		cpu.IpRegister = 5

		cpu.Execute(entry.ins)

		expected := base
		expected[entry.ins.C] = entry.value
		expected[5] = 1

		assert.Equal(expected, cpu.Registers(), entry.name)
		assert.Equal(1, cpu.Ip, entry.name)
		assert.Equal(1, cpu.Ticks, entry.name)
	}
}

func TestSyncRule(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseString("#ip 3\naddi 0 1 0\naddi 0 1 0\naddi 0 1 0\n")
	assert.NoError(err)

	cpu := NewCpu()
	cpu.Load(prog.IpRegister, prog.Instructions)

	for n := range 3 {
		before := cpu.Ip
		assert.True(cpu.Tick())
		assert.Equal(before+1, cpu.Ip)
		assert.Equal(int64(cpu.Ip), cpu.Register[3])
		assert.Equal(int64(n+1), cpu.Register[0])
	}

	assert.False(cpu.Tick())
}

func TestSyncRuleJump(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Load(1, []Instruction{
		{OP_SETI, 3, 0, 1}, // jump to 4
		{OP_SETI, 1, 0, 0},
		{OP_SETI, 2, 0, 0},
		{OP_SETI, 3, 0, 0},
		{OP_ADDI, 1, 10, 2}, // r2 = ip + 10
	})

	assert.True(cpu.Tick())
	assert.Equal(4, cpu.Ip)
	assert.Equal(int64(4), cpu.Register[1])

	assert.True(cpu.Tick())
	assert.Equal(Registers{0, 5, 14, 0, 0, 0}, cpu.Registers())

	assert.False(cpu.Tick())
	assert.True(cpu.Halted())
}

func TestGolden(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name      string
		program   []string
		ip        int
		ticks     int
		registers Registers
	}){
		{"straight", []string{
			"#ip 0",
			"seti 5 0 1",
			"addi 1 1 1",
			"addr 1 1 1",
			"seti 8 0 4",
			"seti 9 0 5",
		}, 5, 5, Registers{5, 12, 0, 0, 8, 9}},
		{"jumps", []string{
			"#ip 0",
			"seti 5 0 1",
			"seti 6 0 2",
			"addi 0 1 0",
			"addr 1 2 3",
			"setr 1 0 0",
			"seti 8 0 4",
			"seti 9 0 5",
		}, 7, 5, Registers{7, 5, 6, 0, 0, 9}},
	}

	for _, entry := range table {
		prog, err := ParseString(strings.Join(entry.program, "\n"))
		if !assert.NoError(err, entry.name) {
			continue
		}

		cpu := NewCpu()
		cpu.Load(prog.IpRegister, prog.Instructions)
		for cpu.Tick() {
		}

		assert.Equal(entry.ip, cpu.Ip, entry.name)
		assert.Equal(entry.ticks, cpu.Ticks, entry.name)
		assert.Equal(entry.registers, cpu.Registers(), entry.name)
	}
}

func TestHalt(t *testing.T) {
	assert := assert.New(t)

	code := []Instruction{{OP_SETI, 1, 0, 1}}

	for _, ip := range []int{-5, -1, 1, 2, 100} {
		cpu := NewCpu()
		cpu.Load(0, code)
		cpu.Ip = ip
		cpu.Register = Registers{1, 2, 3, 4, 5, 6}

		assert.True(cpu.Halted(), ip)
		assert.False(cpu.Tick(), ip)
		assert.False(cpu.Tick(), ip)
		assert.Equal(Registers{1, 2, 3, 4, 5, 6}, cpu.Registers(), ip)
		assert.Equal(ip, cpu.Ip)
		assert.Equal(0, cpu.Ticks)
	}

	// Nothing loaded.
	cpu := NewCpu()
	assert.False(cpu.Tick())
}

func TestLoadReset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Load(2, []Instruction{{OP_SETI, 7, 0, 0}})
	assert.True(cpu.Tick())
	assert.Equal(Registers{7, 0, 1, 0, 0, 0}, cpu.Registers())

	// Load keeps the registers and instruction pointer.
	cpu.Load(0, []Instruction{{OP_SETI, 1, 0, 1}, {OP_SETI, 1, 0, 1}})
	assert.Equal(1, cpu.Ip)
	assert.Equal(0, cpu.IpRegister)
	assert.Equal(Registers{7, 0, 1, 0, 0, 0}, cpu.Registers())

	// The ip register holds 7, so the next tick leaves the program.
	assert.True(cpu.Tick())
	assert.Equal(8, cpu.Ip)
	assert.False(cpu.Tick())

	cpu.Reset()
	assert.Equal(Registers{}, cpu.Registers())
	assert.Equal(0, cpu.Ip)
	assert.Equal(0, cpu.Ticks)
	assert.False(cpu.Tick())
}

func TestDeterminism(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseString(strings.Join([]string{
		"#ip 4",
		"seti 123 0 3",
		"bani 3 456 3",
		"eqri 3 72 3",
		"addr 3 4 4",
		"seti 0 0 4",
		"seti 0 0 3",
		"bori 3 65536 1",
		"muli 1 3 2",
	}, "\n"))
	assert.NoError(err)

	trace := func() (trail []Registers) {
		cpu := NewCpu()
		cpu.Load(prog.IpRegister, prog.Instructions)
		for cpu.Tick() {
			trail = append(trail, cpu.Registers())
		}
		return
	}

	first := trace()
	second := trace()
	assert.NotEmpty(first)
	assert.Equal(first, second)
}

func TestInvalidRegister(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name       string
		ipRegister int
		ins        Instruction
		register   int64
	}){
		{"dst", 0, Instruction{OP_SETI, 1, 0, 6}, 6},
		{"src_a", 0, Instruction{OP_ADDR, -1, 0, 1}, -1},
		{"src_b", 0, Instruction{OP_GTRR, 0, 9, 1}, 9},
		{"ip_register", 6, Instruction{OP_SETI, 1, 0, 1}, 6},
	}

	for _, entry := range table {
		cpu := NewCpu()
		cpu.Load(entry.ipRegister, []Instruction{entry.ins})

		assert.PanicsWithValue(ErrRegister(entry.register), func() { cpu.Tick() }, entry.name)
		assert.Equal(Registers{}, cpu.Registers(), entry.name)
	}

	assert.True(errors.Is(ErrRegister(6), ErrRegisterInvalid))
	assert.Equal("register 6 invalid", ErrRegister(6).Error())
	assert.Equal("register invalid", ErrRegisterInvalid.Error())
	assert.False(errors.Is(ErrRegister(6), ErrOpcodeInvalid))
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.IpRegister = 2
	cpu.Register[2] = 17

	text := cpu.String()
	assert.Contains(text, "   ip: 0\n")
	assert.Contains(text, "  *r2: 17\n")
	assert.Contains(text, "ticks: 0\n")

	assert.Equal("ip= 5 [       5,       12,        0,        0,        8,        9]",
		Registers{5, 12, 0, 0, 8, 9}.Format(5))
}
