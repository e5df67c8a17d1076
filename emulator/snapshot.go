package emulator

import (
	"gopkg.in/yaml.v3"

	"github.com/ezrec/ipvm/cpu"
)

// Snapshot is a copy of the visible CPU state.
type Snapshot struct {
	Ip         int     `yaml:"ip"`
	IpRegister int     `yaml:"ip_register"`
	Ticks      int     `yaml:"ticks"`
	Registers  []int64 `yaml:"registers,flow"`
}

// NewSnapshot copies the state of a CPU.
func NewSnapshot(cp *cpu.Cpu) Snapshot {
	regs := cp.Registers()

	return Snapshot{
		Ip:         cp.Ip,
		IpRegister: cp.IpRegister,
		Ticks:      cp.Ticks,
		Registers:  regs[:],
	}
}

// String returns the state in the form 'ip=NN [r0, r1, r2, r3, r4, r5]'.
func (snap Snapshot) String() string {
	var regs cpu.Registers
	copy(regs[:], snap.Registers)

	return regs.Format(snap.Ip)
}

// YAML returns the state as a YAML document.
func (snap Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(snap)
}

// ParseSnapshot reads a YAML document written by Snapshot.YAML.
func ParseSnapshot(data []byte) (snap Snapshot, err error) {
	err = yaml.Unmarshal(data, &snap)
	return
}
