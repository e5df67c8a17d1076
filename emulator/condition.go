package emulator

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ipvm/cpu"
)

// conditionResult is the global the compiled condition assigns.
const conditionResult = "rc"

// conditionNames are the CPU state names visible to a condition.
var conditionNames = func() map[string]bool {
	names := map[string]bool{
		"ip":    true,
		"ticks": true,
		"r":     true,
	}
	for n := range cpu.REGISTER_COUNT {
		names[fmt.Sprintf("r%d", n)] = true
	}
	return names
}()

// Condition is a Starlark expression over the CPU state, such as
// 'ip == 28' or 'r0 > 10 and ticks < 1000'.
type Condition struct {
	Expr string

	prog *starlark.Program
}

// NewCondition compiles a condition expression. The text must be a single
// expression; statements are rejected.
func NewCondition(expr string) (cond *Condition, err error) {
	opts := syntax.FileOptions{}

	_, err = opts.ParseExpr("condition", expr, 0)
	if err != nil {
		err = errors.Join(ErrCondition(expr), err)
		return
	}

	src := conditionResult + " = " + expr + "\n"

	_, prog, err := starlark.SourceProgramOptions(&opts, "condition", src, func(name string) bool {
		return conditionNames[name]
	})
	if err != nil {
		err = errors.Join(ErrCondition(expr), err)
		return
	}

	cond = &Condition{
		Expr: expr,
		prog: prog,
	}

	return
}

// predeclared builds the Starlark globals for the CPU state.
func predeclared(cp *cpu.Cpu) starlark.StringDict {
	dict := starlark.StringDict{
		"ip":    starlark.MakeInt(cp.Ip),
		"ticks": starlark.MakeInt(cp.Ticks),
	}

	regs := make(starlark.Tuple, len(cp.Register))
	for n, val := range cp.Register {
		regs[n] = starlark.MakeInt64(val)
		dict[fmt.Sprintf("r%d", n)] = regs[n]
	}
	dict["r"] = regs

	return dict
}

// Eval evaluates the condition against the CPU state.
func (cond *Condition) Eval(cp *cpu.Cpu) (ok bool, err error) {
	thread := &starlark.Thread{Name: "condition"}

	globals, err := cond.prog.Init(thread, predeclared(cp))
	if err != nil {
		err = errors.Join(ErrCondition(cond.Expr), err)
		return
	}

	rc, found := globals[conditionResult]
	if !found {
		err = errors.Join(ErrCondition(cond.Expr), ErrConditionResult)
		return
	}

	ok = bool(rc.Truth())

	return
}

// String returns the condition expression.
func (cond *Condition) String() string {
	return cond.Expr
}
