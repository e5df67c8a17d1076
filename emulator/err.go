package emulator

import (
	"github.com/ezrec/ipvm/translate"
)

var f = translate.From

var (
	ErrProgramMissing  = translate.Error("no program")
	ErrConditionResult = translate.Error("condition has no result")
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Ip     int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d (ip %d) %v", err.LineNo, err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

type ErrCondition string

func (err ErrCondition) Error() string {
	return f("'%v' is not a valid condition", string(err))
}
