package emulator

import (
	"github.com/ezrec/crt/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Cycle  int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d cycle %d %v", err.LineNo, err.Cycle, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
