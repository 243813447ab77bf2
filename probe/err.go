package probe

import (
	"errors"

	"github.com/ezrec/crt/translate"
)

var f = translate.From

var (
	ErrPeriod = errors.New(f("sample period must be positive"))
)

// ErrExpression indicates a sample expression that cannot be used.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("sample $(%v) %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

// ErrNotBool indicates a sample expression that did not yield a boolean.
type ErrNotBool string

func (err ErrNotBool) Error() string {
	return f("result is %v, not bool", string(err))
}
