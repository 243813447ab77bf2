package config

import (
	"errors"

	"github.com/ezrec/crt/translate"
)

var f = translate.From

var (
	ErrInputMissing = errors.New(f("input path missing"))
)

// ErrConfig indicates an unusable configuration.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	if len(err.Path) == 0 {
		return f("config: %v", err.Err)
	}
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// ErrGlyph indicates a pixel glyph that is not a single character.
type ErrGlyph string

func (err ErrGlyph) Error() string {
	return f("glyph '%v' is not a single character", string(err))
}
