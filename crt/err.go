package crt

import (
	"errors"

	"github.com/ezrec/crt/translate"
)

var f = translate.From

var (
	ErrScreenOverflow = errors.New(f("screen overflow"))
	ErrScreenInvalid  = errors.New(f("screen dimensions invalid"))
)

// ErrScreenSize indicates a pixel buffer that does not fill the screen exactly.
type ErrScreenSize struct {
	Pixels int
	Width  int
	Height int
}

func (err ErrScreenSize) Error() string {
	return f("%d pixels do not fill a %dx%d screen", err.Pixels, err.Width, err.Height)
}
