// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats diagnostic messages for the user's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// Fallback is the language used when no user locale can be determined.
const Fallback = "en-US"

var printer *message.Printer

func init() {
	printer = NewPrinter()
}

// Locales returns the user's preferred locales, or the fallback locale.
func Locales() []string {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("crt: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{Fallback}
	}

	return locales
}

// NewPrinter creates a message printer matched to the user's locales.
func NewPrinter() *message.Printer {
	return message.NewPrinter(message.MatchLanguage(Locales()...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
