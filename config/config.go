// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config handles crt.toml run configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/crt/crt"
	"github.com/ezrec/crt/probe"
)

const (
	DefaultFile  = "crt.toml" // Configuration file looked for in the working directory.
	DefaultInput = "../input" // Instruction listing.
)

// Config is a crt.toml run configuration.
type Config struct {
	Input   string `toml:"input"`   // Path to the instruction listing.
	Verbose bool   `toml:"verbose"` // Enables verbose logging.
	Strict  bool   `toml:"strict"`  // Rejects unknown instructions.
	Lenient bool   `toml:"lenient"` // Allows ';' comments and free spacing in the listing.

	Checksum Checksum `toml:"checksum"`
	Screen   Screen   `toml:"screen"`
}

// Checksum configures the signal strength probe.
type Checksum struct {
	Offset int    `toml:"offset"`
	Period int    `toml:"period"`
	Expr   string `toml:"expr"` // Starlark predicate of cycle and x; overrides offset and period.
}

// Screen configures the CRT.
type Screen struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Lit    string `toml:"lit"`
	Dark   string `toml:"dark"`
	Strict bool   `toml:"strict"` // Requires the program to fill the screen exactly.
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input: DefaultInput,
		Checksum: Checksum{
			Offset: probe.PERIODIC_OFFSET,
			Period: probe.PERIODIC_PERIOD,
		},
		Screen: Screen{
			Width:  crt.SCREEN_WIDTH,
			Height: crt.SCREEN_HEIGHT,
			Lit:    string(crt.PIXEL_LIT),
			Dark:   string(crt.PIXEL_DARK),
		},
	}
}

// Parse decodes TOML on top of the defaults.
func Parse(data []byte) (cfg *Config, err error) {
	cfg = Default()

	_, err = toml.Decode(string(data), cfg)
	if err != nil {
		cfg = nil
		err = &ErrConfig{Err: err}
		return
	}

	err = cfg.Validate()
	if err != nil {
		cfg = nil
	}

	return
}

// Load reads a configuration file. A missing file yields the defaults.
func Load(path string) (cfg *Config, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		err = nil
		return
	}
	if err != nil {
		return
	}

	cfg, err = Parse(data)
	if err != nil {
		var ec *ErrConfig
		if errors.As(err, &ec) {
			ec.Path = path
		}
	}

	return
}

// Validate checks the configuration values.
func (cfg *Config) Validate() (err error) {
	switch {
	case len(cfg.Input) == 0:
		err = ErrInputMissing
	case cfg.Checksum.Expr == "" && cfg.Checksum.Period <= 0:
		err = probe.ErrPeriod
	case cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0:
		err = crt.ErrScreenInvalid
	case utf8.RuneCountInString(cfg.Screen.Lit) != 1:
		err = ErrGlyph(cfg.Screen.Lit)
	case utf8.RuneCountInString(cfg.Screen.Dark) != 1:
		err = ErrGlyph(cfg.Screen.Dark)
	}

	if err != nil {
		err = &ErrConfig{Err: err}
	}

	return
}

// Sampler returns the checksum sampler selected by the configuration.
func (cfg *Config) Sampler() (sampler probe.Sampler, err error) {
	if len(cfg.Checksum.Expr) != 0 {
		var expr *probe.Expr
		expr, err = probe.NewExpr(cfg.Checksum.Expr)
		if err != nil {
			return
		}
		sampler = expr
		return
	}

	sampler = probe.Periodic{Offset: cfg.Checksum.Offset, Period: cfg.Checksum.Period}
	return
}

// NewChecksum creates the checksum probe described by the configuration.
func (cfg *Config) NewChecksum() (cs *probe.Checksum, err error) {
	sampler, err := cfg.Sampler()
	if err != nil {
		return
	}

	cs = &probe.Checksum{Sampler: sampler}
	return
}

// NewScreen creates the screen described by the configuration.
func (cfg *Config) NewScreen() (s *crt.Screen) {
	s = crt.NewScreen(cfg.Screen.Width, cfg.Screen.Height)
	s.Strict = cfg.Screen.Strict

	if r, size := utf8.DecodeRuneInString(cfg.Screen.Lit); size > 0 {
		s.Lit = r
	}
	if r, size := utf8.DecodeRuneInString(cfg.Screen.Dark); size > 0 {
		s.Dark = r
	}

	return
}
