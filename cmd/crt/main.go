// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/crt/config"
	"github.com/ezrec/crt/cpu"
	"github.com/ezrec/crt/emulator"
)

// assemble reads the instruction listing named by the configuration.
func assemble(cfg *config.Config) (prog *cpu.Program, err error) {
	inf, err := os.Open(cfg.Input)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{
		Verbose: cfg.Verbose,
		Strict:  cfg.Strict,
		Lenient: cfg.Lenient,
	}

	prog, err = asm.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", cfg.Input, err)
	}

	return
}

// signalStrength runs the program and returns the sampled checksum.
func signalStrength(cfg *config.Config, prog *cpu.Program) (sum int, err error) {
	cs, err := cfg.NewChecksum()
	if err != nil {
		return
	}

	emu := emulator.NewEmulator(prog)
	emu.Verbose = cfg.Verbose

	err = emu.Run(cs)
	if err != nil {
		return
	}

	sum = cs.Sum
	return
}

// raster runs the program and renders the CRT image.
func raster(cfg *config.Config, prog *cpu.Program) (image []byte, err error) {
	screen := cfg.NewScreen()

	emu := emulator.NewEmulator(prog)
	emu.Verbose = cfg.Verbose

	err = emu.Run(screen)
	if err != nil {
		return
	}

	buf := &bytes.Buffer{}
	err = screen.Render(buf)
	if err != nil {
		return
	}

	image = buf.Bytes()
	return
}

// run solves both parts, writing each answer as soon as it is complete.
func run(cfg *config.Config, w io.Writer) (err error) {
	prog, err := assemble(cfg)
	if err != nil {
		return
	}

	sum, err := signalStrength(cfg, prog)
	if err != nil {
		return
	}
	_, err = fmt.Fprintf(w, "ans1 %d\n", sum)
	if err != nil {
		return
	}

	image, err := raster(cfg, prog)
	if err != nil {
		return
	}
	_, err = fmt.Fprintln(w, "ans2")
	if err != nil {
		return
	}
	_, err = w.Write(image)

	return
}

func main() {
	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		err := out.Flush()
		if err != nil {
			log.Printf("%v: stdout: %v", os.Args[0], err)
		}
	})

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		log.Printf("%v: %v", os.Args[0], err)
		atexit.Exit(1)
	}

	err = run(cfg, out)
	if err != nil {
		log.Printf("%v: %v", os.Args[0], err)
		atexit.Exit(1)
	}

	// A failed flush is sticky; the exit handler reports it.
	if out.Flush() != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
