// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/ipvm/cpu"
	"github.com/ezrec/ipvm/emulator"
	"github.com/ezrec/ipvm/translate"
)

func main() {
	var compile string
	var breakpoint string
	var limit int
	var r0 int64
	var list bool
	var yaml bool
	var verbose bool
	var lang string

	flag.StringVar(&compile, "c", "-", "program file to run")
	flag.StringVar(&breakpoint, "b", "", "stop when this condition holds, i.e. 'ip == 28'")
	flag.IntVar(&limit, "n", 0, "stop after this many ticks")
	flag.Int64Var(&r0, "r0", 0, "initial value of register 0")
	flag.BoolVar(&list, "l", false, "list the program, do not execute")
	flag.BoolVar(&yaml, "y", false, "print the final state as YAML")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "message language, i.e. 'en-US'")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
	}

	var input io.Reader = os.Stdin
	if compile != "-" {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()
		input = inf
	}

	parser := &cpu.Parser{Verbose: verbose}
	prog, err := parser.Parse(input)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if list {
		fmt.Print(prog.String())
		return
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.Limit = limit
	emu.Initial[0] = r0

	if len(breakpoint) != 0 {
		emu.Break, err = emulator.NewCondition(breakpoint)
		if err != nil {
			log.Fatal(err)
		}
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	stop, err := emu.Run()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if verbose {
		log.Printf("%v: %v", compile, stop)
	}

	err = writeSnapshot(os.Stdout, emu.Snapshot(), yaml)
	if err != nil {
		log.Fatal(err)
	}
}

// writeSnapshot prints the final state, as YAML or as the text line.
func writeSnapshot(w io.Writer, snap emulator.Snapshot, yaml bool) (err error) {
	if yaml {
		var data []byte
		data, err = snap.YAML()
		if err != nil {
			return
		}
		_, err = w.Write(data)
		return
	}

	_, err = fmt.Fprintln(w, snap.String())
	return
}
