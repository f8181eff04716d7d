// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/ooasm/emulator"
	"github.com/ezrec/ooasm/translate"
)

func main() {
	var compile string
	var capacity uint
	var listing bool
	var lang string
	var verbose bool
	defines := map[string]string{}

	flag.StringVar(&compile, "c", "-", ".ooasm file to run")
	flag.UintVar(&capacity, "m", emulator.MEMORY_SIZE, "Memory size, in cells")
	flag.BoolVar(&listing, "s", false, "Print the assembled listing, do not execute")
	flag.StringVar(&lang, "l", "", "Message language (BCP 47 tag)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "Predefine an equate, NAME=VALUE", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("expected NAME=VALUE, got %q", arg)
		}
		defines[name] = value
		return nil
	})

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

	if capacity == 0 {
		log.Fatalf("%v: memory size must be positive", os.Args[0])
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

	emu := emulator.NewEmulator(capacity)
	emu.Verbose = verbose
	for name, value := range defines {
		emu.Define(name, value)
	}

	err := emu.Assemble(input)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if listing {
		fmt.Print(emu.Listing.String())
		return
	}

	err = emu.Run()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	err = emu.WriteDump(os.Stdout)
	if err == nil {
		_, err = fmt.Println()
	}
	if err != nil {
		log.Fatal(err)
	}
}
