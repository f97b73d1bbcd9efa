package main

import (
	"fmt"
	"log"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/TheOneTwelfth/Quack-Interpreter/pkg/compiler"
	"github.com/TheOneTwelfth/Quack-Interpreter/pkg/utils"
	"github.com/TheOneTwelfth/Quack-Interpreter/pkg/vm"
)

// Environment knobs:
//
//	QUACK_SHOW_PROGRAM  print the compiled listing before running
//	QUACK_OUTPUT        write program output to this file instead of stdout
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: quack-console <program.q>")
		os.Exit(2)
	}

	source, fullPath, err := utils.ReadSource(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read source file: %v", err)
	}

	program := compiler.Compile(source)

	if env.Bool("QUACK_SHOW_PROGRAM") {
		fmt.Println("Compiled", fullPath)
		fmt.Print(program.Listing())
	}

	machine := vm.New(program)

	// The output sink is closed exactly once after the run loop exits,
	// whether the program halted via QUIT or fell off the end.
	if outPath := env.Str("QUACK_OUTPUT"); outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		machine.Output = f
		machine.Run()
		if err := f.Close(); err != nil {
			log.Fatalf("Failed to close output file: %v", err)
		}
		return
	}

	machine.Run()
}
