package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/TheOneTwelfth/Quack-Interpreter/pkg/compiler"
	"github.com/TheOneTwelfth/Quack-Interpreter/pkg/utils"
	"github.com/TheOneTwelfth/Quack-Interpreter/pkg/vm"
)

func main() {
	inPath := flag.String("in", "", "input Quack source file path")
	dump := flag.Bool("dump", false, "print the compiled instruction listing and label table")
	run := flag.Bool("run", true, "execute the compiled program")
	trace := flag.Bool("trace", false, "log each instruction to stderr as it executes")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "usage: quack -in program.q [-dump] [-run=false] [-trace]")
		os.Exit(2)
	}

	source, fullPath, err := utils.ReadSource(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read source file %q: %v\n", *inPath, err)
		os.Exit(1)
	}

	program := compiler.Compile(source)

	if *dump {
		fmt.Print(program.Listing())
	}

	if !*run {
		return
	}

	machine := vm.New(program)
	if *trace {
		traceRun(machine, program, fullPath)
		return
	}
	machine.Run()
}

// traceRun mirrors vm.Run but logs every fetch, so endless loops in the
// source program stay observable.
func traceRun(machine *vm.VM, program *vm.Program, sourcePath string) {
	log.SetFlags(0)
	log.Printf("tracing %s (%d instructions)", sourcePath, len(program.Instructions))
	for machine.Live() {
		log.Printf("%4d  %s", machine.PC, program.Instructions[machine.PC])
		machine.Step()
	}
}
