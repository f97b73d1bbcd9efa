package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/TheOneTwelfth/Quack-Interpreter/pkg/compiler"
	"github.com/TheOneTwelfth/Quack-Interpreter/pkg/vm"
)

// runApp compiles a _qapps program and runs it to completion, returning
// everything it printed.
func runApp(t *testing.T, path string) string {
	t.Helper()

	source, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read source: %v", err)
	}

	machine := vm.New(compiler.Compile(string(source)))
	var output bytes.Buffer
	machine.Output = &output
	machine.Run()

	return output.String()
}

func TestHelloApp(t *testing.T) {
	if got := runApp(t, "_qapps/hello.q"); got != "Hi!\n" {
		t.Errorf("expected %q, got %q", "Hi!\n", got)
	}
}

func TestAddApp(t *testing.T) {
	if got := runApp(t, "_qapps/add.q"); got != "15\n" {
		t.Errorf("expected %q, got %q", "15\n", got)
	}
}

func TestCountdownApp(t *testing.T) {
	want := "5\n4\n3\n2\n1\n"
	if got := runApp(t, "_qapps/countdown.q"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRebindApp(t *testing.T) {
	// rebind.q only terminates because the first MARK for X restores its
	// binding at run time; with a static label table the final jump would
	// target the later definition and spin forever.
	if got := runApp(t, "_qapps/rebind.q"); got != "42\n" {
		t.Errorf("expected %q, got %q", "42\n", got)
	}
}

func TestInfiniteLoopIsNotCapped(t *testing.T) {
	machine := vm.New(compiler.Compile(":loop >a <a Jloop"))

	if live := machine.RunSteps(100000); !live {
		t.Error("looping program should still be live after 100000 steps")
	}
	if machine.Halted {
		t.Error("looping program must never halt on its own")
	}
}
