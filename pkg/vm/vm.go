package vm

import (
	"fmt"
	"io"
	"os"

	"github.com/TheOneTwelfth/Quack-Interpreter/pkg/queue"
)

// wordMod is the modulus applied to the second operand of PLUS, MINUS and
// MULT. Only that operand is reduced; the result is pushed unreduced.
const wordMod = 65536

// VM executes a compiled program against one FIFO queue and 26 registers.
// It owns all of its state for the duration of a run; nothing is shared.
type VM struct {
	Queue  *queue.Queue
	Regs   RegisterBank
	Labels LabelTable
	PC     int
	Halted bool

	// Output is where PRINT-family instructions write.
	// If nil, os.Stdout is used.
	Output io.Writer

	program []Instruction
}

// New builds a VM positioned at instruction 0. The program's label table is
// cloned so that executing MARK instructions never mutates the compiled
// Program, which stays reusable across runs.
func New(p *Program) *VM {
	return &VM{
		Queue:   queue.New(),
		Labels:  p.Labels.Clone(),
		program: p.Instructions,
	}
}

func (m *VM) outputSink() io.Writer {
	if m.Output != nil {
		return m.Output
	}
	return os.Stdout
}

// Len returns the number of instructions in the loaded program.
func (m *VM) Len() int {
	return len(m.program)
}

// Live reports whether another Step would execute an instruction.
func (m *VM) Live() bool {
	return !m.Halted && m.PC >= 0 && m.PC < len(m.program)
}

// Step executes the instruction under the program counter, then advances the
// counter by one. Jumps assign the counter directly and the advance still
// happens, so control lands on the instruction after the target MARK. Every
// failed precondition is a plain no-op; no instruction ever reports an error.
func (m *VM) Step() {
	if !m.Live() {
		return
	}

	in := m.program[m.PC]

	switch in.Op {
	case OpInput:
		m.Queue.Enqueue(in.Value)

	case OpPlus:
		if a, b, ok := m.popPair(); ok {
			m.Queue.Enqueue(a + b%wordMod)
		}

	case OpMinus:
		if a, b, ok := m.popPair(); ok {
			m.Queue.Enqueue(a - b%wordMod)
		}

	case OpMult:
		if a, b, ok := m.popPair(); ok {
			m.Queue.Enqueue(a * (b % wordMod))
		}

	case OpDiv:
		if a, b, ok := m.popPair(); ok {
			if b == 0 {
				m.Queue.Enqueue(0)
			} else {
				m.Queue.Enqueue(a / b)
			}
		}

	case OpMod:
		if a, b, ok := m.popPair(); ok {
			if b == 0 {
				m.Queue.Enqueue(0)
			} else {
				m.Queue.Enqueue(a % b)
			}
		}

	case OpRegPut:
		if v, ok := m.Queue.Dequeue(); ok {
			m.Regs.Store(in.RegA, v)
		}

	case OpRegGet:
		if v, ok := m.Regs.Load(in.RegA); ok {
			m.Queue.Enqueue(v)
		}

	case OpPrint:
		if v, ok := m.Queue.Dequeue(); ok {
			fmt.Fprintf(m.outputSink(), "%d\n", v)
		}

	case OpPrintReg:
		if v, ok := m.Regs.Load(in.RegA); ok {
			fmt.Fprintf(m.outputSink(), "%d\n", v)
		}

	case OpPrintChar:
		if v, ok := m.Queue.Dequeue(); ok {
			fmt.Fprintf(m.outputSink(), "%c", rune(v&0xFF))
		}

	case OpPrintRegChar:
		if v, ok := m.Regs.Load(in.RegA); ok {
			fmt.Fprintf(m.outputSink(), "%c", rune(v&0xFF))
		}

	case OpMark:
		// Rebinds the name to this position on every pass through. Inert
		// unless some later MARK moved the name elsewhere in the meantime.
		m.Labels.Bind(in.Label, in.Index)

	case OpJump:
		m.jump(in.Label)

	case OpJumpIfZero:
		if v, ok := m.Regs.Load(in.RegA); ok && v == 0 {
			m.jump(in.Label)
		}

	case OpJumpIfEqual:
		a, okA := m.Regs.Load(in.RegA)
		b, okB := m.Regs.Load(in.RegB)
		// Two unset registers compare equal.
		if okA == okB && (!okA || a == b) {
			m.jump(in.Label)
		}

	case OpJumpIfMore:
		a, okA := m.Regs.Load(in.RegA)
		b, okB := m.Regs.Load(in.RegB)
		if okA && okB && a > b {
			m.jump(in.Label)
		}

	case OpQuit:
		m.Halted = true
	}

	m.PC++
}

// popPair pulls the two operands of a binary instruction. If the queue runs
// out after the first pop, that value stays consumed and the instruction
// degrades to a no-op.
func (m *VM) popPair() (a, b int64, ok bool) {
	a, ok = m.Queue.Dequeue()
	if !ok {
		return 0, 0, false
	}
	b, ok = m.Queue.Dequeue()
	if !ok {
		return 0, 0, false
	}
	return a, b, true
}

// jump moves the program counter to the label's recorded index. An unknown
// name is a no-op and control falls through to the next instruction.
func (m *VM) jump(name string) {
	if index, ok := m.Labels.Lookup(name); ok {
		m.PC = index
	}
}

// Run executes until an explicit QUIT or until the counter runs off the end
// of the program. There is no step cap: a looping program runs forever.
func (m *VM) Run() {
	for m.Live() {
		m.Step()
	}
}

// RunSteps executes at most n instructions and reports whether the program
// is still live afterwards. The desktop frontend uses this to interleave
// execution with frame updates without capping Run itself.
func (m *VM) RunSteps(n int) bool {
	for i := 0; i < n && m.Live(); i++ {
		m.Step()
	}
	return m.Live()
}
